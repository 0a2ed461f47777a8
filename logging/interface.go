// Package logging defines the observability interface of the recovery core.
// This package should not be considered stable
package logging

import (
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
)

// PacketLossReason is the reason a packet was declared lost.
type PacketLossReason uint8

const (
	// PacketLossReorderingThreshold: when a packet is deemed lost due to reordering threshold
	PacketLossReorderingThreshold PacketLossReason = iota
	// PacketLossTimeThreshold: when a packet is deemed lost due to time threshold
	PacketLossTimeThreshold
)

func (r PacketLossReason) String() string {
	switch r {
	case PacketLossReorderingThreshold:
		return "reordering_threshold"
	case PacketLossTimeThreshold:
		return "time_threshold"
	default:
		return "unknown"
	}
}

// A ConnectionTracer records recovery events.
type ConnectionTracer interface {
	// UpdatedMetrics is called after every RTT update.
	UpdatedMetrics(rttStats *utils.RTTStats, totalBytesSent, totalBytesAcked protocol.ByteCount, packetsOutstanding int)
	// LostPacket is called once per newly lost packet.
	LostPacket(space protocol.PacketNumberSpace, pn protocol.PacketNumber, reason PacketLossReason)
	// PersistentCongestion is called when a loss span is classified as a
	// persistent congestion episode.
	PersistentCongestion(space protocol.PacketNumberSpace, numLostPackets int)
	// Close is called when the connection is closed.
	Close()
}
