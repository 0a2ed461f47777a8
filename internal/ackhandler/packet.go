package ackhandler

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/congestion"
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/wire"
)

// A Packet is an outstanding packet: sent, but neither acknowledged nor
// declared lost yet. It is owned by the outstanding packet store.
type Packet struct {
	PacketNumber      protocol.PacketNumber
	PacketNumberSpace protocol.PacketNumberSpace
	SendTime          time.Time
	EncodedSize       protocol.ByteCount

	// IsHandshake marks packets belonging to the handshake flow
	// (Initial and Handshake space crypto packets).
	IsHandshake  bool
	IsAppLimited bool

	Frames []wire.Frame

	// AssociatedEvent links a cloned (probe / retransmission) packet to its
	// original send. nil for regular packets. The event's lifetime is owned
	// by the connection-wide pending-event set, this is only a back-reference.
	AssociatedEvent *protocol.PacketEvent

	// TotalBytesSent is the connection-level total bytes sent at the time
	// this packet was sent.
	TotalBytesSent protocol.ByteCount
	// LastAckedPacketInfo snapshots the ack bookkeeping at send time.
	// nil if nothing had been acked when this packet was sent.
	LastAckedPacketInfo *congestion.LastAckedPacketInfo
}
