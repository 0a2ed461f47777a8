package congestion

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/protocol"
)

// LastAckedPacketInfo is a snapshot of the connection's ack bookkeeping at
// the time a packet was sent, taken from the most recent acked packet.
// Bandwidth-sampling congestion controllers consume it.
type LastAckedPacketInfo struct {
	SentTime time.Time
	AckTime  time.Time
	// TotalBytesSent at the time the last acked packet was acked.
	TotalBytesSent protocol.ByteCount
	// TotalBytesAcked at the time the last acked packet was acked.
	TotalBytesAcked protocol.ByteCount
}

// An AckPacket describes one newly acked packet within an AckEvent.
type AckPacket struct {
	SentTime            time.Time
	EncodedSize         protocol.ByteCount
	LastAckedPacketInfo *LastAckedPacketInfo
	// TotalBytesSentThen is the connection-level total bytes sent at the time
	// this packet was sent.
	TotalBytesSentThen protocol.ByteCount
	AppLimited         bool
}

// An AckEvent is the aggregated result of processing one ACK frame.
type AckEvent struct {
	// AckTime is the time the ACK frame was received.
	AckTime time.Time
	// AckedBytes is the sum of the encoded sizes of all newly acked packets.
	AckedBytes protocol.ByteCount
	// LargestAckedPacket is the largest packet number newly acked by this
	// frame, or InvalidPacketNumber if the frame didn't ack anything.
	LargestAckedPacket           protocol.PacketNumber
	LargestAckedPacketSentTime   time.Time
	LargestAckedPacketAppLimited bool
	// MrttSample is the minimum RTT sample among packets acked by this frame
	// that were sent before the frame was received. Zero if no such sample.
	MrttSample time.Duration
	// AckedPackets are the newly acked packets, in the order they were
	// processed (descending packet number within each ack block).
	AckedPackets []AckPacket
}

// HasAckedPackets says if the event acked at least one packet.
func (e *AckEvent) HasAckedPackets() bool {
	return e.LargestAckedPacket != protocol.InvalidPacketNumber
}

// A LossEvent describes the packets newly declared lost in one
// loss-detection pass.
type LossEvent struct {
	// LossTime is the time the loss was detected.
	LossTime             time.Time
	LostBytes            protocol.ByteCount
	LostPackets          []protocol.PacketNumber
	LargestLostPacketNum protocol.PacketNumber
	// SmallestLostSentTime and LargestLostSentTime are the earliest and
	// latest send times among the lost packets.
	SmallestLostSentTime time.Time
	LargestLostSentTime  time.Time
	// PersistentCongestion is set when the lost span exceeds the congestion
	// duration threshold derived from the current RTT statistics.
	PersistentCongestion bool
}

// NewLossEvent returns a LossEvent without any lost packets.
func NewLossEvent(lossTime time.Time) *LossEvent {
	return &LossEvent{
		LossTime:             lossTime,
		LargestLostPacketNum: protocol.InvalidPacketNumber,
	}
}

// AddLostPacket records one newly lost packet on the event.
func (e *LossEvent) AddLostPacket(pn protocol.PacketNumber, size protocol.ByteCount, sentTime time.Time) {
	e.LostBytes += size
	e.LostPackets = append(e.LostPackets, pn)
	if pn > e.LargestLostPacketNum {
		e.LargestLostPacketNum = pn
	}
	if e.SmallestLostSentTime.IsZero() || sentTime.Before(e.SmallestLostSentTime) {
		e.SmallestLostSentTime = sentTime
	}
	if e.LargestLostSentTime.IsZero() || sentTime.After(e.LargestLostSentTime) {
		e.LargestLostSentTime = sentTime
	}
}
