package ackhandler

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/congestion"
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
	"github.com/yjfxfjch/mvfst/logging"
)

// TransportSettings are the connection knobs the recovery core consults.
type TransportSettings struct {
	UDPSendPacketLen                protocol.ByteCount
	WriteConnectionDataPacketsLimit uint64
	PacingTimerTickInterval         time.Duration
}

// DefaultTransportSettings returns the default settings.
func DefaultTransportSettings() TransportSettings {
	return TransportSettings{
		UDPSendPacketLen:                protocol.DefaultUDPSendPacketLen,
		WriteConnectionDataPacketsLimit: protocol.DefaultWriteConnectionDataPacketsLimit,
		PacingTimerTickInterval:         protocol.DefaultPacingTimerTickInterval,
	}
}

// LossState carries the connection's cumulative send/ack accounting.
// It is updated transactionally alongside every store mutation, never
// recomputed lazily.
type LossState struct {
	TotalBytesSent           protocol.ByteCount
	TotalBytesAcked          protocol.ByteCount
	TotalBytesSentAtLastAck  protocol.ByteCount
	TotalBytesAckedAtLastAck protocol.ByteCount
	LastAckedTime            time.Time
	LastAckedPacketSentTime  time.Time
}

// PendingEvents are the timer-layer actions a processing pass requested.
// The external event loop consumes them after each step.
type PendingEvents struct {
	SetLossDetectionAlarm bool
}

// A Connection holds the per-connection recovery state. All mutation happens
// within the single task driving the connection, there is no internal locking.
type Connection struct {
	Outstandings OutstandingPackets
	LossState    LossState
	RTTStats     *utils.RTTStats

	// CongestionController may be nil. It receives one combined notification
	// per frame that newly acked or lost packets.
	CongestionController congestion.Controller
	// Pacer may be nil.
	Pacer congestion.Pacer

	Settings      TransportSettings
	PendingEvents PendingEvents

	// DetectLostPackets is the pluggable loss detection algorithm.
	// nil selects the default detector.
	DetectLostPackets LossDetector

	ackStates [3]AckState
	// lossTimes holds, per space, the earliest deadline at which a not yet
	// lost packet will cross the time threshold. The zero value means no
	// time-based loss is pending.
	lossTimes [3]time.Time

	logger utils.Logger
	tracer logging.ConnectionTracer
}

// NewConnection creates the recovery state for one connection.
// tracer may be nil.
func NewConnection(rttStats *utils.RTTStats, settings TransportSettings, logger utils.Logger, tracer logging.ConnectionTracer) *Connection {
	c := &Connection{
		RTTStats: rttStats,
		Settings: settings,
		logger:   logger,
		tracer:   tracer,
	}
	for i := range c.ackStates {
		c.ackStates[i] = AckState{
			LargestReceivedPacketNum: protocol.InvalidPacketNumber,
			LargestAckedByPeer:       protocol.InvalidPacketNumber,
		}
	}
	return c
}

// AckState returns the outgoing-ack state for the given packet number space.
func (c *Connection) AckState(space protocol.PacketNumberSpace) *AckState {
	return &c.ackStates[space]
}

// LossTime returns the pending time-threshold loss deadline for the space,
// or the zero time if none is pending.
func (c *Connection) LossTime(space protocol.PacketNumberSpace) time.Time {
	return c.lossTimes[space]
}

// SentPacket registers a transmitted packet with the store and updates the
// send-side accounting. The caller keeps ownership of nothing: the store owns
// the packet until it is acked or lost.
func (c *Connection) SentPacket(p *Packet) {
	c.LossState.TotalBytesSent += p.EncodedSize
	p.TotalBytesSent = c.LossState.TotalBytesSent
	if !c.LossState.LastAckedTime.IsZero() {
		p.LastAckedPacketInfo = &congestion.LastAckedPacketInfo{
			SentTime:        c.LossState.LastAckedPacketSentTime,
			AckTime:         c.LossState.LastAckedTime,
			TotalBytesSent:  c.LossState.TotalBytesSentAtLastAck,
			TotalBytesAcked: c.LossState.TotalBytesAckedAtLastAck,
		}
	}
	// For cloned packets the caller registers the packet event when the clone
	// is created. A clone whose event was already resolved stays event-less.
	c.Outstandings.Append(p)
	if c.Pacer != nil {
		c.Pacer.OnPacketSent()
	}
}

// UDPSendPacketLen implements congestion.ConnectionState.
func (c *Connection) UDPSendPacketLen() protocol.ByteCount {
	return c.Settings.UDPSendPacketLen
}

// PacingTimerTickInterval implements congestion.ConnectionState.
func (c *Connection) PacingTimerTickInterval() time.Duration {
	return c.Settings.PacingTimerTickInterval
}

// WriteConnectionDataPacketsLimit implements congestion.ConnectionState.
func (c *Connection) WriteConnectionDataPacketsLimit() uint64 {
	return c.Settings.WriteConnectionDataPacketsLimit
}
