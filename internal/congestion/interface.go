package congestion

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/protocol"
)

// A Controller is a pluggable congestion control algorithm.
// The recovery core feeds it events, it doesn't prescribe the window math.
type Controller interface {
	// OnPacketAckOrLoss is invoked exactly once per processed ACK frame that
	// newly acked or newly lost at least one packet. Either event may be
	// empty, but never both.
	OnPacketAckOrLoss(ack *AckEvent, loss *LossEvent)
}

// ConnectionState exposes the connection attributes the pacing rate
// calculators need.
type ConnectionState interface {
	UDPSendPacketLen() protocol.ByteCount
	PacingTimerTickInterval() time.Duration
	WriteConnectionDataPacketsLimit() uint64
}

// A Pacer schedules packet bursts: how many packets may be written
// back-to-back and the minimum spacing before the next burst.
type Pacer interface {
	// RefreshPacingRate recomputes the write interval and burst size from the
	// congestion window and the current RTT.
	RefreshPacingRate(cwndBytes protocol.ByteCount, rtt time.Duration, now time.Time)
	// SetPacingRate pins the pacing rate (in bytes per second) directly,
	// bypassing the rate calculator.
	SetPacingRate(rateBytesPerSecond uint64)
	// OnPacketSent consumes one pacing token.
	OnPacketSent()
	// OnPacketsLoss resets the accumulated pacing credit, so that a loss
	// episode isn't immediately followed by an oversized burst.
	OnPacketsLoss()
	// TimeUntilNextWrite returns the remaining wait before the next burst may
	// be written. It returns zero while tokens remain or before the first write.
	TimeUntilNextWrite(now time.Time) time.Duration
	// UpdateAndGetWriteBatchSize replenishes the tokens if the write interval
	// has elapsed and returns the number of packets allowed in the current burst.
	UpdateAndGetWriteBatchSize(now time.Time) uint64
	// ResetPacingTokens makes the next UpdateAndGetWriteBatchSize call behave
	// as if no credit window were active. Used on idle restart.
	ResetPacingTokens()
	// CachedWriteBatchSize returns the batch size computed by the last rate update.
	CachedWriteBatchSize() uint64
}
