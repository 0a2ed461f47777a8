package congestion

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
)

// A PacingRate is a burst schedule: BurstSize packets may be written
// back-to-back once per Interval.
type PacingRate struct {
	Interval  time.Duration
	BurstSize uint64
}

// A PacingRateCalculator computes the pacing rate from the congestion window,
// the window floor (in maximum-segment-size units) and the current RTT.
type PacingRateCalculator func(conn ConnectionState, cwndBytes protocol.ByteCount, minCwndInMss uint64, rtt time.Duration) PacingRate

// DefaultPacingRateCalculator spreads the congestion window over one RTT in
// timer-tick-sized intervals. Windows at or below the floor are not paced.
func DefaultPacingRateCalculator(conn ConnectionState, cwndBytes protocol.ByteCount, minCwndInMss uint64, rtt time.Duration) PacingRate {
	if protocol.ByteCount(minCwndInMss)*conn.UDPSendPacketLen() > cwndBytes {
		return PacingRate{Interval: 0, BurstSize: conn.WriteConnectionDataPacketsLimit()}
	}
	cwndInPackets := utils.MaxUint64(minCwndInMss, uint64(cwndBytes/conn.UDPSendPacketLen()))
	numIntervals := utils.MaxUint64(1, uint64(rtt/conn.PacingTimerTickInterval()))
	burst := (cwndInPackets + numIntervals - 1) / numIntervals
	return PacingRate{
		Interval:  utils.MaxDuration(rtt/time.Duration(numIntervals), conn.PacingTimerTickInterval()),
		BurstSize: burst,
	}
}

// DefaultPacer implements token bucket pacing with a pluggable rate calculator.
// It is not safe for concurrent use, matching the single-writer discipline of
// the connection's processing step.
type DefaultPacer struct {
	conn         ConnectionState
	minCwndInMss uint64

	batchSize            uint64
	writeInterval        time.Duration
	pacingRateCalculator PacingRateCalculator
	cachedBatchSize      uint64
	tokens               uint64
	// lastWriteTime marks the start of the current credit window.
	// The zero value means no credit window is active.
	lastWriteTime time.Time
}

var _ Pacer = &DefaultPacer{}

// NewDefaultPacer creates a pacer with the default rate calculator.
func NewDefaultPacer(conn ConnectionState, minCwndInMss uint64) *DefaultPacer {
	limit := conn.WriteConnectionDataPacketsLimit()
	return &DefaultPacer{
		conn:                 conn,
		minCwndInMss:         minCwndInMss,
		batchSize:            limit,
		cachedBatchSize:      limit,
		tokens:               limit,
		pacingRateCalculator: DefaultPacingRateCalculator,
	}
}

// SetPacingRateCalculator replaces the rate calculator.
func (p *DefaultPacer) SetPacingRateCalculator(c PacingRateCalculator) {
	p.pacingRateCalculator = c
}

// RefreshPacingRate recomputes the write interval and the batch size.
// RTTs below the pacing timer granularity cannot be paced. They get full,
// unpaced bursts instead.
func (p *DefaultPacer) RefreshPacingRate(cwndBytes protocol.ByteCount, rtt time.Duration, now time.Time) {
	if rtt < p.conn.PacingTimerTickInterval() {
		p.writeInterval = 0
		p.batchSize = p.conn.WriteConnectionDataPacketsLimit()
	} else {
		rate := p.pacingRateCalculator(p.conn, cwndBytes, p.minCwndInMss, rtt)
		p.writeInterval = rate.Interval
		p.batchSize = rate.BurstSize
	}
	p.cachedBatchSize = p.batchSize
}

// SetPacingRate pins the rate directly: one batch per timer tick, sized so
// that rateBytesPerSecond is reached with full-size packets.
func (p *DefaultPacer) SetPacingRate(rateBytesPerSecond uint64) {
	tick := p.conn.PacingTimerTickInterval()
	bytesPerTick := rateBytesPerSecond * uint64(tick) / uint64(time.Second)
	p.writeInterval = tick
	p.batchSize = utils.MaxUint64(1, bytesPerTick/uint64(p.conn.UDPSendPacketLen()))
	p.cachedBatchSize = p.batchSize
}

// OnPacketSent consumes one pacing token.
func (p *DefaultPacer) OnPacketSent() {
	if p.tokens > 0 {
		p.tokens--
	}
}

// OnPacketsLoss resets the accumulated credit.
func (p *DefaultPacer) OnPacketsLoss() {
	p.tokens = 0
}

// TimeUntilNextWrite returns the remaining wait before the next burst.
func (p *DefaultPacer) TimeUntilNextWrite(now time.Time) time.Duration {
	if p.tokens > 0 || p.lastWriteTime.IsZero() {
		return 0
	}
	if elapsed := now.Sub(p.lastWriteTime); elapsed < p.writeInterval {
		return p.writeInterval - elapsed
	}
	return 0
}

// UpdateAndGetWriteBatchSize replenishes the tokens once the write interval
// has elapsed and returns the number of packets allowed in the current burst.
func (p *DefaultPacer) UpdateAndGetWriteBatchSize(now time.Time) uint64 {
	if p.lastWriteTime.IsZero() || now.Sub(p.lastWriteTime) >= p.writeInterval {
		p.tokens = p.cachedBatchSize
		p.lastWriteTime = now
	}
	return p.tokens
}

// ResetPacingTokens deactivates the current credit window. The next
// UpdateAndGetWriteBatchSize call opens a fresh one.
func (p *DefaultPacer) ResetPacingTokens() {
	p.lastWriteTime = time.Time{}
	p.tokens = 0
}

// CachedWriteBatchSize returns the batch size of the last rate update.
func (p *DefaultPacer) CachedWriteBatchSize() uint64 {
	return p.cachedBatchSize
}
