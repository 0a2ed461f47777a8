package congestion

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type connStateStub struct {
	udpSendPacketLen protocol.ByteCount
	tickInterval     time.Duration
	packetsLimit     uint64
}

func (c *connStateStub) UDPSendPacketLen() protocol.ByteCount    { return c.udpSendPacketLen }
func (c *connStateStub) PacingTimerTickInterval() time.Duration  { return c.tickInterval }
func (c *connStateStub) WriteConnectionDataPacketsLimit() uint64 { return c.packetsLimit }

var _ = Describe("Pacer", func() {
	const (
		mss          protocol.ByteCount = 1000
		tick                            = time.Millisecond
		packetsLimit uint64             = 5
		minCwndInMss uint64             = 2
	)

	var (
		conn  *connStateStub
		pacer *DefaultPacer
		now   time.Time
	)

	BeforeEach(func() {
		conn = &connStateStub{
			udpSendPacketLen: mss,
			tickInterval:     tick,
			packetsLimit:     packetsLimit,
		}
		pacer = NewDefaultPacer(conn, minCwndInMss)
		now = time.Now()
	})

	It("allows a full burst before the first rate update", func() {
		Expect(pacer.CachedWriteBatchSize()).To(Equal(packetsLimit))
		Expect(pacer.TimeUntilNextWrite(now)).To(BeZero())
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(packetsLimit))
	})

	It("spreads the congestion window over the RTT", func() {
		pacer.RefreshPacingRate(20*mss, 10*tick, now)
		Expect(pacer.CachedWriteBatchSize()).To(Equal(uint64(2)))
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(2)))
	})

	It("rounds the batch size up", func() {
		pacer.RefreshPacingRate(25*mss, 10*tick, now)
		Expect(pacer.CachedWriteBatchSize()).To(Equal(uint64(3)))
	})

	It("doesn't pace when the congestion window is at the floor", func() {
		pacer.RefreshPacingRate(protocol.ByteCount(minCwndInMss)*mss-1, 10*tick, now)
		Expect(pacer.CachedWriteBatchSize()).To(Equal(packetsLimit))
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(packetsLimit))
		Expect(pacer.TimeUntilNextWrite(now.Add(time.Nanosecond))).To(BeZero())
	})

	It("doesn't pace when the RTT is below the timer granularity", func() {
		pacer.RefreshPacingRate(100*mss, tick/2, now)
		Expect(pacer.CachedWriteBatchSize()).To(Equal(packetsLimit))
	})

	It("blocks writes until the interval elapsed", func() {
		pacer.RefreshPacingRate(20*mss, 10*tick, now)
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(2)))
		pacer.OnPacketSent()
		pacer.OnPacketSent()
		Expect(pacer.TimeUntilNextWrite(now)).To(Equal(tick))
		Expect(pacer.TimeUntilNextWrite(now.Add(tick / 4))).To(Equal(3 * tick / 4))
		// tokens are not replenished before the interval is over
		Expect(pacer.UpdateAndGetWriteBatchSize(now.Add(tick / 2))).To(BeZero())
		// once it is, a fresh batch becomes available
		Expect(pacer.UpdateAndGetWriteBatchSize(now.Add(tick))).To(Equal(uint64(2)))
		Expect(pacer.TimeUntilNextWrite(now.Add(tick))).To(BeZero())
	})

	It("doesn't consume tokens below zero", func() {
		pacer.RefreshPacingRate(20*mss, 10*tick, now)
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(2)))
		for i := 0; i < 10; i++ {
			pacer.OnPacketSent()
		}
		Expect(pacer.UpdateAndGetWriteBatchSize(now.Add(tick))).To(Equal(uint64(2)))
	})

	It("drops the accumulated credit on loss", func() {
		pacer.RefreshPacingRate(20*mss, 10*tick, now)
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(2)))
		pacer.OnPacketsLoss()
		Expect(pacer.UpdateAndGetWriteBatchSize(now.Add(tick / 2))).To(BeZero())
		Expect(pacer.TimeUntilNextWrite(now.Add(tick / 2))).To(Equal(tick / 2))
	})

	It("restarts pacing after a token reset", func() {
		pacer.RefreshPacingRate(20*mss, 10*tick, now)
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(2)))
		pacer.OnPacketSent()
		pacer.OnPacketSent()
		pacer.ResetPacingTokens()
		Expect(pacer.TimeUntilNextWrite(now)).To(BeZero())
		Expect(pacer.UpdateAndGetWriteBatchSize(now.Add(time.Nanosecond))).To(Equal(uint64(2)))
	})

	It("pins the rate directly", func() {
		pacer.SetPacingRate(5_000_000) // 5000 bytes per tick
		Expect(pacer.CachedWriteBatchSize()).To(Equal(uint64(5)))
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(5)))
		for i := 0; i < 5; i++ {
			pacer.OnPacketSent()
		}
		Expect(pacer.TimeUntilNextWrite(now)).To(Equal(tick))
	})

	It("never pins a zero batch size", func() {
		pacer.SetPacingRate(1) // far below one packet per tick
		Expect(pacer.CachedWriteBatchSize()).To(Equal(uint64(1)))
	})

	It("uses a custom rate calculator", func() {
		var gotCwnd protocol.ByteCount
		pacer.SetPacingRateCalculator(func(_ ConnectionState, cwndBytes protocol.ByteCount, _ uint64, _ time.Duration) PacingRate {
			gotCwnd = cwndBytes
			return PacingRate{Interval: 2 * tick, BurstSize: 7}
		})
		pacer.RefreshPacingRate(42*mss, 10*tick, now)
		Expect(gotCwnd).To(Equal(42 * mss))
		Expect(pacer.CachedWriteBatchSize()).To(Equal(uint64(7)))
		Expect(pacer.UpdateAndGetWriteBatchSize(now)).To(Equal(uint64(7)))
		for i := 0; i < 7; i++ {
			pacer.OnPacketSent()
		}
		Expect(pacer.TimeUntilNextWrite(now)).To(Equal(2 * tick))
	})
})

var _ = Describe("Default pacing rate calculator", func() {
	conn := &connStateStub{
		udpSendPacketLen: 1000,
		tickInterval:     time.Millisecond,
		packetsLimit:     5,
	}

	It("floors the window at minCwndInMss packets", func() {
		rate := DefaultPacingRateCalculator(conn, 2500, 2, 10*time.Millisecond)
		Expect(rate.BurstSize).To(Equal(uint64(1)))
		Expect(rate.Interval).To(Equal(time.Millisecond))
	})

	It("enforces the tick interval as a lower bound", func() {
		rate := DefaultPacingRateCalculator(conn, 100_000, 2, 100*time.Millisecond)
		Expect(rate.Interval).To(Equal(time.Millisecond))
		Expect(rate.BurstSize).To(Equal(uint64(1)))
	})
})
