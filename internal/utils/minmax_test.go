package utils

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Min / Max", func() {
	It("returns the maximum", func() {
		Expect(MaxUint64(5, 7)).To(Equal(uint64(7)))
		Expect(MaxUint64(7, 5)).To(Equal(uint64(7)))
		Expect(MaxByteCount(5, 7)).To(Equal(protocol.ByteCount(7)))
		Expect(MaxPacketNumber(5, 7)).To(Equal(protocol.PacketNumber(7)))
		Expect(MaxDuration(time.Second, time.Minute)).To(Equal(time.Minute))
	})

	It("returns the minimum", func() {
		Expect(MinUint64(5, 7)).To(Equal(uint64(5)))
		Expect(MinUint64(7, 5)).To(Equal(uint64(5)))
		Expect(MinByteCount(5, 7)).To(Equal(protocol.ByteCount(5)))
		Expect(MinPacketNumber(5, 7)).To(Equal(protocol.PacketNumber(5)))
		Expect(MinDuration(time.Second, time.Minute)).To(Equal(time.Second))
	})

	It("returns the absolute duration", func() {
		Expect(AbsDuration(time.Second)).To(Equal(time.Second))
		Expect(AbsDuration(-time.Second)).To(Equal(time.Second))
		Expect(AbsDuration(0)).To(BeZero())
	})

	It("returns the maximum time", func() {
		a := time.Now()
		b := a.Add(time.Second)
		Expect(MaxTime(a, b)).To(Equal(b))
		Expect(MaxTime(b, a)).To(Equal(b))
	})

	It("returns the minimum time", func() {
		a := time.Now()
		b := a.Add(time.Second)
		Expect(MinTime(a, b)).To(Equal(a))
		Expect(MinTime(b, a)).To(Equal(a))
	})
})
