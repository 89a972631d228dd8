package timing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/coretb/sim/timing"
)

var _ = Describe("Clock", func() {
	var clock *timing.Clock

	BeforeEach(func() {
		clock = timing.NewClock(timing.HalfPeriod)
	})

	It("should start at time 0", func() {
		Expect(clock.Now()).To(Equal(timing.VTime(0)))
	})

	It("should advance by exactly one step", func() {
		Expect(clock.Advance()).To(Equal(timing.VTime(5)))
		Expect(clock.Advance()).To(Equal(timing.VTime(10)))
		Expect(clock.Now()).To(Equal(timing.VTime(10)))
	})

	It("should convert durations into full cycles", func() {
		Expect(clock.Cycles(10)).To(Equal(uint64(1)))
		Expect(clock.Cycles(55)).To(Equal(uint64(5)))
	})

	It("should refuse a zero step", func() {
		Expect(func() { timing.NewClock(0) }).To(Panic())
	})
})
