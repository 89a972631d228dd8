package driver

import (
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/mem/imem"
	"github.com/sarchlab/coretb/sim/timing"
)

var _ = ginkgo.Describe("ClockSequencer", func() {
	var (
		mockCtrl *gomock.Controller
		c        *MockCoreUnderTest
		sink     *MockSink
		ctx      *SimulationContext
		seq      *ClockSequencer
	)

	ginkgo.BeforeEach(func() {
		mockCtrl = gomock.NewController(ginkgo.GinkgoT())
		c = NewMockCoreUnderTest(mockCtrl)
		sink = NewMockSink(mockCtrl)
		ctx = newSimulationContext(c, sink, imem.New(1), DefaultConfig())
		seq = NewClockSequencer(ctx)
	})

	ginkgo.AfterEach(func() {
		mockCtrl.Finish()
	})

	edge := func(level uint64, t timing.VTime) []any {
		return []any{
			c.EXPECT().SetInput(core.Clock, level).Return(nil),
			c.EXPECT().Eval().Return(nil),
			sink.EXPECT().Sample(t).Return(nil),
		}
	}

	ginkgo.It("should toggle the clock five times under reset then release it", func() {
		calls := []any{
			c.EXPECT().SetInput(core.ResetN, uint64(0)).Return(nil),
			c.EXPECT().SetInput(core.Clock, uint64(0)).Return(nil),
			c.EXPECT().SetInput(core.Instruction, uint64(0)).Return(nil),
		}

		t := timing.VTime(0)
		for i := 0; i < 5; i++ {
			calls = append(calls, edge(1, t)...)
			calls = append(calls, edge(0, t+5)...)
			t += 10
		}

		calls = append(calls,
			c.EXPECT().SetInput(core.ResetN, uint64(1)).Return(nil),
			c.EXPECT().SetInput(core.Clock, uint64(0)).Return(nil),
			c.EXPECT().Eval().Return(nil),
			sink.EXPECT().Sample(timing.VTime(50)).Return(nil),
		)

		gomock.InOrder(calls...)

		Expect(seq.Reset()).To(Succeed())
		Expect(seq.Phase()).To(Equal(PhaseRun))
		Expect(ctx.Now()).To(Equal(timing.VTime(55)))
		Expect(ctx.Evals()).To(Equal(uint64(11)))
		Expect(ctx.Inputs()).To(Equal(core.Snapshot{ResetN: 1}))
	})

	ginkgo.It("should run a positive then a negative edge per cycle", func() {
		ctx.Phase = PhaseRun

		gomock.InOrder(append(edge(1, 0), edge(0, 5)...)...)

		Expect(seq.Cycle()).To(Succeed())
		Expect(ctx.Now()).To(Equal(timing.VTime(10)))
	})

	ginkgo.It("should refuse to cycle before reset", func() {
		Expect(seq.Cycle()).To(MatchError(ErrNotReset))
	})

	ginkgo.It("should refuse to reset twice", func() {
		ctx.Phase = PhaseRun

		Expect(seq.Reset()).To(MatchError(ErrAlreadyReset))
	})

	ginkgo.It("should stop at the first failing evaluation", func() {
		boom := errors.New("boom")
		ctx.Phase = PhaseRun

		gomock.InOrder(
			c.EXPECT().SetInput(core.Clock, uint64(1)).Return(nil),
			c.EXPECT().Eval().Return(boom),
		)

		err := seq.Cycle()

		Expect(err).To(MatchError(boom))
		Expect(ctx.Now()).To(Equal(timing.VTime(0)))
	})

	ginkgo.It("should invoke hooks around every evaluation", func() {
		ctx.Phase = PhaseRun
		ctx.inputs.ResetN = 1

		var positions []string
		var items []core.Snapshot
		seq.AcceptHook(&hookRecorder{f: func(pos string, item core.Snapshot) {
			positions = append(positions, pos)
			items = append(items, item)
		}})

		c.EXPECT().SetInput(core.Clock, gomock.Any()).Return(nil).Times(2)
		c.EXPECT().Eval().Return(nil).Times(2)
		c.EXPECT().Output(core.Status).Return(uint64(7), nil).Times(2)
		c.EXPECT().Output(core.Illegal).Return(uint64(0), nil).Times(2)
		sink.EXPECT().Sample(gomock.Any()).Return(nil).Times(2)

		Expect(seq.Cycle()).To(Succeed())

		Expect(positions).To(Equal([]string{
			"BeforeEval", "AfterEval", "BeforeEval", "AfterEval",
		}))
		Expect(items[0]).To(Equal(core.Snapshot{Clock: 1, ResetN: 1}))
		Expect(items[1]).To(Equal(core.Snapshot{Clock: 1, ResetN: 1, Status: 7}))
		Expect(items[3]).To(Equal(core.Snapshot{Clock: 0, ResetN: 1, Status: 7}))
	})
})
