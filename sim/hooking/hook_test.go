package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("HookableBase", func() {
	var (
		mockCtrl *gomock.Controller
		base     *HookableBase
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		base = &HookableBase{}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should invoke hooks in registration order", func() {
		first := NewMockHook(mockCtrl)
		second := NewMockHook(mockCtrl)
		base.AcceptHook(first)
		base.AcceptHook(second)

		pos := &HookPos{Name: "Somewhere"}
		ctx := HookCtx{Pos: pos, Time: 5}

		gomock.InOrder(
			first.EXPECT().Func(ctx),
			second.EXPECT().Func(ctx),
		)

		base.InvokeHook(ctx)

		Expect(base.NumHooks()).To(Equal(2))
		Expect(base.Hooks()).To(ConsistOf(first, second))
	})

	It("should panic on duplicated hooks", func() {
		hook := NewMockHook(mockCtrl)
		base.AcceptHook(hook)

		Expect(func() { base.AcceptHook(hook) }).To(Panic())
	})

	It("should adapt plain functions", func() {
		var seen []uint64
		hook := &HookFunc{F: func(ctx HookCtx) { seen = append(seen, ctx.Time) }}
		base.AcceptHook(hook)

		base.InvokeHook(HookCtx{Time: 10})
		base.InvokeHook(HookCtx{Time: 15})

		Expect(seen).To(Equal([]uint64{10, 15}))
	})
})
