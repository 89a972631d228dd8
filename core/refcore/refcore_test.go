package refcore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/coretb/core"
	"github.com/sarchlab/coretb/core/refcore"
)

var _ = Describe("Reference core", func() {
	var c *refcore.Core

	edge := func() {
		Expect(c.SetInput(core.Clock, 1)).To(Succeed())
		Expect(c.Eval()).To(Succeed())
		Expect(c.SetInput(core.Clock, 0)).To(Succeed())
		Expect(c.Eval()).To(Succeed())
	}

	output := func(s core.Signal) uint64 {
		v, err := c.Output(s)
		Expect(err).NotTo(HaveOccurred())
		return v
	}

	BeforeEach(func() {
		c = refcore.New()
		Expect(c.SetInput(core.ResetN, 1)).To(Succeed())
	})

	It("should retire legal instructions on the rising edge", func() {
		Expect(c.SetInput(core.Instruction, 0x12000000)).To(Succeed())
		Expect(c.SetInput(core.Clock, 1)).To(Succeed())
		Expect(c.Eval()).To(Succeed())

		Expect(c.Retired()).To(Equal(uint32(1)))
		Expect(output(core.Status)).To(Equal(uint64(0x112)))
		Expect(output(core.Illegal)).To(Equal(uint64(0)))
	})

	It("should not execute on the falling edge", func() {
		Expect(c.SetInput(core.Instruction, 0x01000000)).To(Succeed())
		edge()
		Expect(c.Retired()).To(Equal(uint32(1)))

		Expect(c.SetInput(core.Clock, 0)).To(Succeed())
		Expect(c.Eval()).To(Succeed())
		Expect(c.Retired()).To(Equal(uint32(1)))
	})

	It("should flag illegal opcodes and keep the status", func() {
		Expect(c.SetInput(core.Instruction, 0x01000000)).To(Succeed())
		edge()
		Expect(c.SetInput(core.Instruction, 0x80000000)).To(Succeed())
		edge()

		Expect(output(core.Illegal)).To(Equal(uint64(1)))
		Expect(output(core.Status)).To(Equal(uint64(0x101)))
	})

	It("should raise halt", func() {
		Expect(c.SetInput(core.Instruction, 0xFF000000)).To(Succeed())
		edge()

		Expect(output(core.Halt)).To(Equal(uint64(1)))
	})

	It("should clear its state while held in reset", func() {
		Expect(c.SetInput(core.Instruction, 0x01000000)).To(Succeed())
		edge()
		Expect(c.SetInput(core.ResetN, 0)).To(Succeed())
		edge()

		Expect(c.Retired()).To(Equal(uint32(0)))
		Expect(output(core.Status)).To(Equal(uint64(0)))
	})

	It("should reject unknown ports", func() {
		Expect(c.SetInput(core.Status, 1)).To(MatchError(core.ErrUnknownSignal))

		_, err := c.Output(core.Clock)
		Expect(err).To(MatchError(core.ErrUnknownSignal))
	})
})
