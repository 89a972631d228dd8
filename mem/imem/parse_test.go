package imem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/coretb/mem/imem"
)

var _ = Describe("ParseWord", func() {
	DescribeTable("valid words",
		func(in string, want uint32) {
			got, err := imem.ParseWord(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("upper case", "DEADBEEF", uint32(0xDEADBEEF)),
		Entry("lower case", "deadbeef", uint32(0xDEADBEEF)),
		Entry("prefixed", "0x1F", uint32(0x1F)),
		Entry("short", "7", uint32(7)),
	)

	DescribeTable("invalid words",
		func(in string) {
			_, err := imem.ParseWord(in)
			Expect(err).To(HaveOccurred())
		},
		Entry("letters", "xyz"),
		Entry("prefix only", "0x"),
		Entry("too wide", "100000000"),
		Entry("trailing junk", "12 34"),
	)

	DescribeTable("lenient parsing",
		func(in string, want uint32) {
			Expect(imem.ParseWordLenient(in)).To(Equal(want))
		},
		Entry("trailing junk", "12 34", uint32(0x12)),
		Entry("no digits", "zz", uint32(0)),
		Entry("overflow", "FFFFFFFFF", uint32(0xFFFFFFFF)),
		Entry("prefixed", "0XAb", uint32(0xAB)),
	)
})
