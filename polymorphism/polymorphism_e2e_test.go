package polymorphism_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/WhatDothLife/triads/consistency"
	"github.com/WhatDothLife/triads/polymorphism"
	"github.com/WhatDothLife/triads/triad"
)

func findFor(arms string, kind polymorphism.Kind) polymorphism.Result {
	tr, err := triad.FromString(arms)
	Expect(err).NotTo(HaveOccurred())

	finder := polymorphism.NewFinderForKind(kind, 0, 0)
	return finder.Find(tr.Digraph(), consistency.AC3Only)
}

// These are the eight literal scenarios of spec.md §8, including the
// regression pin (scenarios 5 and 6 differ by one character and must
// yield opposite answers).
var _ = Describe("polymorphism existence on triads", func() {
	DescribeTable("end-to-end scenarios",
		func(arms string, kind polymorphism.Kind, wantFound bool) {
			res := findFor(arms, kind)
			Expect(res.Found).To(Equal(wantFound))
		},
		Entry("1: 0,0,0 has a majority", "0,0,0", polymorphism.KindMajority, true),
		Entry("2: 01,00,10 has a majority", "01,00,10", polymorphism.KindMajority, true),
		Entry("3: 011,00,10 has a majority", "011,00,10", polymorphism.KindMajority, true),
		Entry("4: 011,011,101 has a majority", "011,011,101", polymorphism.KindMajority, true),
		Entry("5: 10110000,1001111,01011 has a majority", "10110000,1001111,01011", polymorphism.KindMajority, true),
		Entry("6: 10110000,1001111,010111 has NO majority (regression pin)", "10110000,1001111,010111", polymorphism.KindMajority, false),
		Entry("7: 10110000,0101111,10011 has a 3/4-wnu", "10110000,0101111,10011", polymorphism.KindWNU34, true),
		Entry("8: 01001111,0110000,101000 has a siggers", "01001111,0110000,101000", polymorphism.KindSiggers, true),
	)

	It("distinguishes scenarios 5 and 6 by exactly their outcome", func() {
		res5 := findFor("10110000,1001111,01011", polymorphism.KindMajority)
		res6 := findFor("10110000,1001111,010111", polymorphism.KindMajority)
		Expect(res5.Found).To(BeTrue())
		Expect(res6.Found).To(BeFalse())
	})
})
