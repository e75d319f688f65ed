package colorname_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boardkit/internal/colorname"
)

var _ = Describe("Lookup", func() {
	It("resolves primary colours to exact RGB", func() {
		red, ok := colorname.Lookup("red")
		Expect(ok).To(BeTrue())
		Expect(red.R).To(BeNumerically("~", 1.0, 1e-9))
		Expect(red.G).To(BeNumerically("~", 0.0, 1e-9))
		Expect(red.B).To(BeNumerically("~", 0.0, 1e-9))

		teal, ok := colorname.Lookup("teal")
		Expect(ok).To(BeTrue())
		Expect(teal.G).To(BeNumerically("~", 128.0/255.0, 1e-9))
		Expect(teal.B).To(BeNumerically("~", 128.0/255.0, 1e-9))
	})

	It("is case insensitive and trims whitespace", func() {
		a, ok := colorname.Lookup("HotPink")
		Expect(ok).To(BeTrue())
		b, ok := colorname.Lookup("  hotpink ")
		Expect(ok).To(BeTrue())
		Expect(a).To(Equal(b))
	})

	It("treats grey and gray spellings as the same colour", func() {
		grey, ok := colorname.Lookup("slategrey")
		Expect(ok).To(BeTrue())
		gray, ok := colorname.Lookup("slategray")
		Expect(ok).To(BeTrue())
		Expect(grey).To(Equal(gray))
	})

	It("rejects unknown names", func() {
		_, ok := colorname.Lookup("blurple")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Names", func() {
	It("returns a sorted, non-empty list that round-trips through Lookup", func() {
		names := colorname.Names()
		Expect(names).NotTo(BeEmpty())
		Expect(names).To(ContainElement("rebeccapurple"))
		for i := 1; i < len(names); i++ {
			Expect(names[i-1] < names[i]).To(BeTrue())
		}
		for _, name := range names {
			_, ok := colorname.Lookup(name)
			Expect(ok).To(BeTrue(), "name %q should resolve", name)
		}
	})
})
