package ephtile_test

import (
	"math/rand"

	"github.com/bsm/ephtile"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Deinterleave", func() {
	It("should transpose", func() {
		p := []byte("abcdef") // 2x3: "abc" / "def"
		ephtile.Deinterleave(p, 2, 3)
		Expect(string(p)).To(Equal("adbecf"))
	})

	It("should round-trip with swapped dimensions", func() {
		rnd := rand.New(rand.NewSource(33))
		for _, dims := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 3}, {16, 16}, {24, 1000}, {104, 57}} {
			nb, size := dims[0], dims[1]

			orig := make([]byte, nb*size)
			rnd.Read(orig)

			p := append([]byte(nil), orig...)
			ephtile.Deinterleave(p, nb, size)
			ephtile.Deinterleave(p, size, nb)
			Expect(p).To(Equal(orig), "for %dx%d", nb, size)
		}
	})

	It("should only touch the matrix region", func() {
		p := []byte("abcdefXY")
		ephtile.Deinterleave(p, 2, 3)
		Expect(string(p[6:])).To(Equal("XY"))
	})
})
