package ephtile_test

import (
	"math"

	"github.com/bsm/ephtile"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Convert", func() {
	It("should pass through without a target unit", func() {
		Expect(ephtile.Convert(ephtile.UnitDeg, 0, 12.5)).To(Equal(12.5))
		Expect(ephtile.Convert(ephtile.UnitVMag, ephtile.UnitVMag, -1.44)).To(Equal(-1.44))
	})

	It("should convert angles", func() {
		Expect(ephtile.Convert(ephtile.UnitDeg, ephtile.UnitRad, 180)).To(BeNumerically("~", math.Pi, 1e-12))
		Expect(ephtile.Convert(ephtile.UnitRad, ephtile.UnitDeg, math.Pi)).To(BeNumerically("~", 180, 1e-9))
		Expect(ephtile.Convert(ephtile.UnitArcsec, ephtile.UnitDeg, 3600)).To(BeNumerically("~", 1, 1e-12))
		Expect(ephtile.Convert(ephtile.UnitDeg, ephtile.UnitArcmin, 2)).To(BeNumerically("~", 120, 1e-12))
	})

	It("should convert rates", func() {
		// 1 arcsec/day = 365.25/3600 deg/year in radians
		exp := 365.25 / 3600 * math.Pi / 180
		Expect(ephtile.Convert(ephtile.UnitArcsecPerDay, ephtile.UnitRadPerYear, 1)).To(BeNumerically("~", exp, 1e-15))
	})

	It("should combine flags in sequence", func() {
		// all four flags toggled at once
		got := ephtile.Convert(ephtile.UnitArcsecPerDay, ephtile.UnitRadPerYear, 1)
		step := ephtile.Convert(ephtile.UnitArcsecPerDay, ephtile.UnitArcsecPerYear, 1)
		step = ephtile.Convert(ephtile.UnitArcsecPerYear, ephtile.UnitRadPerYear, step)
		Expect(got).To(BeNumerically("~", step, 1e-18))
	})

	It("should be its own inverse under swapped units", func() {
		units := []ephtile.Unit{
			ephtile.UnitRad,
			ephtile.UnitVMag,
			ephtile.UnitDeg,
			ephtile.UnitArcmin,
			ephtile.UnitArcsec,
			ephtile.UnitRadPerYear,
			ephtile.UnitRadPerDay,
			ephtile.UnitArcsecPerYear,
			ephtile.UnitArcsecPerDay,
		}
		for flags := ephtile.Unit(1); flags < 16; flags++ { // raw flag combinations
			units = append(units, flags)
		}

		for _, u1 := range units {
			for _, u2 := range units {
				for _, v := range []float64{1, -273.15, 1.5e-9, 42424242} {
					w := ephtile.Convert(u2, u1, ephtile.Convert(u1, u2, v))
					Expect(w).To(BeNumerically("~", v, math.Abs(v)*1e-12), "for %#x -> %#x", u1, u2)
				}
			}
		}
	})
})
