package ephtile

// Unit identifies the measurement unit of a stored value. The low four
// bits are independent conversion-class flags; the remaining bits only
// disambiguate codes that happen to share flags.
type Unit int32

// Conversion-class flags.
const (
	unitDegrees   Unit = 1 << 0 // angle expressed in degrees rather than radians
	unitSixtieth  Unit = 1 << 1 // scaled by 60 (degrees -> arcminutes)
	unitSixtieth2 Unit = 1 << 2 // scaled by 60 again (arcminutes -> arcseconds)
	unitPerDay    Unit = 1 << 3 // rate expressed per day rather than per year
)

// Common unit codes.
const (
	UnitRad           Unit = 1 << 16
	UnitVMag          Unit = 2 << 16
	UnitDeg           Unit = 3<<16 | unitDegrees
	UnitArcmin        Unit = 4<<16 | unitDegrees | unitSixtieth
	UnitArcsec        Unit = 5<<16 | unitDegrees | unitSixtieth | unitSixtieth2
	UnitRadPerYear    Unit = 6 << 16
	UnitRadPerDay     Unit = 7<<16 | unitPerDay
	UnitArcsecPerYear Unit = 8<<16 | unitDegrees | unitSixtieth | unitSixtieth2
	UnitArcsecPerDay  Unit = 9<<16 | unitDegrees | unitSixtieth | unitSixtieth2 | unitPerDay
)

const (
	dd2r = 1.745329251994329576923691e-2 // degrees to radians
	dr2d = 57.29577951308232087679815    // radians to degrees

	daysPerYear = 365.25 // julian year
)

// Convert rescales v from unit src to unit dst. A dst of 0 or equal to
// src returns v unchanged. Each conversion-class flag is evaluated
// independently, in fixed order, so composite codes apply their
// transforms in sequence.
func Convert(src, dst Unit, v float64) float64 {
	if dst == 0 || src == dst { // most common case
		return v
	}

	if src&unitDegrees != 0 && dst&unitDegrees == 0 {
		v *= dd2r
	}
	if src&unitDegrees == 0 && dst&unitDegrees != 0 {
		v *= dr2d
	}
	if src&unitSixtieth != 0 && dst&unitSixtieth == 0 {
		v /= 60
	}
	if src&unitSixtieth == 0 && dst&unitSixtieth != 0 {
		v *= 60
	}
	if src&unitSixtieth2 != 0 && dst&unitSixtieth2 == 0 {
		v /= 60
	}
	if src&unitSixtieth2 == 0 && dst&unitSixtieth2 != 0 {
		v *= 60
	}
	if src&unitPerDay != 0 && dst&unitPerDay == 0 {
		v *= daysPerYear
	}
	if src&unitPerDay == 0 && dst&unitPerDay != 0 {
		v /= daysPerYear
	}
	return v
}
