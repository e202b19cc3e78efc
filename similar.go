package maxslog

import "math"

// RelativePrecision is the tolerance used by IsSimilar.
const RelativePrecision = 1e-7

const (
	posZeroBits = int64(0)
	negZeroBits = int64(math.MinInt64)
)

// IsSimilar reports whether a and b are equal within RelativePrecision.
// Two NaNs are similar; a single NaN is similar to nothing.
func IsSimilar(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return EqualsWithRelativeTolerance(a, b, RelativePrecision)
}

// EqualsWithRelativeTolerance reports whether x and y are at most one ulp
// apart, or whether |x-y| / max(|x|, |y|) <= eps. NaN is never equal.
func EqualsWithRelativeTolerance(x, y, eps float64) bool {
	if equalsULPs(x, y, 1) {
		return true
	}
	absMax := math.Max(math.Abs(x), math.Abs(y))
	relDiff := math.Abs((x - y) / absMax)
	return relDiff <= eps
}

// equalsULPs compares the ordered bit patterns of x and y. Values of
// opposite sign are compared through their distance to the zero of their
// own sign.
func equalsULPs(x, y float64, maxULPs int64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	xb := int64(math.Float64bits(x))
	yb := int64(math.Float64bits(y))

	if (xb^yb)&negZeroBits == 0 {
		d := xb - yb
		if d < 0 {
			d = -d
		}
		return d <= maxULPs
	}

	var deltaPlus, deltaMinus int64
	if xb < yb {
		deltaPlus = yb - posZeroBits
		deltaMinus = xb - negZeroBits
	} else {
		deltaPlus = xb - posZeroBits
		deltaMinus = yb - negZeroBits
	}
	if deltaPlus > maxULPs {
		return false
	}
	return deltaMinus <= maxULPs-deltaPlus
}
