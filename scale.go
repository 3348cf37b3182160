package human

import (
	"math"
	"strconv"
)

// scaleUnit is one rung of a unit ladder: the smallest magnitude the unit
// applies to, the divisor that scales a raw value into it, and its concise
// and full spellings.
type scaleUnit struct {
	threshold float64
	divisor   float64
	symbol    string
	word      string
}

// pickUnit returns the last ladder entry whose threshold does not exceed the
// absolute magnitude. Magnitudes below every threshold, including zero and
// negative values, map to the first entry; the sign is the caller's to
// render. Ladders are ordered ascending by threshold.
func pickUnit(ladder []scaleUnit, magnitude float64) scaleUnit {
	chosen := ladder[0]
	m := math.Abs(magnitude)
	for _, u := range ladder[1:] {
		if m < u.threshold {
			break
		}
		chosen = u
	}
	return chosen
}

// formatScaled renders a scaled value rounded half away from zero to one
// decimal digit. Values that round to a whole number render without a
// decimal point ("5", not "5.0").
func formatScaled(v float64) string {
	rounded := math.Round(v*10) / 10
	if rounded == math.Trunc(rounded) {
		return strconv.FormatInt(int64(rounded), 10)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
