package conv

import (
	"golang.org/x/exp/constraints"
)

// Cast converts v to the destination width. It reports false when the
// magnitude does not round-trip, i.e. the destination type is too narrow
// to represent v.
func Cast[Dst, Src constraints.Unsigned](v Src) (Dst, bool) {
	d := Dst(v)
	if Src(d) != v {
		return 0, false
	}
	return d, true
}
