package domain

// ObjectiveVector is the memoized objective vector F = (F1, F2, F3, F4) of
// a Solution: F1 attraction count (maximize), F2 rating sum (maximize),
// F3 travel+visit minutes (minimize), F4 entrance+travel cost (minimize).
type ObjectiveVector struct {
	F1 float64
	F2 float64
	F3 float64
	F4 float64
}

// Maximize flags which objectives are maximized, in F1..F4 order.
var Maximize = [4]bool{true, true, false, false}

func (v ObjectiveVector) Slice() [4]float64 {
	return [4]float64{v.F1, v.F2, v.F3, v.F4}
}

func FromSlice(s [4]float64) ObjectiveVector {
	return ObjectiveVector{F1: s[0], F2: s[1], F3: s[2], F4: s[3]}
}

// Dominates reports whether a Pareto-dominates b: at least as good on
// every objective and strictly better on at least one.
func Dominates(a, b ObjectiveVector) bool {
	av, bv := a.Slice(), b.Slice()
	strictlyBetter := false
	for i := range av {
		if Maximize[i] {
			if av[i] < bv[i] {
				return false
			}
			if av[i] > bv[i] {
				strictlyBetter = true
			}
		} else {
			if av[i] > bv[i] {
				return false
			}
			if av[i] < bv[i] {
				strictlyBetter = true
			}
		}
	}
	return strictlyBetter
}

// Equal reports whether two objective vectors are identical.
func Equal(a, b ObjectiveVector) bool {
	return a == b
}

// Negated returns a vector in "all minimize" space: maximized objectives
// are negated, minimized ones left as-is. Used by HV/ε/IGD math, which is
// naturally expressed over a single minimization convention.
func (v ObjectiveVector) Negated() [4]float64 {
	s := v.Slice()
	out := [4]float64{}
	for i := range s {
		if Maximize[i] {
			out[i] = -s[i]
		} else {
			out[i] = s[i]
		}
	}
	return out
}
