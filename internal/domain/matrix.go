package domain

// LegCost is the travel duration and monetary cost of a single leg under a
// fixed transport mode.
type LegCost struct {
	Minutes float64
	Cost    float64
}

// infeasibleMinutes is the sentinel used internally to mark a missing/invalid
// matrix entry; never exposed outside this package.
const infeasibleMinutes = -1.0

// TravelMatrixSet holds the four dense (origin, destination) matrices, one
// per Mode, built once at load time. A mode is feasible for a leg iff its
// matrix entry exists and is positive-finite. Walk legs missing
// from the matrix fall back to a straight-line-distance estimate when
// WalkFallback is enabled and coordinates are known.
type TravelMatrixSet struct {
	n        int
	minutes  [NumModes][]float64
	cost     [NumModes][]float64
	coords   []LatLng // parallel to the LocationID space, for walk fallback
	fallback bool
}

// NewTravelMatrixSet allocates dense matrices for n locations, all entries
// initialized infeasible until Set is called.
func NewTravelMatrixSet(n int, coords []LatLng, allowWalkFallback bool) *TravelMatrixSet {
	t := &TravelMatrixSet{n: n, coords: coords, fallback: allowWalkFallback}
	for m := 0; m < NumModes; m++ {
		t.minutes[m] = make([]float64, n*n)
		t.cost[m] = make([]float64, n*n)
		for i := range t.minutes[m] {
			t.minutes[m][i] = infeasibleMinutes
		}
	}
	return t
}

func (t *TravelMatrixSet) idx(from, to LocationID) int {
	return int(from)*t.n + int(to)
}

// Set records a leg. This type only stores what it is given: a
// non-positive duration is not rejected here, and Lookup then treats the
// entry as infeasible.
func (t *TravelMatrixSet) Set(mode Mode, from, to LocationID, minutes, cost float64) {
	i := t.idx(from, to)
	t.minutes[mode][i] = minutes
	t.cost[mode][i] = cost
}

// Lookup returns the leg cost for the given mode and pair, or false if
// infeasible and no fallback applies.
func (t *TravelMatrixSet) Lookup(mode Mode, from, to LocationID) (LegCost, bool) {
	if from == to {
		return LegCost{}, true
	}
	i := t.idx(from, to)
	m := t.minutes[mode][i]
	if m > 0 {
		return LegCost{Minutes: m, Cost: t.cost[mode][i]}, true
	}
	if mode == Walk && t.fallback && t.coords != nil {
		mins := WalkingMinutes(t.coords[from], t.coords[to])
		if mins > 0 {
			return LegCost{Minutes: mins, Cost: 0}, true
		}
	}
	return LegCost{}, false
}

// FeasibleModes returns every mode feasible for the given leg, in
// AllModes order.
func (t *TravelMatrixSet) FeasibleModes(from, to LocationID) []Mode {
	out := make([]Mode, 0, NumModes)
	for _, m := range AllModes {
		if _, ok := t.Lookup(m, from, to); ok {
			out = append(out, m)
		}
	}
	return out
}

// FastestFeasibleMode returns the quickest feasible mode for a leg,
// breaking exact ties via Mode's walk>subway>bus>car preference order.
func (t *TravelMatrixSet) FastestFeasibleMode(from, to LocationID) (Mode, LegCost, bool) {
	var (
		best    Mode
		bestLeg LegCost
		found   bool
		tied    []Mode
	)
	for _, m := range AllModes {
		leg, ok := t.Lookup(m, from, to)
		if !ok {
			continue
		}
		switch {
		case !found || leg.Minutes < bestLeg.Minutes:
			best, bestLeg, found = m, leg, true
			tied = []Mode{m}
		case leg.Minutes == bestLeg.Minutes:
			tied = append(tied, m)
		}
	}
	if !found {
		return 0, LegCost{}, false
	}
	if len(tied) > 1 {
		best, _ = PreferredMode(tied)
		bestLeg, _ = t.Lookup(best, from, to)
	}
	return best, bestLeg, true
}
