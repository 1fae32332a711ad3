package neighborhood

import (
	"math/rand"

	"tourmovns/internal/domain"
)

// unvisited returns every attraction index not present in either day of s.
func unvisited(s domain.Solution, cat *domain.Catalog) []int {
	out := make([]int, 0, len(cat.Attractions))
	for i := range cat.Attractions {
		if !s.Day1.HasAttraction(i) && !s.Day2.HasAttraction(i) {
			out = append(out, i)
		}
	}
	return out
}

// pickDay returns a pointer to the requested day of s: 0 for Day1, 1 for
// Day2.
func pickDay(s *domain.Solution, d int) *domain.DayRoute {
	return s.Day(d)
}

// legLocation returns the LocationID a day's leg endpoint at position i
// resolves to: the hotel when i is -1 or len(POIs), the attraction
// otherwise.
func legLocation(cat *domain.Catalog, hotelIdx int, day domain.DayRoute, i int) domain.LocationID {
	if i < 0 || i >= len(day.POIs) {
		return cat.HotelLocation(hotelIdx)
	}
	return cat.AttractionLocation(day.POIs[i])
}

// recomputeModesFrom rebuilds every leg mode of day from index `from`
// onward (inclusive of the leg arriving at `from`) using the fastest
// feasible mode, leaving earlier legs untouched. Used after a structural
// edit (insert, remove, substitution, reversal) changes adjacency at and
// after that point.
func recomputeModesFrom(cat *domain.Catalog, hotelIdx int, day *domain.DayRoute, from int) {
	if len(day.POIs) == 0 {
		day.Modes = nil
		return
	}
	modes := make([]domain.Mode, len(day.POIs)+1)
	copy(modes, day.Modes)
	for i := from; i <= len(day.POIs); i++ {
		prevLoc := legLocation(cat, hotelIdx, *day, i-1)
		curLoc := legLocation(cat, hotelIdx, *day, i)
		mode, _, ok := cat.Matrix.FastestFeasibleMode(prevLoc, curLoc)
		if !ok {
			mode = domain.Car
		}
		if i < len(modes) {
			modes[i] = mode
		}
	}
	day.Modes = modes
}

// randIntn returns rng.Intn(n), or 0 if n <= 0 — callers already guard
// against an empty range but this keeps call sites free of the check.
func randIntn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
