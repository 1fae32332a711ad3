package domain

// Solution is exactly two DayRoutes sharing one hotel, plus the memoized
// objective vector F. Feasible is set by the evaluator; a Solution
// constructed directly (e.g. by a neighborhood move, before repair) may
// be infeasible or have a stale F until re-evaluated.
type Solution struct {
	HotelID int
	Day1    DayRoute
	Day2    DayRoute
	F       ObjectiveVector
	Feasible bool
}

// Clone returns a deep copy; every neighborhood move starts from one so
// mutation never aliases the caller's Solution, mirroring the original
// program's copy.deepcopy discipline.
func (s Solution) Clone() Solution {
	return Solution{
		HotelID:  s.HotelID,
		Day1:     s.Day1.Clone(),
		Day2:     s.Day2.Clone(),
		F:        s.F,
		Feasible: s.Feasible,
	}
}

// IsEmpty reports whether both days contain only the hotel — the
// degenerate solution that repair may produce and the driver must skip
// rather than insert into the archive.
func (s Solution) IsEmpty() bool {
	return len(s.Day1.POIs) == 0 && len(s.Day2.POIs) == 0
}

// HasDuplicateAttraction reports whether any attraction index appears in
// both days, which a feasible itinerary must never do.
func (s Solution) HasDuplicateAttraction() bool {
	seen := make(map[int]struct{}, len(s.Day1.POIs))
	for _, p := range s.Day1.POIs {
		seen[p] = struct{}{}
	}
	for _, p := range s.Day2.POIs {
		if _, ok := seen[p]; ok {
			return true
		}
	}
	return false
}

// Day returns the requested day's route: 0 for Day1, 1 for Day2.
func (s *Solution) Day(i int) *DayRoute {
	if i == 0 {
		return &s.Day1
	}
	return &s.Day2
}
