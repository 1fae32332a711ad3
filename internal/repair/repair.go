// Package repair implements feasibility repair: a candidate produced by a
// neighborhood move or shake that violates the day window or an
// opening-hours invariant is salvaged by truncation rather than discarded
// outright. Repair never reorders stops. Dropping a repeated attraction
// (dedup) can remove it from anywhere in a day, and then every leg of that
// day is given the fastest feasible mode anew; after dedup, attractions are
// only dropped from the end of a day, which keeps every surviving leg's
// mode except the new return leg to the hotel.
package repair

import (
	"tourmovns/internal/domain"
	"tourmovns/internal/evaluator"
)

// Repair dedups sol (keeping each attraction's first occurrence across the
// two days), then greedily drops the last attraction of whichever day is
// still infeasible until both days schedule within the 08:00-20:00 window
// without an opening-hours violation. It returns the repaired, evaluated
// solution and whether it ended up feasible. A solution that repairs down
// to both days empty is returned with Feasible false so the caller can
// discard it rather than insert a degenerate archive entry.
func Repair(cat *domain.Catalog, sol domain.Solution) (domain.Solution, bool) {
	out := dedup(cat, sol)

	out.Day1 = repairDay(cat, out.HotelID, out.Day1)
	out.Day2 = repairDay(cat, out.HotelID, out.Day2)

	if out.IsEmpty() {
		out.Feasible = false
		return out, false
	}

	evaluated, err := evaluator.Evaluate(cat, out)
	if err != nil {
		evaluated.Feasible = false
		return evaluated, false
	}
	return evaluated, true
}

// dedup removes any attraction from Day2 that already appears in Day1,
// keeping Day1's occurrence. Day1 keeps its own first occurrence of a
// repeated index, dropping the later one, as a defensive measure against
// malformed input from a neighborhood move.
func dedup(cat *domain.Catalog, sol domain.Solution) domain.Solution {
	out := sol.Clone()

	seen1 := make(map[int]struct{}, len(out.Day1.POIs))
	day1 := dropWhere(out.Day1, seen1)

	day2 := dropWhere(out.Day2, seen1)

	if len(day1.POIs) != len(out.Day1.POIs) {
		day1.Modes = rebuildModes(cat, out.HotelID, day1.POIs)
	} else {
		day1.Modes = out.Day1.Modes
	}
	if len(day2.POIs) != len(out.Day2.POIs) {
		day2.Modes = rebuildModes(cat, out.HotelID, day2.POIs)
	} else {
		day2.Modes = out.Day2.Modes
	}

	out.Day1 = day1
	out.Day2 = day2
	return out
}

// dropWhere removes any POI already present in seen and adds every POI it
// keeps to seen. Removing a POI changes the adjacency of its neighbors, so
// the day's legs no longer correspond to the original Modes slice; the
// caller rebuilds modes against the catalog once all drops are known.
func dropWhere(day domain.DayRoute, seen map[int]struct{}) domain.DayRoute {
	keepPOIs := make([]int, 0, len(day.POIs))
	for _, p := range day.POIs {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		keepPOIs = append(keepPOIs, p)
	}
	return domain.DayRoute{POIs: keepPOIs}
}

// rebuildModes chooses the fastest feasible mode for every leg of an
// attraction sequence, hotel-to-first through last-to-hotel. Used only
// after dedup reshapes adjacency; plain end-truncation in repairDay keeps
// every surviving leg's original mode untouched.
func rebuildModes(cat *domain.Catalog, hotelIdx int, pois []int) []domain.Mode {
	if len(pois) == 0 {
		return nil
	}
	hotelLoc := cat.HotelLocation(hotelIdx)
	modes := make([]domain.Mode, len(pois)+1)
	prev := hotelLoc
	for i, p := range pois {
		cur := cat.AttractionLocation(p)
		mode, _, ok := cat.Matrix.FastestFeasibleMode(prev, cur)
		if !ok {
			mode = domain.Car
		}
		modes[i] = mode
		prev = cur
	}
	mode, _, ok := cat.Matrix.FastestFeasibleMode(prev, hotelLoc)
	if !ok {
		mode = domain.Car
	}
	modes[len(pois)] = mode
	return modes
}

// repairDay drops the last attraction of day, recomputing a fresh
// hotel-bound return leg each time, until EvaluateDay accepts it or the day
// is empty.
func repairDay(cat *domain.Catalog, hotelIdx int, day domain.DayRoute) domain.DayRoute {
	cur := day
	for {
		if _, err := evaluator.EvaluateDay(cat, hotelIdx, cur); err == nil {
			return cur
		}
		if len(cur.POIs) == 0 {
			return cur
		}
		cur = dropLast(cat, hotelIdx, cur)
	}
}

// dropLast removes the last attraction of day and chooses a fresh fastest-
// feasible mode for the new final leg back to the hotel, since the leg
// that previously closed the day pointed at the attraction being dropped
// and cannot be reused.
func dropLast(cat *domain.Catalog, hotelIdx int, day domain.DayRoute) domain.DayRoute {
	out := day.Clone()
	out.POIs = out.POIs[:len(out.POIs)-1]
	out.Stops = nil
	if len(out.POIs) == 0 {
		out.Modes = nil
		return out
	}
	out.Modes = out.Modes[:len(out.POIs)]
	lastLoc := cat.AttractionLocation(out.POIs[len(out.POIs)-1])
	hotelLoc := cat.HotelLocation(hotelIdx)
	mode, _, ok := cat.Matrix.FastestFeasibleMode(lastLoc, hotelLoc)
	if !ok {
		mode = domain.Car
	}
	out.Modes = append(out.Modes, mode)
	return out
}
