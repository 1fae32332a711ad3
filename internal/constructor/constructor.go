// Package constructor builds the initial archive seeds: five
// deterministic heuristics plus Bernoulli-sampled random-feasible seeds.
// Every constructor produces a Solution for a fixed hotel and leaves
// feasibility enforcement to internal/repair and internal/evaluator — a
// constructor never hand-rolls its own window check.
package constructor

import (
	"math/rand"
	"sort"

	"tourmovns/internal/domain"
	"tourmovns/internal/evaluator"
	"tourmovns/internal/repair"
)

// Seeds builds the full initial population: one solution from each of the
// five deterministic heuristics (against every hotel in the catalog, so a
// single-hotel catalog yields at most five), topped up with Bernoulli
// random-feasible seeds until the total reaches want or 100·want random
// attempts have been made, whichever comes first; a catalog with no
// feasible seed therefore yields fewer than want, possibly none.
// Infeasible or empty results from any heuristic are skipped rather than
// inserted.
func Seeds(cat *domain.Catalog, rng *rand.Rand, want int) []domain.Solution {
	var out []domain.Solution
	heuristics := []func(*domain.Catalog, int) domain.Solution{
		MaxAttractions,
		MaxRating,
		MinCost,
		MinTravelTime,
		Balanced,
	}
	for hotel := range cat.Hotels {
		for _, build := range heuristics {
			sol := build(cat, hotel)
			if repaired, ok := repair.Repair(cat, sol); ok {
				out = append(out, repaired)
			}
			if len(out) >= want {
				return out[:want]
			}
		}
	}
	for attempts := 0; len(out) < want && attempts < 100*want; attempts++ {
		sol := randomFeasible(cat, rng)
		if repaired, ok := repair.Repair(cat, sol); ok {
			out = append(out, repaired)
		}
	}
	return out
}

// randomFeasible is the Bernoulli(p=0.3) seed: sample every attraction
// independently, shuffle the sampled set, fill Day1 in that order while
// the day still evaluates feasibly, and spill the remainder into Day2
// (which repair truncates if it overruns).
func randomFeasible(cat *domain.Catalog, rng *rand.Rand) domain.Solution {
	const p = 0.3
	sampled := make([]int, 0, len(cat.Attractions))
	for i := range cat.Attractions {
		if rng.Float64() < p {
			sampled = append(sampled, i)
		}
	}
	rng.Shuffle(len(sampled), func(i, j int) { sampled[i], sampled[j] = sampled[j], sampled[i] })

	hotel := 0
	if len(cat.Hotels) > 1 {
		hotel = rng.Intn(len(cat.Hotels))
	}
	day1, day2 := splitWithModes(cat, hotel, sampled)
	return domain.Solution{HotelID: hotel, Day1: day1, Day2: day2}
}

// splitWithModes builds both days' attraction lists from a single ordered
// sequence, choosing the fastest feasible mode for every leg: Day1 takes
// the longest prefix that still evaluates feasibly, Day2 takes everything
// after it with no bound on day length — truncating Day2 to a feasible
// prefix is repair's job.
func splitWithModes(cat *domain.Catalog, hotel int, pois []int) (domain.DayRoute, domain.DayRoute) {
	var day1 domain.DayRoute
	n := 0
	for _, p := range pois {
		candidate := appendAttraction(cat, hotel, day1, p)
		if _, err := evaluator.EvaluateDay(cat, hotel, candidate); err != nil {
			break
		}
		day1 = candidate
		n++
	}
	day2 := buildSequential(cat, hotel, pois[n:])
	return day1, day2
}

// buildSequential assigns each leg of pois, in order, the fastest feasible
// mode between its endpoints.
func buildSequential(cat *domain.Catalog, hotel int, pois []int) domain.DayRoute {
	if len(pois) == 0 {
		return domain.DayRoute{}
	}
	modes := make([]domain.Mode, len(pois)+1)
	hotelLoc := cat.HotelLocation(hotel)
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
	return domain.DayRoute{POIs: append([]int(nil), pois...), Modes: modes}
}

// MaxAttractions greedily inserts attractions in descending rating order
// into whichever day still has room, stopping a day once the next
// attraction no longer fits the 08:00-20:00 window.
func MaxAttractions(cat *domain.Catalog, hotel int) domain.Solution {
	order := sortedByRatingDesc(cat)
	return greedyFill(cat, hotel, order, true)
}

// MaxRating is the same descending-rating order as MaxAttractions but
// tolerant of the first infeasibility per day: it keeps trying later,
// lower-rated candidates after one is rejected rather than stopping the
// day outright.
func MaxRating(cat *domain.Catalog, hotel int) domain.Solution {
	order := sortedByRatingDesc(cat)
	return greedyFill(cat, hotel, order, false)
}

// MinCost greedily inserts attractions in ascending entrance-cost order,
// skipping any attraction priced above costThreshold(cat).
func MinCost(cat *domain.Catalog, hotel int) domain.Solution {
	theta := costThreshold(cat)
	order := make([]int, 0, len(cat.Attractions))
	for i, a := range cat.Attractions {
		if a.Cost <= theta {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(i, j int) bool { return cat.Attractions[order[i]].Cost < cat.Attractions[order[j]].Cost })
	return greedyFill(cat, hotel, order, false)
}

// Balanced orders attractions by descending ratio of rating to
// (visit time + minimum travel time to any other attraction), favoring
// highly rated, centrally located, quick visits.
func Balanced(cat *domain.Catalog, hotel int) domain.Solution {
	score := make([]float64, len(cat.Attractions))
	for i, a := range cat.Attractions {
		minTravel := minTravelTimeToOthers(cat, i)
		denom := float64(a.VisitMinutes) + minTravel
		if denom <= 0 {
			denom = 1
		}
		score[i] = a.Rating / denom
	}
	order := make([]int, len(cat.Attractions))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return score[order[i]] > score[order[j]] })
	return greedyFill(cat, hotel, order, false)
}

func sortedByRatingDesc(cat *domain.Catalog) []int {
	order := make([]int, len(cat.Attractions))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return cat.Attractions[order[i]].Rating > cat.Attractions[order[j]].Rating })
	return order
}

// costThreshold is the mean entrance cost across the catalog; MinCost
// skips any attraction priced above it.
func costThreshold(cat *domain.Catalog) float64 {
	if len(cat.Attractions) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range cat.Attractions {
		total += a.Cost
	}
	return total / float64(len(cat.Attractions))
}

func minTravelTimeToOthers(cat *domain.Catalog, i int) float64 {
	from := cat.AttractionLocation(i)
	best := -1.0
	for j := range cat.Attractions {
		if j == i {
			continue
		}
		to := cat.AttractionLocation(j)
		_, leg, ok := cat.Matrix.FastestFeasibleMode(from, to)
		if !ok {
			continue
		}
		if best < 0 || leg.Minutes < best {
			best = leg.Minutes
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// greedyFill walks order, appending each attraction to whichever
// non-closed day currently has fewer attractions (ties favor Day1).
// stopEarly controls what a rejection means: with stopEarly, the first
// attraction that does not fit closes that day for the rest of order;
// otherwise the attraction is skipped and later, possibly smaller,
// candidates still get a chance at that day.
func greedyFill(cat *domain.Catalog, hotel int, order []int, stopEarly bool) domain.Solution {
	var day1, day2 domain.DayRoute
	day1Closed, day2Closed := false, false
	for _, poi := range order {
		if day1Closed && day2Closed {
			break
		}
		useDay1 := !day1Closed && (day2Closed || len(day1.POIs) <= len(day2.POIs))

		var candidate domain.DayRoute
		if useDay1 {
			candidate = appendAttraction(cat, hotel, day1, poi)
		} else {
			candidate = appendAttraction(cat, hotel, day2, poi)
		}

		if _, err := evaluator.EvaluateDay(cat, hotel, candidate); err != nil {
			if stopEarly {
				if useDay1 {
					day1Closed = true
				} else {
					day2Closed = true
				}
			}
			continue
		}
		if useDay1 {
			day1 = candidate
		} else {
			day2 = candidate
		}
	}
	return domain.Solution{HotelID: hotel, Day1: day1, Day2: day2}
}

func appendAttraction(cat *domain.Catalog, hotel int, day domain.DayRoute, poi int) domain.DayRoute {
	out := day.Clone()
	out.POIs = append(out.POIs, poi)
	hotelLoc := cat.HotelLocation(hotel)
	prev := hotelLoc
	if len(day.POIs) > 0 {
		prev = cat.AttractionLocation(day.POIs[len(day.POIs)-1])
	}
	cur := cat.AttractionLocation(poi)
	mode, _, ok := cat.Matrix.FastestFeasibleMode(prev, cur)
	if !ok {
		mode = domain.Car
	}
	returnMode, _, ok := cat.Matrix.FastestFeasibleMode(cur, hotelLoc)
	if !ok {
		returnMode = domain.Car
	}
	modes := append([]domain.Mode(nil), day.Modes...)
	if len(modes) > 0 {
		modes = modes[:len(modes)-1]
	}
	modes = append(modes, mode, returnMode)
	out.Modes = modes
	return out
}
