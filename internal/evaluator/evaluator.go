// Package evaluator implements the pure feasibility/objective evaluator:
// given a Solution, it produces the memoized objective vector F and a
// feasibility flag, or the first feasibility error encountered. Evaluate
// has no side effects.
package evaluator

import (
	"fmt"

	"tourmovns/internal/domain"
)

// Kind distinguishes the reasons a candidate Solution can fail evaluation.
type Kind int

const (
	InfeasibleTime Kind = iota
	InfeasibleOpening
	DuplicatePoi
	InvalidMode
)

func (k Kind) String() string {
	switch k {
	case InfeasibleTime:
		return "InfeasibleTime"
	case InfeasibleOpening:
		return "InfeasibleOpening"
	case DuplicatePoi:
		return "DuplicatePoi"
	case InvalidMode:
		return "InvalidMode"
	default:
		return "UnknownFeasibilityError"
	}
}

// FeasibilityError reports why a candidate Solution failed evaluation.
// These are recovered by repair and never escalate past the driver.
type FeasibilityError struct {
	Kind   Kind
	Detail string
}

func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("evaluate: %s: %s", e.Kind, e.Detail)
}

const (
	dayStartMinute = 8 * 60
	dayEndMinute   = 20 * 60
)

// Evaluate computes F and the per-stop schedule for both days of sol,
// returning the first feasibility error encountered (duplicate check
// first, then day 1, then day 2). On success the returned Solution has
// Feasible set and Stops populated for both days.
func Evaluate(cat *domain.Catalog, sol domain.Solution) (domain.Solution, error) {
	if sol.HasDuplicateAttraction() {
		return sol, &FeasibilityError{Kind: DuplicatePoi, Detail: "attraction appears in both days"}
	}

	day1, err := EvaluateDay(cat, sol.HotelID, sol.Day1)
	if err != nil {
		return sol, err
	}
	day2, err := EvaluateDay(cat, sol.HotelID, sol.Day2)
	if err != nil {
		return sol, err
	}

	out := sol
	out.Day1 = day1
	out.Day2 = day2
	out.F = computeObjectives(cat, out)
	out.Feasible = true
	return out, nil
}

// EvaluateDay schedules a single day's legs against the catalog's travel
// matrix and opening hours, returning the day with Stops populated or the
// first feasibility error encountered. Exported so the repair package can
// re-check a day after truncating it without duplicating the clock-stepping
// logic.
func EvaluateDay(cat *domain.Catalog, hotelIdx int, day domain.DayRoute) (domain.DayRoute, error) {
	out := day.Clone()
	hotelLoc := cat.HotelLocation(hotelIdx)

	if len(out.POIs) == 0 {
		out.Stops = []domain.StopInfo{{Location: hotelLoc, Arrival: dayStartMinute, Departure: dayStartMinute}}
		return out, nil
	}

	if len(out.Modes) != len(out.POIs)+1 {
		return out, &FeasibilityError{Kind: InvalidMode, Detail: "mode count does not match leg count"}
	}

	stops := make([]domain.StopInfo, 0, len(out.POIs)+2)
	stops = append(stops, domain.StopInfo{Location: hotelLoc, Arrival: dayStartMinute, Departure: dayStartMinute})

	clock := float64(dayStartMinute)
	prevLoc := hotelLoc

	for i, poiIdx := range out.POIs {
		attr := cat.Attractions[poiIdx]
		curLoc := cat.AttractionLocation(poiIdx)
		mode := out.Modes[i]

		leg, ok := cat.Matrix.Lookup(mode, prevLoc, curLoc)
		if !ok {
			return out, &FeasibilityError{Kind: InvalidMode, Detail: fmt.Sprintf("no feasible %s leg to %s", mode, attr.Name)}
		}
		clock += leg.Minutes

		wait := 0.0
		if clock < float64(attr.OpenMinute) {
			wait = float64(attr.OpenMinute) - clock
			clock = float64(attr.OpenMinute)
		}

		if clock+float64(attr.VisitMinutes) > float64(attr.CloseMinute) {
			return out, &FeasibilityError{Kind: InfeasibleOpening, Detail: fmt.Sprintf("%s would close before visit ends", attr.Name)}
		}

		arrival := clock
		departure := clock + float64(attr.VisitMinutes)
		stops = append(stops, domain.StopInfo{Location: curLoc, Arrival: arrival, Wait: wait, Departure: departure})

		clock = departure
		prevLoc = curLoc
	}

	returnMode := out.Modes[len(out.POIs)]
	leg, ok := cat.Matrix.Lookup(returnMode, prevLoc, hotelLoc)
	if !ok {
		return out, &FeasibilityError{Kind: InvalidMode, Detail: "no feasible return leg to hotel"}
	}
	clock += leg.Minutes

	if clock > dayEndMinute {
		return out, &FeasibilityError{Kind: InfeasibleTime, Detail: "day window exceeded"}
	}

	stops = append(stops, domain.StopInfo{Location: hotelLoc, Arrival: clock, Departure: clock})
	out.Stops = stops
	return out, nil
}

// computeObjectives sums F1..F4 across both days, optionally folding the
// chosen hotel's rating into F2 per cat.Scoring.
func computeObjectives(cat *domain.Catalog, sol domain.Solution) domain.ObjectiveVector {
	var f domain.ObjectiveVector

	f.F1 = float64(sol.Day1.NumAttractions() + sol.Day2.NumAttractions())

	hotelLoc := cat.HotelLocation(sol.HotelID)
	for _, day := range [2]domain.DayRoute{sol.Day1, sol.Day2} {
		for _, poiIdx := range day.POIs {
			attr := cat.Attractions[poiIdx]
			f.F2 += attr.Rating
			f.F4 += attr.Cost
		}
		f.F3 += totalTravelAndVisit(day)
		f.F4 += totalTravelCost(cat, hotelLoc, day)
	}

	if cat.Scoring.CountHotelRating && f.F1 > 0 {
		hotel := cat.Hotels[sol.HotelID]
		f.F2 += hotel.Rating * 2
	}

	return f
}

// totalTravelCost replays each leg of day through the travel matrix and
// sums its monetary cost.
func totalTravelCost(cat *domain.Catalog, hotelLoc domain.LocationID, day domain.DayRoute) float64 {
	if len(day.POIs) == 0 {
		return 0
	}
	total := 0.0
	prevLoc := hotelLoc
	for i, poiIdx := range day.POIs {
		curLoc := cat.AttractionLocation(poiIdx)
		if leg, ok := cat.Matrix.Lookup(day.Modes[i], prevLoc, curLoc); ok {
			total += leg.Cost
		}
		prevLoc = curLoc
	}
	if leg, ok := cat.Matrix.Lookup(day.Modes[len(day.POIs)], prevLoc, hotelLoc); ok {
		total += leg.Cost
	}
	return total
}

// totalTravelAndVisit sums travel + visit minutes for a day: the elapsed
// wall clock between leaving and returning to the hotel, minus any time
// spent waiting for an attraction to open. day.Stops must already be
// populated.
func totalTravelAndVisit(day domain.DayRoute) float64 {
	if len(day.Stops) == 0 {
		return 0
	}
	total := day.Stops[len(day.Stops)-1].Arrival - day.Stops[0].Departure
	for _, stop := range day.Stops {
		total -= stop.Wait
	}
	return total
}
