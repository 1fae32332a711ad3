package domain

// StopInfo records the arrival/wait/departure schedule at one stop of a
// DayRoute, including the two hotel stops at the start and end of the day.
// Populated by the evaluator; DayRoute itself only carries the ordered
// POIs and the modes connecting them.
type StopInfo struct {
	Location  LocationID
	Arrival   float64
	Wait      float64
	Departure float64
}

// DayRoute is one day's itinerary: an ordered list of attraction indices
// (into Catalog.Attractions) and the transport mode used for each of the
// len(POIs)+1 legs — hotel→p1, p1→p2, ..., pm→hotel.
type DayRoute struct {
	POIs  []int
	Modes []Mode

	// Stops is derived schedule data, filled in by evaluator.Evaluate.
	// For a feasible route its length is len(POIs)+2 (hotel, each POI,
	// hotel), or 1 (the hotel alone) when the day has no POIs. An
	// infeasible evaluation leaves Stops as it was.
	Stops []StopInfo
}

func (d DayRoute) NumAttractions() int { return len(d.POIs) }

// Clone returns a deep copy so neighborhood moves never alias the
// original solution's slices.
func (d DayRoute) Clone() DayRoute {
	out := DayRoute{
		POIs:  append([]int(nil), d.POIs...),
		Modes: append([]Mode(nil), d.Modes...),
	}
	if d.Stops != nil {
		out.Stops = append([]StopInfo(nil), d.Stops...)
	}
	return out
}

// HasAttraction reports whether POI index a appears anywhere in the day.
func (d DayRoute) HasAttraction(a int) bool {
	for _, p := range d.POIs {
		if p == a {
			return true
		}
	}
	return false
}
