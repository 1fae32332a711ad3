package domain

// Attraction is an immutable point of interest. Attractions are addressed
// by their position in Catalog.Attractions, never by name, once loaded.
type Attraction struct {
	ID           int
	Name         string
	Location     LatLng
	VisitMinutes int
	OpenMinute   int // minutes past midnight, e.g. 480 == 08:00
	CloseMinute  int
	Cost         float64
	Rating       float64 // in [0, 5]
}

// OpenAt reports whether the attraction can be entered at the given
// minute-of-day; closing time is exclusive of a fresh entry.
func (a Attraction) OpenAt(minute float64) bool {
	return minute >= float64(a.OpenMinute) && minute < float64(a.CloseMinute)
}

// Hotel is an immutable lodging location shared by both days of a Solution.
type Hotel struct {
	ID          int
	Name        string
	Location    LatLng
	NightlyCost float64
	Rating      float64 // in [0, 5]; only folded into F2 when
	// ScoringOptions.CountHotelRating is set.
}

// LocationID addresses any location — attraction or hotel — in a single
// dense index space, attractions first. Neighborhoods and the evaluator
// refer to locations only by LocationID once a Catalog is built.
type LocationID int

// Catalog is the immutable, read-only problem data the core operates
// over: attraction/hotel lists plus the travel matrix set between every
// pair of locations. Safe to share across concurrently running Driver
// instances without synchronization.
type Catalog struct {
	Attractions []Attraction
	Hotels      []Hotel
	Matrix      *TravelMatrixSet

	Scoring ScoringOptions
}

// ScoringOptions controls whether a hotel's own rating contributes to
// F2, alongside the attractions visited. Defaults to true.
type ScoringOptions struct {
	CountHotelRating bool
}

var DefaultScoringOptions = ScoringOptions{CountHotelRating: true}

func (c *Catalog) NumLocations() int {
	return len(c.Attractions) + len(c.Hotels)
}

// AttractionLocation returns the LocationID for the attraction at index i.
func (c *Catalog) AttractionLocation(i int) LocationID {
	return LocationID(i)
}

// HotelLocation returns the LocationID for the hotel at index i.
func (c *Catalog) HotelLocation(i int) LocationID {
	return LocationID(len(c.Attractions) + i)
}

func (c *Catalog) AttractionCoords(i int) LatLng {
	return c.Attractions[i].Location
}

func (c *Catalog) LocationCoords(id LocationID) LatLng {
	n := len(c.Attractions)
	if int(id) < n {
		return c.Attractions[id].Location
	}
	return c.Hotels[int(id)-n].Location
}
