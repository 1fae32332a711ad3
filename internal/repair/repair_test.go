package repair

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tourmovns/internal/domain"
)

func testCatalog() *domain.Catalog {
	attractions := []domain.Attraction{
		{ID: 0, Name: "A0", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 10, Rating: 4.0},
		{ID: 1, Name: "A1", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 5, Rating: 4.5},
		{ID: 2, Name: "A2", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 5, Rating: 3.0},
	}
	hotels := []domain.Hotel{{ID: 0, Name: "H0", NightlyCost: 100, Rating: 4.0}}
	n := len(attractions) + len(hotels)
	m := domain.NewTravelMatrixSet(n, nil, false)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from != to {
				m.Set(domain.Walk, domain.LocationID(from), domain.LocationID(to), 20, 1)
			}
		}
	}
	return &domain.Catalog{Attractions: attractions, Hotels: hotels, Matrix: m, Scoring: domain.DefaultScoringOptions}
}

func walkModes(n int) []domain.Mode {
	out := make([]domain.Mode, n)
	for i := range out {
		out[i] = domain.Walk
	}
	return out
}

func TestRepairDedupsKeepingDay1Occurrence(t *testing.T) {
	cat := testCatalog()
	sol := domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0}, Modes: walkModes(2)},
		Day2:    domain.DayRoute{POIs: []int{0, 1}, Modes: walkModes(3)},
	}

	out, ok := Repair(cat, sol)
	require.True(t, ok)
	require.True(t, out.Feasible)
	require.Equal(t, []int{0}, out.Day1.POIs)
	require.Equal(t, []int{1}, out.Day2.POIs)
	require.False(t, out.HasDuplicateAttraction())
}

func TestRepairTruncatesOverrunningDayFromTheEnd(t *testing.T) {
	cat := testCatalog()
	// Force an overlong leg between A0 and A1 so the day overruns the
	// 08:00-20:00 window only once both attractions are included.
	cat.Matrix.Set(domain.Walk, cat.AttractionLocation(0), cat.AttractionLocation(1), 650, 1)

	sol := domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0, 1}, Modes: walkModes(3)},
		Day2:    domain.DayRoute{},
	}

	out, ok := Repair(cat, sol)
	require.True(t, ok)
	require.Equal(t, []int{0}, out.Day1.POIs, "the overrunning day should truncate to its prefix, never reorder")
}

func TestRepairNeverReordersSurvivingPrefix(t *testing.T) {
	cat := testCatalog()
	cat.Matrix.Set(domain.Walk, cat.AttractionLocation(1), cat.AttractionLocation(2), 650, 1)

	sol := domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0, 1, 2}, Modes: walkModes(4)},
		Day2:    domain.DayRoute{},
	}

	out, ok := Repair(cat, sol)
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, out.Day1.POIs)
}

func TestRepairReturnsInfeasibleWhenBothDaysCollapseToEmpty(t *testing.T) {
	cat := testCatalog()
	// Every leg is infeasibly long, so even a single attraction cannot be
	// scheduled within the day window.
	n := len(cat.Attractions) + len(cat.Hotels)
	m := domain.NewTravelMatrixSet(n, nil, false)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from != to {
				m.Set(domain.Walk, domain.LocationID(from), domain.LocationID(to), 5000, 1)
			}
		}
	}
	cat.Matrix = m

	sol := domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0}, Modes: walkModes(2)},
		Day2:    domain.DayRoute{POIs: []int{1}, Modes: walkModes(2)},
	}

	out, ok := Repair(cat, sol)
	require.False(t, ok)
	require.False(t, out.Feasible)
	require.True(t, out.IsEmpty())
}

func TestRepairOfAlreadyFeasibleSolutionIsUnchanged(t *testing.T) {
	cat := testCatalog()
	sol := domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0}, Modes: walkModes(2)},
		Day2:    domain.DayRoute{POIs: []int{1}, Modes: walkModes(2)},
	}

	out, ok := Repair(cat, sol)
	require.True(t, ok)
	require.Equal(t, []int{0}, out.Day1.POIs)
	require.Equal(t, []int{1}, out.Day2.POIs)
}
