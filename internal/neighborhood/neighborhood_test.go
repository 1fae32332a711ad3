package neighborhood

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"tourmovns/internal/domain"
)

func testCatalog() *domain.Catalog {
	attractions := make([]domain.Attraction, 6)
	for i := range attractions {
		attractions[i] = domain.Attraction{ID: i, Name: "A", VisitMinutes: 30, OpenMinute: 0, CloseMinute: 1440, Cost: 1, Rating: 3}
	}
	hotels := []domain.Hotel{
		{ID: 0, Name: "H0", NightlyCost: 100, Rating: 4},
		{ID: 1, Name: "H1", NightlyCost: 150, Rating: 4.5},
	}
	n := len(attractions) + len(hotels)
	m := domain.NewTravelMatrixSet(n, nil, false)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from == to {
				continue
			}
			m.Set(domain.Walk, domain.LocationID(from), domain.LocationID(to), 10, 1)
			m.Set(domain.Car, domain.LocationID(from), domain.LocationID(to), 5, 3)
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

func baseSolution() domain.Solution {
	return domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0, 1}, Modes: walkModes(3)},
		Day2:    domain.DayRoute{POIs: []int{2}, Modes: walkModes(2)},
	}
}

func TestByIndexWrapsAroundSequence(t *testing.T) {
	require.Equal(t, Sequence[0].Name(), ByIndex(1).Name())
	require.Equal(t, Sequence[0].Name(), ByIndex(len(Sequence)+1).Name())
	require.Equal(t, Sequence[len(Sequence)-1].Name(), ByIndex(len(Sequence)).Name())
}

func TestInternalSwapExchangesTwoPositions(t *testing.T) {
	cat := testCatalog()
	s := baseSolution()
	rng := rand.New(rand.NewSource(1))
	out, ok := InternalSwap{}.SampleOne(rng, s, cat)
	require.True(t, ok)
	require.ElementsMatch(t, s.Day1.POIs, out.Day1.POIs)
	require.NotEqual(t, s.Day1.POIs, out.Day1.POIs, "the only two-POI day should have its order changed")
}

func TestInternalSwapFailsWhenNoDayHasTwoAttractions(t *testing.T) {
	cat := testCatalog()
	s := domain.Solution{HotelID: 0, Day1: domain.DayRoute{POIs: []int{0}, Modes: walkModes(2)}, Day2: domain.DayRoute{}}
	_, ok := InternalSwap{}.SampleOne(rand.New(rand.NewSource(1)), s, cat)
	require.False(t, ok)
}

func TestInternalSwapEnumerateCoversEveryPair(t *testing.T) {
	cat := testCatalog()
	s := domain.Solution{HotelID: 0, Day1: domain.DayRoute{POIs: []int{0, 1, 2}, Modes: walkModes(4)}, Day2: domain.DayRoute{}}
	cands := InternalSwap{}.Enumerate(s, cat)
	require.Len(t, cands, 3) // C(3,2)
}

func TestCrossDayMoveNeverLeavesDuplicateAttraction(t *testing.T) {
	cat := testCatalog()
	s := baseSolution()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		out, ok := CrossDayMove{}.SampleOne(rng, s, cat)
		if !ok {
			continue
		}
		require.False(t, out.HasDuplicateAttraction())
	}
}

func TestInsertRemoveNeverIntroducesDuplicate(t *testing.T) {
	cat := testCatalog()
	s := baseSolution()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 30; i++ {
		out, ok := InsertRemove{}.SampleOne(rng, s, cat)
		if !ok {
			continue
		}
		require.False(t, out.HasDuplicateAttraction())
	}
}

func TestSubstitutionReplacesOneAttractionWithAnUnvisitedOne(t *testing.T) {
	cat := testCatalog()
	s := baseSolution()
	rng := rand.New(rand.NewSource(11))
	out, ok := Substitution{}.SampleOne(rng, s, cat)
	require.True(t, ok)
	require.False(t, out.HasDuplicateAttraction())
	require.Equal(t, len(s.Day1.POIs)+len(s.Day2.POIs), len(out.Day1.POIs)+len(out.Day2.POIs))
}

func TestTwoOptReversalReversesASubsequence(t *testing.T) {
	cat := testCatalog()
	s := domain.Solution{HotelID: 0, Day1: domain.DayRoute{POIs: []int{0, 1, 2, 3}, Modes: walkModes(5)}, Day2: domain.DayRoute{}}
	cands := TwoOptReversal{}.Enumerate(s, cat)
	require.NotEmpty(t, cands)
	for _, c := range cands {
		require.ElementsMatch(t, s.Day1.POIs, c.Day1.POIs)
	}
}

func TestChangeHotelOnlyTouchesHotelID(t *testing.T) {
	cat := testCatalog()
	s := baseSolution()
	out, ok := ChangeHotel{}.SampleOne(rand.New(rand.NewSource(1)), s, cat)
	require.True(t, ok)
	require.NotEqual(t, s.HotelID, out.HotelID)
	require.Equal(t, s.Day1.POIs, out.Day1.POIs)
	require.Equal(t, s.Day1.Modes, out.Day1.Modes)
}

func TestChangeHotelFailsWithOnlyOneHotel(t *testing.T) {
	cat := testCatalog()
	cat.Hotels = cat.Hotels[:1]
	s := baseSolution()
	_, ok := ChangeHotel{}.SampleOne(rand.New(rand.NewSource(1)), s, cat)
	require.False(t, ok)
}

func TestChangeModePicksADifferentFeasibleMode(t *testing.T) {
	cat := testCatalog()
	s := baseSolution()
	out, ok := ChangeMode{}.SampleOne(rand.New(rand.NewSource(5)), s, cat)
	require.True(t, ok)
	changed := false
	for d := 0; d < 2; d++ {
		sm, om := s.Day(d).Modes, out.Day(d).Modes
		for i := range sm {
			if sm[i] != om[i] {
				changed = true
			}
		}
	}
	require.True(t, changed)
}

func TestAllNeighborhoodsEnumerateWithoutPanicOnMinimalSolution(t *testing.T) {
	cat := testCatalog()
	s := domain.Solution{HotelID: 0, Day1: domain.DayRoute{}, Day2: domain.DayRoute{}}
	for _, nb := range Sequence {
		require.NotPanics(t, func() { nb.Enumerate(s, cat) })
	}
}
