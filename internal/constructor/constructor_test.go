package constructor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"tourmovns/internal/domain"
)

func testCatalog() *domain.Catalog {
	attractions := []domain.Attraction{
		{ID: 0, Name: "A0", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 50, Rating: 4.8},
		{ID: 1, Name: "A1", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 5, Rating: 3.0},
		{ID: 2, Name: "A2", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 0, Rating: 4.0},
		{ID: 3, Name: "A3", VisitMinutes: 60, OpenMinute: 480, CloseMinute: 1200, Cost: 20, Rating: 2.5},
	}
	hotels := []domain.Hotel{{ID: 0, Name: "H0", NightlyCost: 100, Rating: 4.0}}
	n := len(attractions) + len(hotels)
	m := domain.NewTravelMatrixSet(n, nil, false)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from != to {
				m.Set(domain.Walk, domain.LocationID(from), domain.LocationID(to), 15, 1)
			}
		}
	}
	return &domain.Catalog{Attractions: attractions, Hotels: hotels, Matrix: m, Scoring: domain.DefaultScoringOptions}
}

func TestMaxAttractionsVisitsEveryAttractionWhenFeasible(t *testing.T) {
	cat := testCatalog()
	sol := MaxAttractions(cat, 0)
	require.Equal(t, len(cat.Attractions), len(sol.Day1.POIs)+len(sol.Day2.POIs))
	require.False(t, sol.HasDuplicateAttraction())
}

func TestMaxRatingPrefersHighestRatedFirst(t *testing.T) {
	cat := testCatalog()
	sol := MaxRating(cat, 0)
	require.Contains(t, sol.Day1.POIs, 0, "A0 has the highest rating and should be visited first")
}

func TestMinCostSkipsAboveAverageCostAttractions(t *testing.T) {
	cat := testCatalog()
	sol := MinCost(cat, 0)
	all := append(append([]int(nil), sol.Day1.POIs...), sol.Day2.POIs...)
	require.NotContains(t, all, 0, "A0's cost of 50 is well above the mean and should be skipped")
}

func TestBalancedProducesAFeasibleSolution(t *testing.T) {
	cat := testCatalog()
	sol := Balanced(cat, 0)
	require.False(t, sol.HasDuplicateAttraction())
}

func TestMinTravelTimeVisitsEveryReachableAttraction(t *testing.T) {
	cat := testCatalog()
	sol := MinTravelTime(cat, 0)
	require.Equal(t, len(cat.Attractions), len(sol.Day1.POIs)+len(sol.Day2.POIs))
	require.False(t, sol.HasDuplicateAttraction())
}

func TestSeedsReturnsExactlyWantSolutions(t *testing.T) {
	cat := testCatalog()
	rng := rand.New(rand.NewSource(42))
	seeds := Seeds(cat, rng, 8)
	require.Len(t, seeds, 8)
	for _, s := range seeds {
		require.True(t, s.Feasible)
	}
}

func TestSeedsAreAllRepairedAndFeasible(t *testing.T) {
	cat := testCatalog()
	rng := rand.New(rand.NewSource(1))
	seeds := Seeds(cat, rng, 5)
	for _, s := range seeds {
		require.False(t, s.HasDuplicateAttraction())
	}
}
