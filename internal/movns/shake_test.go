package movns

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"tourmovns/internal/domain"
	"tourmovns/internal/neighborhood"
)

func walkModes(n int) []domain.Mode {
	out := make([]domain.Mode, n)
	for i := range out {
		out[i] = domain.Walk
	}
	return out
}

func baseShakeSolution() domain.Solution {
	return domain.Solution{
		HotelID: 0,
		Day1:    domain.DayRoute{POIs: []int{0, 1, 2}, Modes: walkModes(4)},
		Day2:    domain.DayRoute{POIs: []int{3}, Modes: walkModes(2)},
	}
}

func TestShakeAppliesMovesThenRepairsIntoAFeasibleSolution(t *testing.T) {
	cat := testCatalog()
	seed := baseShakeSolution()
	rng := rand.New(rand.NewSource(2))

	result, ok := Shake(rng, cat, seed, neighborhood.InternalSwap{}, 2)
	require.True(t, ok)
	require.False(t, result.HasDuplicateAttraction())
}

func TestShakeFailsWhenTheNeighborhoodNeverProducesAMove(t *testing.T) {
	cat := testCatalog()
	cat.Hotels = cat.Hotels[:1]
	seed := baseShakeSolution()
	rng := rand.New(rand.NewSource(2))

	result, ok := Shake(rng, cat, seed, neighborhood.ChangeHotel{}, 3)
	require.False(t, ok)
	require.Equal(t, seed, result)
}
