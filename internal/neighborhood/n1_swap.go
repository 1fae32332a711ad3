package neighborhood

import (
	"math/rand"

	"tourmovns/internal/domain"
)

// InternalSwap is N1: pick one day, exchange the attractions at two
// positions i<j within it. Modes are recomputed for every leg touching
// either position since both neighbors of each swapped attraction change.
type InternalSwap struct{}

func (InternalSwap) Name() string { return "N1-internal-swap" }

func (InternalSwap) SampleOne(rng *rand.Rand, s domain.Solution, cat *domain.Catalog) (domain.Solution, bool) {
	candidates := swapDays(s)
	if len(candidates) == 0 {
		return s, false
	}
	d := candidates[randIntn(rng, len(candidates))]
	day := s.Day(d)
	i := randIntn(rng, len(day.POIs))
	j := randIntn(rng, len(day.POIs)-1)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}
	out := s.Clone()
	applySwap(cat, out.HotelID, out.Day(d), i, j)
	return out, true
}

func (InternalSwap) Enumerate(s domain.Solution, cat *domain.Catalog) []domain.Solution {
	var out []domain.Solution
	for _, d := range swapDays(s) {
		day := s.Day(d)
		n := len(day.POIs)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cand := s.Clone()
				applySwap(cat, cand.HotelID, cand.Day(d), i, j)
				out = append(out, cand)
			}
		}
	}
	return out
}

// swapDays returns the indices of days with at least two attractions.
func swapDays(s domain.Solution) []int {
	var out []int
	if len(s.Day1.POIs) >= 2 {
		out = append(out, 0)
	}
	if len(s.Day2.POIs) >= 2 {
		out = append(out, 1)
	}
	return out
}

func applySwap(cat *domain.Catalog, hotelIdx int, day *domain.DayRoute, i, j int) {
	day.POIs[i], day.POIs[j] = day.POIs[j], day.POIs[i]
	recomputeModesFrom(cat, hotelIdx, day, i)
}
