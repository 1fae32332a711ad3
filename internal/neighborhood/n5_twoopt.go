package neighborhood

import (
	"math/rand"

	"tourmovns/internal/domain"
)

// TwoOptReversal is N5: pick one day and reverse the sub-sequence
// [i..j]. Every leg from position i onward is then given the fastest
// feasible mode. Applying it twice on the same segment restores the
// original order; the original modes, and so the original schedule, come
// back only if those legs already used their fastest feasible mode.
type TwoOptReversal struct{}

func (TwoOptReversal) Name() string { return "N5-two-opt-reversal" }

func (TwoOptReversal) SampleOne(rng *rand.Rand, s domain.Solution, cat *domain.Catalog) (domain.Solution, bool) {
	days := reversalDays(s)
	if len(days) == 0 {
		return s, false
	}
	d := days[randIntn(rng, len(days))]
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
	applyReversal(cat, out.HotelID, out.Day(d), i, j)
	return out, true
}

func (TwoOptReversal) Enumerate(s domain.Solution, cat *domain.Catalog) []domain.Solution {
	var out []domain.Solution
	for _, d := range reversalDays(s) {
		day := s.Day(d)
		n := len(day.POIs)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cand := s.Clone()
				applyReversal(cat, cand.HotelID, cand.Day(d), i, j)
				out = append(out, cand)
			}
		}
	}
	return out
}

func reversalDays(s domain.Solution) []int {
	var out []int
	if len(s.Day1.POIs) >= 2 {
		out = append(out, 0)
	}
	if len(s.Day2.POIs) >= 2 {
		out = append(out, 1)
	}
	return out
}

func applyReversal(cat *domain.Catalog, hotelIdx int, day *domain.DayRoute, i, j int) {
	for l, r := i, j; l < r; l, r = l+1, r-1 {
		day.POIs[l], day.POIs[r] = day.POIs[r], day.POIs[l]
	}
	recomputeModesFrom(cat, hotelIdx, day, i)
}
