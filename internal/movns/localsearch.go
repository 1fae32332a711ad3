package movns

import (
	"math"
	"math/rand"

	"tourmovns/internal/archive"
	"tourmovns/internal/domain"
	"tourmovns/internal/neighborhood"
	"tourmovns/internal/repair"
)

// localArchiveCap bounds the Pareto Local Search's own non-dominated set.
// It is generous relative to the main archive's default cap (60) since
// local search explores many more candidates per invocation than it keeps.
const localArchiveCap = 200

// ParetoLocalSearch implements a variable neighborhood descent: walk
// N1..N7 in order, enumerating every move of the current neighborhood,
// repairing and evaluating each, and inserting non-dominated results into
// a local archive. A candidate whose objective vector already belongs to a
// local-archive member is not accepted again, so plateaus of equal-valued
// moves cannot restart the walk forever. Any acceptance restarts the walk
// at N1 from the most recently accepted candidate; N7 yielding no
// acceptance terminates the search. The single solution returned is the
// last accepted candidate, or seed unchanged if nothing in the entire walk
// was ever accepted.
func ParetoLocalSearch(cat *domain.Catalog, seed domain.Solution) domain.Solution {
	local := archive.New(localArchiveCap)
	local.TryInsert(seed)
	current := seed

	idx := 1
	for idx <= len(neighborhood.Sequence) {
		nb := neighborhood.ByIndex(idx)
		accepted := false
		for _, candidate := range nb.Enumerate(current, cat) {
			repaired, ok := repair.Repair(cat, candidate)
			if !ok {
				continue
			}
			known := false
			for _, m := range local.Snapshot() {
				if m.F == repaired.F {
					known = true
					break
				}
			}
			if known {
				continue
			}
			if local.TryInsert(repaired) {
				current = repaired
				accepted = true
			}
		}
		if accepted {
			idx = 1
			continue
		}
		idx++
	}
	return current
}

// WeightedDescent is the secondary local-search mode: draw λ from the
// 4-simplex, then perform first-improvement minimization of Σ λᵢ·fᵢ
// (maximized objectives negated) over the same N1..N7 order.
func WeightedDescent(rng *rand.Rand, cat *domain.Catalog, seed domain.Solution) domain.Solution {
	lambda := randomSimplex4(rng)
	current := seed
	score := weightedScore(current.F, lambda)

	idx := 1
	for idx <= len(neighborhood.Sequence) {
		nb := neighborhood.ByIndex(idx)
		improved := false
		for _, candidate := range nb.Enumerate(current, cat) {
			repaired, ok := repair.Repair(cat, candidate)
			if !ok {
				continue
			}
			candidateScore := weightedScore(repaired.F, lambda)
			if candidateScore < score {
				current = repaired
				score = candidateScore
				improved = true
				break
			}
		}
		if improved {
			idx = 1
			continue
		}
		idx++
	}
	return current
}

// randomSimplex4 draws a uniform point on the 4-simplex via the
// exponential-sampling method: four independent Exp(1) draws normalized
// to sum to 1.
func randomSimplex4(rng *rand.Rand) [4]float64 {
	var raw [4]float64
	sum := 0.0
	for i := range raw {
		u := rng.Float64()
		if u <= 0 {
			u = 1e-12
		}
		raw[i] = -math.Log(u)
		sum += raw[i]
	}
	for i := range raw {
		raw[i] /= sum
	}
	return raw
}

func weightedScore(f domain.ObjectiveVector, lambda [4]float64) float64 {
	neg := f.Negated()
	total := 0.0
	for i := 0; i < 4; i++ {
		total += lambda[i] * neg[i]
	}
	return total
}
