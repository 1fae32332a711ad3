package movns

import (
	"math/rand"

	"tourmovns/internal/domain"
	"tourmovns/internal/neighborhood"
	"tourmovns/internal/repair"
)

// Shake applies k independent random moves drawn from the k-th
// neighborhood in the fixed N1..N7 sequence, then repairs once at the
// end. Escalating k both selects a later, typically more disruptive
// neighborhood and deepens the perturbation.
func Shake(rng *rand.Rand, cat *domain.Catalog, seed domain.Solution, nb neighborhood.Neighborhood, k int) (domain.Solution, bool) {
	cur := seed
	moved := false
	for i := 0; i < k; i++ {
		next, ok := nb.SampleOne(rng, cur, cat)
		if !ok {
			continue
		}
		cur = next
		moved = true
	}
	if !moved {
		return seed, false
	}
	repaired, ok := repair.Repair(cat, cur)
	return repaired, ok
}
