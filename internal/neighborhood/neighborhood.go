// Package neighborhood implements the seven move generators N1..N7.
// Each neighborhood exposes the same uniform contract — SampleOne for
// Shake's random perturbation, Enumerate for Pareto Local Search's
// exhaustive sweep — so the driver can hold them in a fixed-order sequence
// and dispatch through the Neighborhood interface without a type switch
// per operator.
package neighborhood

import (
	"math/rand"

	"tourmovns/internal/domain"
)

// Neighborhood is the uniform move-generator contract every Nk satisfies.
// SampleOne draws a single random move, used by Shake; it returns false if
// no move is possible (e.g. a day too short to swap). Enumerate lists every
// move reachable in one step, used by Pareto Local Search; callers
// evaluate and repair each candidate themselves — neither method does so.
type Neighborhood interface {
	Name() string
	SampleOne(rng *rand.Rand, s domain.Solution, cat *domain.Catalog) (domain.Solution, bool)
	Enumerate(s domain.Solution, cat *domain.Catalog) []domain.Solution
}

// Sequence is the fixed N1..N7 order the driver's VND and Shake-escalation
// walk through.
var Sequence = []Neighborhood{
	InternalSwap{},
	CrossDayMove{},
	InsertRemove{},
	Substitution{},
	TwoOptReversal{},
	ChangeHotel{},
	ChangeMode{},
}

// ByIndex returns the k-th neighborhood in the fixed sequence (1-indexed,
// matching the driver's k_max escalation counter).
func ByIndex(k int) Neighborhood {
	return Sequence[(k-1)%len(Sequence)]
}
