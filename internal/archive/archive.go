// Package archive implements an elitist, HV-truncated archive: an
// unordered, capacity-bounded set of mutually non-dominated solutions.
// The archive is owned by exactly one driver; it is never
// shared across concurrently running instances and performs no locking.
package archive

import (
	"tourmovns/internal/domain"
	"tourmovns/internal/indicator"
)

// Archive is a flat buffer of mutually non-dominated solutions plus a
// round-robin cursor used by the driver to pick a base solution for
// shaking. Backed by a slice rather than a tree: at the archive sizes this
// core operates at (tens of members), recomputing HV contributions on
// every truncation is simpler and fast enough at the archive sizes this
// core operates at.
type Archive struct {
	cap     int
	members []domain.Solution
	cursor  int
	hvRef   *[4]float64
}

// New returns an empty archive with the given capacity.
func New(capacity int) *Archive {
	return &Archive{cap: capacity}
}

func (a *Archive) Len() int      { return len(a.members) }
func (a *Archive) Capacity() int { return a.cap }

// Snapshot returns a copy of the current members, safe for the caller to
// retain (e.g. the monitor's ring buffer) without aliasing the archive's
// internal slice.
func (a *Archive) Snapshot() []domain.Solution {
	out := make([]domain.Solution, len(a.members))
	copy(out, a.members)
	return out
}

// TryInsert applies the elitist archive's insertion rule: if any existing member
// dominates s, s is rejected. Otherwise every member s dominates is
// removed, s is inserted, and if the archive now exceeds capacity HV
// truncation runs. Returns true iff the archive's member set changed.
func (a *Archive) TryInsert(s domain.Solution) bool {
	for _, m := range a.members {
		if domain.Dominates(m.F, s.F) {
			return false
		}
	}

	kept := a.members[:0:0]
	for _, m := range a.members {
		if !domain.Dominates(s.F, m.F) {
			kept = append(kept, m)
		}
	}
	kept = append(kept, s)
	a.members = kept

	if len(a.members) > a.cap {
		a.hvTruncate()
	}
	return true
}

// RoundRobinNext returns the next member in round-robin order for the
// driver to shake from, cycling back to the start once every member has
// been visited once. Returns false if the archive is empty.
func (a *Archive) RoundRobinNext() (domain.Solution, bool) {
	if len(a.members) == 0 {
		return domain.Solution{}, false
	}
	if a.cursor >= len(a.members) {
		a.cursor = 0
	}
	s := a.members[a.cursor]
	a.cursor++
	return s, true
}

// hvTruncate removes the lowest-HV-contribution member repeatedly, ties
// broken by lowest F2 then lowest F1, until the archive is back at
// capacity. The reference point is derived once, the first time the
// archive ever truncates, extended by the usual 10%/-10% slack, and then
// frozen for every later truncation: recomputing it from each call's
// member set would make truncation decisions rely on a moving target.
func (a *Archive) hvTruncate() {
	if a.hvRef == nil {
		ref := indicator.ReferencePoint(negatedPoints(a.members))
		a.hvRef = &ref
	}
	ref := *a.hvRef
	for len(a.members) > a.cap {
		total := indicator.HyperVolume(negatedPoints(a.members), ref)
		worst := 0
		worstContribution := -1.0
		for i := range a.members {
			without := withoutIndex(a.members, i)
			contribution := total - indicator.HyperVolume(negatedPoints(without), ref)
			if worstContribution < 0 || contribution < worstContribution || (contribution == worstContribution && lowerTieBreak(a.members[i], a.members[worst])) {
				worst = i
				worstContribution = contribution
			}
		}
		a.members = withoutIndex(a.members, worst)
	}
	if a.cursor > len(a.members) {
		a.cursor = 0
	}
}

func lowerTieBreak(candidate, current domain.Solution) bool {
	if candidate.F.F2 != current.F.F2 {
		return candidate.F.F2 < current.F.F2
	}
	return candidate.F.F1 < current.F.F1
}

func withoutIndex(members []domain.Solution, i int) []domain.Solution {
	out := make([]domain.Solution, 0, len(members)-1)
	out = append(out, members[:i]...)
	out = append(out, members[i+1:]...)
	return out
}

// negatedPoints returns members' objective vectors in the all-minimize
// space indicator.HyperVolume operates in.
func negatedPoints(members []domain.Solution) [][4]float64 {
	pts := make([][4]float64, len(members))
	for i, m := range members {
		pts[i] = m.F.Negated()
	}
	return pts
}
