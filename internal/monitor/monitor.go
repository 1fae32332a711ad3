// Package monitor implements quality-indicator tracking: a ring buffer
// of archive snapshots feeding exact hypervolume, Deb's spread, the
// additive ε-indicator, and IGD, plus the two signals the driver
// consults each outer loop — "spread-stuck" and "epsilon-converged".
package monitor

import (
	"context"

	"tourmovns/internal/archive"
	"tourmovns/internal/config"
	"tourmovns/internal/domain"
	"tourmovns/internal/indicator"
	"tourmovns/internal/ports"
)

// Signal is the per-outer-loop result of Tick: the four quality
// indicators plus the two convergence signals the driver's outer loop
// reacts to.
type Signal struct {
	HV               float64
	Spread           float64
	Epsilon          float64
	IGD              float64
	IGDAvailable     bool
	SpreadStuck      bool
	EpsilonConverged bool
}

// Monitor holds the rolling state Tick needs across outer loops: a
// snapshot ring buffer (a ring buffer of past archives, snapshots
// every 10 outer loops, length 3 by default), a finer-grained ring used
// only for the ε-indicator's own window, and the streak counters behind
// the two stagnation signals.
type Monitor struct {
	cfg config.Config
	ref ports.ReferenceFrontProvider

	loop int

	snapshots   [][]domain.Solution
	epsilonRing [][]domain.Solution

	hvRef *[4]float64

	highSpreadStreak int
	lowEpsilonStreak int
	refUnavailable   bool
}

func New(cfg config.Config, ref ports.ReferenceFrontProvider) *Monitor {
	return &Monitor{cfg: cfg, ref: ref}
}

// RefUnavailable reports whether the last Tick found neither an external
// reference front nor any retained snapshot to derive one from — the
// non-fatal ReferenceFrontUnavailable condition.
func (m *Monitor) RefUnavailable() bool { return m.refUnavailable }

// Tick records the current archive state, advances the loop counter, and
// computes this outer loop's Signal. Snapshotting for the long-window ring
// buffer happens every cfg.SnapshotEveryLoops loops; the ε-indicator ring
// is updated every call since its own window is measured in outer loops
// directly.
//
// The hypervolume reference point is derived once, from the first archive
// snapshot this Monitor ever sees, and frozen for the rest of the run: every
// later Tick reuses it. A reference recomputed from each loop's current
// archive would drift as the front improves, and HV(A_t) ≥ HV(A_{t-1})
// only holds against a fixed reference.
func (m *Monitor) Tick(ctx context.Context, a *archive.Archive) Signal {
	m.loop++
	cur := a.Snapshot()

	m.epsilonRing = append(m.epsilonRing, cur)
	if len(m.epsilonRing) > m.cfg.EpsilonWindowLoops+1 {
		m.epsilonRing = m.epsilonRing[1:]
	}

	if m.loop%m.cfg.SnapshotEveryLoops == 0 {
		m.snapshots = append(m.snapshots, cur)
		if len(m.snapshots) > m.cfg.SnapshotBufferLen {
			m.snapshots = m.snapshots[1:]
		}
	}

	negatedCur := negated(cur)
	if m.hvRef == nil {
		ref := indicator.ReferencePoint(negatedCur)
		m.hvRef = &ref
	}
	sig := Signal{
		HV:     indicator.HyperVolume(negatedCur, *m.hvRef),
		Spread: indicator.Spread(negatedCur),
	}

	if sig.Spread > m.cfg.SpreadThreshold {
		m.highSpreadStreak++
	} else {
		m.highSpreadStreak = 0
	}
	sig.SpreadStuck = m.highSpreadStreak >= m.cfg.SpreadWindow

	if len(m.epsilonRing) > m.cfg.EpsilonWindowLoops {
		past := m.epsilonRing[0]
		sig.Epsilon = indicator.Epsilon(negated(cur), negated(past))
		if sig.Epsilon <= m.cfg.EpsilonThreshold {
			m.lowEpsilonStreak++
		} else {
			m.lowEpsilonStreak = 0
		}
		sig.EpsilonConverged = m.lowEpsilonStreak >= m.cfg.EpsilonWindows
	}

	reference, ok := m.referenceFront(ctx, cur)
	m.refUnavailable = !ok
	if ok {
		sig.IGD = indicator.IGD(negated(referenceAsSolutions(reference)), negated(cur))
		sig.IGDAvailable = true
	}

	return sig
}

// referenceFront returns the configured external front if it has data,
// otherwise derives one from every retained snapshot plus the current
// archive. Returns ok=false only when both sources are empty.
func (m *Monitor) referenceFront(ctx context.Context, cur []domain.Solution) ([]domain.ObjectiveVector, bool) {
	if m.ref != nil {
		if front, err := m.ref.ReferenceFront(ctx); err == nil && len(front) > 0 {
			return front, true
		}
	}
	var derived []domain.ObjectiveVector
	for _, snap := range m.snapshots {
		for _, s := range snap {
			derived = append(derived, s.F)
		}
	}
	for _, s := range cur {
		derived = append(derived, s.F)
	}
	if len(derived) == 0 {
		return nil, false
	}
	return derived, true
}

func negated(sols []domain.Solution) [][4]float64 {
	out := make([][4]float64, len(sols))
	for i, s := range sols {
		out[i] = s.F.Negated()
	}
	return out
}

func referenceAsSolutions(vs []domain.ObjectiveVector) []domain.Solution {
	out := make([]domain.Solution, len(vs))
	for i, v := range vs {
		out[i] = domain.Solution{F: v}
	}
	return out
}
