// Package movns implements the MOVNS outer loop: seed the archive via
// internal/constructor, then repeatedly Shake a round-robin base
// solution, run Pareto Local Search (or weighted descent), and try
// inserting the result, escalating the neighborhood index on rejection
// and resetting it on acceptance. Termination follows a fixed
// precedence: time budget, then idle-loop count, then ε-indicator
// convergence, then an explicit iteration cap.
package movns

import (
	"context"
	"math/rand"
	"time"

	"tourmovns/internal/archive"
	"tourmovns/internal/config"
	"tourmovns/internal/constructor"
	"tourmovns/internal/domain"
	"tourmovns/internal/errs"
	"tourmovns/internal/evaluator"
	"tourmovns/internal/monitor"
	"tourmovns/internal/neighborhood"
	"tourmovns/internal/platform/obslog"
	"tourmovns/internal/ports"
)

// RunReport carries the per-outer-loop execution log plus the best
// solution seen so far per objective, surfaced for diagnostics since the
// CSV serializer that would persist them is out of scope.
type RunReport struct {
	Rows                      []ports.LogRow
	BestPerObjective          [4]domain.Solution
	ReferenceFrontUnavailable bool
	Iterations                int
}

// Driver owns one run's pseudo-random source and is never shared across
// concurrently running instances: each run is single-threaded and
// cooperative, with no locking anywhere in the core.
type Driver struct {
	cat  *domain.Catalog
	cfg  config.Config
	rng  *rand.Rand
	sink ports.ExecutionLogSink
	ref  ports.ReferenceFrontProvider
}

func NewDriver(cat *domain.Catalog, cfg config.Config, sink ports.ExecutionLogSink, ref ports.ReferenceFrontProvider) *Driver {
	return &Driver{
		cat:  cat,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		sink: sink,
		ref:  ref,
	}
}

// Run executes the outer loop until one of the termination conditions
// fires, returning the final archive and a report of every outer loop's
// indicators. Returns errs.EmptyArchive if seeding yields no feasible
// solution.
func (d *Driver) Run(ctx context.Context) (*archive.Archive, RunReport, error) {
	done := obslog.Time(ctx, "movns.Run")
	var runErr error
	defer func() { done(&runErr) }()

	a := archive.New(d.cfg.ArchiveMax)
	seeds := constructor.Seeds(d.cat, d.rng, d.cfg.InitialArchiveSize)
	var report RunReport
	for _, s := range seeds {
		if s.IsEmpty() {
			continue
		}
		updateBest(&report.BestPerObjective, s)
		a.TryInsert(s)
	}
	if a.Len() == 0 {
		runErr = errs.New(errs.EmptyArchive, "seeding produced no feasible solution")
		return a, report, runErr
	}

	mon := monitor.New(d.cfg, d.ref)
	start := time.Now()
	idleLoops := 0
	lastHV := 0.0
	var forced neighborhood.Neighborhood

	for {
		if d.cfg.MaxTime() > 0 && time.Since(start) >= d.cfg.MaxTime() {
			break
		}
		if idleLoops >= d.cfg.IdleLimit {
			break
		}
		if d.cfg.MaxIterations > 0 && report.Iterations >= d.cfg.MaxIterations {
			break
		}
		report.Iterations++

		base, ok := a.RoundRobinNext()
		if ok {
			d.runKLoop(a, base, forced, &report.BestPerObjective)
		}
		forced = nil

		signal := mon.Tick(ctx, a)
		if signal.HV > lastHV+d.cfg.Tau {
			idleLoops = 0
			lastHV = signal.HV
		} else {
			idleLoops++
		}

		row := ports.LogRow{
			Iteration:       report.Iterations,
			HV:              signal.HV,
			Spread:          signal.Spread,
			Epsilon:         signal.Epsilon,
			IGD:             signal.IGD,
			IGDAvailable:    signal.IGDAvailable,
			RepresentativeF: base.F,
			ArchiveSize:     a.Len(),
		}
		report.Rows = append(report.Rows, row)
		if d.sink != nil {
			_ = d.sink.Publish(ctx, row)
		}
		obslog.Iteration(report.Iterations, signal.HV, signal.Spread, signal.Epsilon, a.Len(), d.cfg.KMax)

		if signal.SpreadStuck {
			forced = neighborhood.TwoOptReversal{}
		}
		if signal.EpsilonConverged {
			break
		}
	}

	report.ReferenceFrontUnavailable = mon.RefUnavailable()
	return a, report, nil
}

// runKLoop is the pseudocode's "while k <= k_max" inner loop for a single
// round-robin base solution: escalate k on rejection, reset to 1 on
// acceptance.
func (d *Driver) runKLoop(a *archive.Archive, base domain.Solution, forced neighborhood.Neighborhood, best *[4]domain.Solution) {
	k := 1
	for k <= d.cfg.KMax {
		nb := forced
		if nb == nil {
			nb = neighborhood.ByIndex(k)
		}
		forced = nil

		shaken, ok := Shake(d.rng, d.cat, base, nb, k)
		if !ok {
			k++
			continue
		}

		var result domain.Solution
		if d.cfg.LocalSearchMode == config.WeightedDescent {
			result = WeightedDescent(d.rng, d.cat, shaken)
		} else {
			result = ParetoLocalSearch(d.cat, shaken)
		}

		evaluated, err := evaluator.Evaluate(d.cat, result)
		if err != nil {
			k++
			continue
		}
		updateBest(best, evaluated)

		if a.TryInsert(evaluated) {
			k = 1
		} else {
			k++
		}
	}
}

// updateBest records evaluated as the new best-known solution for any
// objective it improves on, tracking F1/F2 by maximum and F3/F4 by
// minimum.
func updateBest(best *[4]domain.Solution, s domain.Solution) {
	vals := s.F.Slice()
	for i := 0; i < 4; i++ {
		cur := best[i]
		curVals := cur.F.Slice()
		unset := isZeroSolution(cur)
		betterMax := domain.Maximize[i] && (unset || vals[i] > curVals[i])
		betterMin := !domain.Maximize[i] && (unset || vals[i] < curVals[i])
		if betterMax || betterMin {
			best[i] = s
		}
	}
}

// isZeroSolution reports whether s is the unset zero value of
// RunReport.BestPerObjective's array, i.e. no candidate has been recorded
// for that objective yet.
func isZeroSolution(s domain.Solution) bool {
	return s.Day1.POIs == nil && s.Day2.POIs == nil && s.F == (domain.ObjectiveVector{})
}
