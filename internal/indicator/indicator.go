// Package indicator implements the quality indicators —
// exact hypervolume, Deb's generalized spread, the additive ε-indicator,
// and inverted generational distance — plus the hypervolume-contribution
// math the archive uses for truncation. Every function here operates in a
// single all-minimize convention: callers negate maximized objectives via
// domain.ObjectiveVector.Negated before calling in.
package indicator

import (
	"math"
	"sort"
)

// HyperVolume computes the exact d-dimensional hypervolume dominated by
// points with respect to ref, using the recursive slicing method (HSO):
// slice along the last dimension, accumulate each slice's height times the
// (d-1)-dimensional hypervolume of the points active in that slice. Exact
// for any d; this core only ever calls it at d=4, where the recursion
// bottoms out fast enough that Monte Carlo estimation — ruled out for
// termination decisions — is never needed.
func HyperVolume(points [][4]float64, ref [4]float64) float64 {
	pts := make([][]float64, len(points))
	for i, p := range points {
		pts[i] = []float64{p[0], p[1], p[2], p[3]}
	}
	return hv(pts, ref[:])
}

func hv(points [][]float64, ref []float64) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}
	d := len(ref)
	if d == 1 {
		min := points[0][0]
		for _, p := range points[1:] {
			if p[0] < min {
				min = p[0]
			}
		}
		v := ref[0] - min
		if v < 0 {
			return 0
		}
		return v
	}

	sorted := make([][]float64, n)
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][d-1] < sorted[j][d-1] })

	volume := 0.0
	for i := n - 1; i >= 0; i-- {
		var height float64
		if i == n-1 {
			height = ref[d-1] - sorted[i][d-1]
		} else {
			height = sorted[i+1][d-1] - sorted[i][d-1]
		}
		if height <= 0 {
			continue
		}
		subset := make([][]float64, i+1)
		for k := 0; k <= i; k++ {
			subset[k] = sorted[k][:d-1]
		}
		volume += height * hv(subset, ref[:d-1])
	}
	return volume
}

func euclid(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// Spread computes Deb's generalized spread (Δ) of front over an ordering
// by its first coordinate: Δ = (d_f + d_l + Σ|d_i - d̄|) / (d_f + d_l +
// (n-1)·d̄), where d_i is the distance between consecutive members and d_f,
// d_l are the distances from the front's own boundary members to the
// extreme member on each end — there being no externally supplied true
// front to anchor those two terms against. A front of fewer than two
// members has no defined spread and returns 0.
func Spread(front [][4]float64) float64 {
	n := len(front)
	if n < 2 {
		return 0
	}
	pts := make([][]float64, n)
	for i, p := range front {
		pts[i] = []float64{p[0], p[1], p[2], p[3]}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i][0] < pts[j][0] })

	distances := make([]float64, n-1)
	sum := 0.0
	for i := 0; i < n-1; i++ {
		distances[i] = euclid(pts[i], pts[i+1])
		sum += distances[i]
	}
	mean := sum / float64(n-1)

	dF := distances[0]
	dL := distances[n-2]

	deviation := 0.0
	for _, d := range distances {
		deviation += math.Abs(d - mean)
	}

	denominator := dF + dL + float64(n-1)*mean
	if denominator == 0 {
		return 0
	}
	return (dF + dL + deviation) / denominator
}

// Epsilon computes the additive ε-indicator I_ε+(a, b) per member of b
// against the closest member of a, then returns the max over b: the
// smallest ε such that every point of b is ε-dominated by some point of a.
// Used by the monitor between two archive snapshots spaced one convergence
// window apart to detect stagnation.
func Epsilon(a, b [][4]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return math.Inf(1)
	}
	worst := math.Inf(-1)
	for _, bp := range b {
		best := math.Inf(1)
		for _, ap := range a {
			m := math.Inf(-1)
			for i := 0; i < 4; i++ {
				diff := ap[i] - bp[i]
				if diff > m {
					m = diff
				}
			}
			if m < best {
				best = m
			}
		}
		if best > worst {
			worst = best
		}
	}
	return worst
}

// ReferencePoint computes the worst value per objective across points
// already in the all-minimize (negated) space, then relaxes every axis by
// 10% slack so a member sitting exactly at the worst point still
// contributes a positive hypervolume. The two originally-minimized axes
// (F3, F4, indices 2 and 3 — untouched by negation) get *1.10, pushing
// the worst observed value further away; the two originally-maximized
// axes (F1, F2, indices 0 and 1 — sign-flipped by negation) get *0.90,
// which in negated space has the same effect: it corresponds to a −10%
// slack in the original, un-negated space. Shared by the archive's
// truncation and the monitor's reported HV so both operate on the same
// reference.
func ReferencePoint(points [][4]float64) [4]float64 {
	var ref [4]float64
	for i, p := range points {
		if i == 0 {
			ref = p
			continue
		}
		for d := 0; d < 4; d++ {
			if p[d] > ref[d] {
				ref[d] = p[d]
			}
		}
	}
	for _, d := range []int{0, 1} {
		ref[d] *= 0.90
	}
	for _, d := range []int{2, 3} {
		ref[d] *= 1.10
	}
	return ref
}

// IGD computes the inverted generational distance from reference to
// front: the mean, over every reference point, of the Euclidean distance
// to the closest point in front. Reported only, never used to terminate a
// run.
func IGD(reference, front [][4]float64) float64 {
	if len(reference) == 0 || len(front) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range reference {
		best := math.Inf(1)
		for _, f := range front {
			d := euclid(r[:], f[:])
			if d < best {
				best = d
			}
		}
		total += best
	}
	return total / float64(len(reference))
}
