package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHyperVolumeSinglePointIsBoxVolume(t *testing.T) {
	points := [][4]float64{{1, 1, 1, 1}}
	ref := [4]float64{2, 2, 2, 2}
	require.InDelta(t, 1.0, HyperVolume(points, ref), 1e-9)
}

func TestHyperVolumeIsMonotoneInPointCount(t *testing.T) {
	ref := [4]float64{10, 10, 10, 10}
	one := HyperVolume([][4]float64{{1, 1, 1, 1}}, ref)
	two := HyperVolume([][4]float64{{1, 1, 1, 1}, {2, 2, 2, 2}}, ref)
	require.GreaterOrEqual(t, two, one, "adding a dominated-region point can never shrink hypervolume")
}

func TestHyperVolumeDominatedPointAddsNothing(t *testing.T) {
	ref := [4]float64{10, 10, 10, 10}
	// (5,5,5,5) sits entirely within the box already covered by (1,1,1,1).
	withOne := HyperVolume([][4]float64{{1, 1, 1, 1}}, ref)
	withBoth := HyperVolume([][4]float64{{1, 1, 1, 1}, {5, 5, 5, 5}}, ref)
	require.InDelta(t, withOne, withBoth, 1e-9)
}

func TestHyperVolumePointBeyondReferenceContributesZero(t *testing.T) {
	ref := [4]float64{2, 2, 2, 2}
	v := HyperVolume([][4]float64{{3, 3, 3, 3}}, ref)
	require.InDelta(t, 0.0, v, 1e-9)
}

func TestSpreadOfFewerThanTwoMembersIsZero(t *testing.T) {
	require.Zero(t, Spread(nil))
	require.Zero(t, Spread([][4]float64{{1, 1, 1, 1}}))
}

func TestSpreadOfEvenlyDistributedFrontHasNoDeviationTerm(t *testing.T) {
	front := [][4]float64{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 0, 0, 0},
		{3, 0, 0, 0},
	}
	// With no externally supplied true-front boundary, dF/dL equal the
	// front's own edge gaps, so even perfectly even spacing has a nonzero
	// baseline spread; only the deviation term vanishes.
	require.InDelta(t, 0.4, Spread(front), 1e-9)
}

func TestSpreadOfClusteredFrontIsHigherThanEven(t *testing.T) {
	even := [][4]float64{{0, 0, 0, 0}, {1, 0, 0, 0}, {2, 0, 0, 0}, {3, 0, 0, 0}}
	clustered := [][4]float64{{0, 0, 0, 0}, {0.1, 0, 0, 0}, {0.2, 0, 0, 0}, {3, 0, 0, 0}}
	require.Greater(t, Spread(clustered), Spread(even))
}

func TestEpsilonZeroWhenAEqualsB(t *testing.T) {
	front := [][4]float64{{1, 1, 1, 1}, {2, 2, 2, 2}}
	require.InDelta(t, 0.0, Epsilon(front, front), 1e-9)
}

func TestEpsilonNegativeWhenAIsBetterThanB(t *testing.T) {
	a := [][4]float64{{1, 1, 1, 1}}
	b := [][4]float64{{2, 2, 2, 2}}
	// a already beats b by 1 on every axis, so a can be shifted by -1 and
	// still weakly dominate b.
	require.InDelta(t, -1.0, Epsilon(a, b), 1e-9)
}

func TestEpsilonInfiniteWhenEitherSideIsEmpty(t *testing.T) {
	require.True(t, math.IsInf(Epsilon(nil, [][4]float64{{1, 1, 1, 1}}), 1))
	require.True(t, math.IsInf(Epsilon([][4]float64{{1, 1, 1, 1}}, nil), 1))
}

func TestIGDZeroWhenFrontCoversReferenceExactly(t *testing.T) {
	ref := [][4]float64{{1, 1, 1, 1}, {2, 2, 2, 2}}
	require.InDelta(t, 0.0, IGD(ref, ref), 1e-9)
}

func TestIGDPositiveWhenFrontIsFarFromReference(t *testing.T) {
	ref := [][4]float64{{0, 0, 0, 0}}
	front := [][4]float64{{10, 10, 10, 10}}
	require.Greater(t, IGD(ref, front), 0.0)
}

func TestReferencePointAppliesSlackOnEveryAxis(t *testing.T) {
	points := [][4]float64{{-5, -5, 10, 20}, {-3, -2, 8, 15}}
	ref := ReferencePoint(points)
	// axes 0,1 are maximized objectives negated into this minimize space:
	// worst is the max value observed (-3, -2), pushed by *0.90, which is
	// a -10% slack in the original, un-negated space.
	require.InDelta(t, -2.7, ref[0], 1e-9)
	require.InDelta(t, -1.8, ref[1], 1e-9)
	// axes 2,3 are minimized objectives, unaffected by negation: worst is
	// the max value observed (10, 20), pushed further away by *1.10.
	require.InDelta(t, 11.0, ref[2], 1e-9)
	require.InDelta(t, 22.0, ref[3], 1e-9)
}

func TestReferencePointGivesASingleMemberFrontStrictlyPositiveHypervolume(t *testing.T) {
	front := [][4]float64{{-5, -5, 10, 20}}
	ref := ReferencePoint(front)
	require.Greater(t, HyperVolume(front, ref), 0.0, "the 10%/-10% slack on every axis must keep a single point off the reference point's boundary")
}
