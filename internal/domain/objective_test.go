package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDominatesStrictlyBetterOnOneAxis(t *testing.T) {
	a := ObjectiveVector{F1: 5, F2: 10, F3: 100, F4: 50}
	b := ObjectiveVector{F1: 5, F2: 10, F3: 90, F4: 50}
	require.True(t, Dominates(b, a), "lower F3 with everything else equal should dominate")
	require.False(t, Dominates(a, b))
}

func TestDominatesNeitherWhenTradingOff(t *testing.T) {
	a := ObjectiveVector{F1: 6, F2: 10, F3: 100, F4: 50}
	b := ObjectiveVector{F1: 5, F2: 10, F3: 90, F4: 50}
	require.False(t, Dominates(a, b))
	require.False(t, Dominates(b, a))
}

func TestNegatedFlipsOnlyMaximizedAxes(t *testing.T) {
	v := ObjectiveVector{F1: 3, F2: 7, F3: 40, F4: 20}
	got := v.Negated()
	require.Equal(t, [4]float64{-3, -7, 40, 20}, got)
}

func TestFromSliceRoundTrips(t *testing.T) {
	v := ObjectiveVector{F1: 1, F2: 2, F3: 3, F4: 4}
	require.Equal(t, v, FromSlice(v.Slice()))
}
