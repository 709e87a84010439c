package statistics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, Mean(nil))
	require.Equal(t, 0.5, Mean([]float64{0.0, 1.0}))
	require.InDelta(t, 0.6, Mean([]float64{0.4, 0.6, 0.8}), 1e-9)
}

func TestStdDev(t *testing.T) {
	require.Equal(t, 0.0, StdDev(nil))
	require.Equal(t, 0.0, StdDev([]float64{0.7, 0.7, 0.7}))
	require.InDelta(t, 0.5, StdDev([]float64{0.0, 1.0}), 1e-9)
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax(nil)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 0.0, hi)

	lo, hi = MinMax([]float64{0.7, 0.2, 0.9, 0.4})
	require.Equal(t, 0.2, lo)
	require.Equal(t, 0.9, hi)
}

func TestBootstrapCI_FewDataPoints(t *testing.T) {
	ci := BootstrapCI([]float64{0.8}, 0.95, 1)
	require.Equal(t, 0.8, ci.Lower)
	require.Equal(t, 0.8, ci.Upper)
	require.Equal(t, 0, ci.NumBootstraps)
}

func TestBootstrapCI_ContainsMean(t *testing.T) {
	scores := []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.55, 0.65, 0.75}
	ci := BootstrapCI(scores, 0.95, 1)

	require.LessOrEqual(t, ci.Lower, ci.Mean)
	require.GreaterOrEqual(t, ci.Upper, ci.Mean)
	require.Equal(t, DefaultBootstrapIterations, ci.NumBootstraps)
}

func TestBootstrapCI_ReproducibleWithSeed(t *testing.T) {
	scores := []float64{0.5, 0.6, 0.7, 0.8}
	require.Equal(t, BootstrapCI(scores, 0.95, 42), BootstrapCI(scores, 0.95, 42))
}
