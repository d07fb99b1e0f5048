package sigma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sigma/errs"
	"github.com/arloliu/sigma/regression"
)

func TestShortcuts(t *testing.T) {
	values := []float64{1, 12, 19.5, -5, 3, 8}

	require.InDelta(t, 6.4166666667, Mean(values), 1e-10)
	require.Equal(t, 0.0, Mean(nil))

	median, err := Median(values)
	require.NoError(t, err)
	require.Equal(t, 5.5, median)

	v, err := Variance(values)
	require.NoError(t, err)
	require.InDelta(t, 75.2416666667, v, 1e-9)

	sd, err := StdDev(values)
	require.NoError(t, err)
	require.InDelta(t, 8.6741954478, sd, 1e-9)

	r, err := Correlation([]float64{1, 2, 3.5, 3.7, 8, 12}, []float64{0.5, 1, 2.1, 3.4, 3.4, 4})
	require.NoError(t, err)
	require.InDelta(t, 0.8437608594, r, 1e-9)

	summary, err := Describe(values)
	require.NoError(t, err)
	require.Equal(t, 6, summary.Count)
}

func TestShortcutErrors(t *testing.T) {
	_, err := Median(nil)
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Variance([]float64{1})
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = Correlation([]float64{1, 2}, []float64{3, 3})
	require.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = LinearFit([]float64{1, 1}, []float64{2, 3})
	require.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = BestFit([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestLinearFit(t *testing.T) {
	line, err := LinearFit([]float64{1, 2, 3}, []float64{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 1.0, line.Intercept)
	require.Equal(t, 1.0, line.Slope)
}

func TestBestFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 7 * math.Exp(0.25*v)
	}

	model, err := BestFit(x, y)
	require.NoError(t, err)
	require.Equal(t, regression.ModelTypeExponential, model.Type)
	require.InDelta(t, 7.0, model.Coefficients[0], 1e-9)
	require.InDelta(t, 0.25, model.Coefficients[1], 1e-12)
}
