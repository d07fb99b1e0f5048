package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sigma/errs"
)

func TestModelTypeString(t *testing.T) {
	tests := []struct {
		mt   ModelType
		name string
	}{
		{ModelTypeLinear, "linear"},
		{ModelTypeHyperbolic, "hyperbolic"},
		{ModelTypeLogarithmic, "logarithmic"},
		{ModelTypePower, "power"},
		{ModelTypeExponential, "exponential"},
		{ModelTypePolynomial, "polynomial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.mt.String())
			require.True(t, tt.mt.IsValid())

			parsed, err := ModelTypeFromString(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.mt, parsed)
		})
	}

	require.Equal(t, "unknown", ModelType(42).String())
	require.False(t, ModelType(42).IsValid())

	parsed, err := ModelTypeFromString("Power")
	require.NoError(t, err)
	require.Equal(t, ModelTypePower, parsed)

	_, err = ModelTypeFromString("cubic")
	require.ErrorIs(t, err, errs.ErrInvalidModelType)
	require.Contains(t, err.Error(), "exponential, hyperbolic, linear")
}

func TestEstimators(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{"linear", []float64{3, 2}, 4, 11},
		{"hyperbolic", []float64{5, 10}, 2, 10},
		{"logarithmic", []float64{1, 4}, 1, 1},
		{"power", []float64{2, 0.5}, 16, 8},
		{"exponential", []float64{3, 0}, 7, 3},
		{"polynomial", []float64{1, 2, 3}, 2, 17},
		{"polynomial", []float64{4}, 100, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := NewEstimator(tt.name, tt.coeffs)
			require.NoError(t, err)
			require.Equal(t, tt.name, est.Type().String())
			require.Equal(t, tt.coeffs, est.Coefficients())
			require.InDelta(t, tt.want, est.Estimate(tt.x), 1e-12)
		})
	}
}

func TestEstimatorDomain(t *testing.T) {
	require.True(t, math.IsNaN(NewHyperbolicEstimator(1, 1).Estimate(0)))
	require.True(t, math.IsNaN(NewLogarithmicEstimator(1, 1).Estimate(0)))
	require.True(t, math.IsNaN(NewLogarithmicEstimator(1, 1).Estimate(-2)))
	require.True(t, math.IsNaN(NewPowerEstimator(1, 2).Estimate(-1)))
	require.InDelta(t, math.E, NewExponentialEstimator(1, 1).Estimate(1), 1e-15)
	require.Equal(t, -1.0, NewLinearEstimator(1, 1).Estimate(-2))
}

func TestSetCoefficients(t *testing.T) {
	t.Run("two-coefficient models", func(t *testing.T) {
		for _, est := range []Estimator{
			NewLinearEstimator(0, 0),
			NewHyperbolicEstimator(0, 0),
			NewLogarithmicEstimator(0, 0),
			NewPowerEstimator(0, 0),
			NewExponentialEstimator(0, 0),
		} {
			require.NoError(t, est.SetCoefficients([]float64{1.5, 2.5}))
			require.Equal(t, []float64{1.5, 2.5}, est.Coefficients())

			err := est.SetCoefficients([]float64{1, 2, 3})
			require.ErrorIs(t, err, errs.ErrInvalidCoefficients)
			require.Contains(t, err.Error(), est.Type().String())
		}
	})

	t.Run("polynomial", func(t *testing.T) {
		p, err := NewPolynomialEstimator(1, 0, 1)
		require.NoError(t, err)
		require.Equal(t, 2, p.Degree())

		require.NoError(t, p.SetCoefficients([]float64{0, 1}))
		require.Equal(t, 1, p.Degree())
		require.Equal(t, 5.0, p.Estimate(5))

		require.ErrorIs(t, p.SetCoefficients(nil), errs.ErrInvalidCoefficients)

		_, err = NewPolynomialEstimator()
		require.ErrorIs(t, err, errs.ErrInvalidCoefficients)
	})

	t.Run("coefficients are copies", func(t *testing.T) {
		src := []float64{1, 2, 3}
		p, err := NewPolynomialEstimator(src...)
		require.NoError(t, err)

		src[0] = 100
		got := p.Coefficients()
		got[1] = 100
		require.Equal(t, []float64{1, 2, 3}, p.Coefficients())
	})
}

func TestNewEstimatorErrors(t *testing.T) {
	_, err := NewEstimator("cubic", []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidModelType)

	_, err = NewEstimator("hyperbolic", []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidCoefficients)

	_, err = NewEstimator("polynomial", nil)
	require.ErrorIs(t, err, errs.ErrInvalidCoefficients)
}
