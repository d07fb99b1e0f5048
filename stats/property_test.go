package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func randomSeries(r *rand.Rand, n int, mean, sd float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + sd*r.NormFloat64()
	}

	return values
}

func relDelta(t *testing.T, want, got, tol float64) {
	t.Helper()
	scale := math.Max(1, math.Abs(want))
	require.InDelta(t, want, got, tol*scale)
}

func TestAverageOrderInvariant(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		values := randomSeries(r, 2+r.IntN(200), 10, 5)
		want := Average(values)

		r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		relDelta(t, want, Average(values), 1e-12)
		relDelta(t, stat.Mean(values, nil), Average(values), 1e-12)
	}
}

func TestMedianOrdering(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		values := randomSeries(r, 1+r.IntN(40), 0, 3)

		low, err := MedianLow(values)
		require.NoError(t, err)
		mid, err := Median(values)
		require.NoError(t, err)
		high, err := MedianHigh(values)
		require.NoError(t, err)

		require.LessOrEqual(t, low, mid)
		require.LessOrEqual(t, mid, high)
		if len(values)%2 == 1 {
			require.Equal(t, low, mid)
			require.Equal(t, mid, high)
		}
	}
}

func TestMomentsMatchTwoPass(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 30 {
		values := randomSeries(r, 2+r.IntN(500), r.Float64()*100-50, 0.5+r.Float64()*20)
		m, err := NewMoments(values)
		require.NoError(t, err)

		sample, err := VarianceSample(values)
		require.NoError(t, err)
		relDelta(t, sample, m.VarianceSample(), 1e-9)
		relDelta(t, stat.Variance(values, nil), sample, 1e-9)

		pop, err := VariancePopulation(values)
		require.NoError(t, err)
		relDelta(t, pop, m.VariancePopulation(), 1e-9)
	}
}

func TestCovarianceAndPearsonProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 50 {
		n := 2 + r.IntN(100)
		a := randomSeries(r, n, 0, 1)
		b := randomSeries(r, n, 3, 2)
		for i := range b {
			b[i] += r.Float64() * a[i]
		}

		ab, err := CovarianceSample(a, b)
		require.NoError(t, err)
		ba, err := CovarianceSample(b, a)
		require.NoError(t, err)
		require.Equal(t, ab, ba)
		relDelta(t, stat.Covariance(a, b, nil), ab, 1e-9)

		rho, err := Pearson(a, b)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rho, -1-1e-12)
		require.LessOrEqual(t, rho, 1+1e-12)
		require.InDelta(t, stat.Correlation(a, b, nil), rho, 1e-9)
	}
}

func TestRegressionMethodsAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for range 30 {
		n := 2 + r.IntN(200)
		x := randomSeries(r, n, 0, 10)
		slope, intercept := r.Float64()*4-2, r.Float64()*10
		y := make([]float64, n)
		for i := range x {
			y[i] = intercept + slope*x[i] + r.NormFloat64()*0.1
		}

		ols, err := LinearRegression(x, y, MethodOLS)
		require.NoError(t, err)
		mul, err := LinearRegression(x, y, MethodMultiply)
		require.NoError(t, err)

		require.InDelta(t, ols.Slope, mul.Slope, 1e-6)
		require.InDelta(t, ols.Intercept, mul.Intercept, 1e-6)
	}
}
