package stats

import (
	"math/rand/v2"
	"testing"
)

func benchSeries(n int) []float64 {
	return randomSeries(rand.New(rand.NewPCG(42, 42)), n, 0, 1)
}

func BenchmarkVarianceSample(b *testing.B) {
	values := benchSeries(10_000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = VarianceSample(values)
	}
}

func BenchmarkNewMoments(b *testing.B) {
	values := benchSeries(10_000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = NewMoments(values)
	}
}

func BenchmarkMedian(b *testing.B) {
	values := benchSeries(10_000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Median(values)
	}
}

func BenchmarkMode(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	values := make([]int, 10_000)
	for i := range values {
		values[i] = r.IntN(100)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = Mode(values)
	}
}

func BenchmarkLinearRegression(b *testing.B) {
	x := benchSeries(10_000)
	y := benchSeries(10_000)
	for _, method := range []RegressionMethod{MethodOLS, MethodMultiply} {
		b.Run(method.String(), func(b *testing.B) {
			for b.Loop() {
				_, _ = LinearRegression(x, y, method)
			}
		})
	}
}

func BenchmarkDescribe(b *testing.B) {
	values := benchSeries(10_000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Describe(values, WithModes(true))
	}
}
