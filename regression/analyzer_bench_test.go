package regression

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

func generateBenchmarkData(n int) (x, y []float64) {
	r := rand.New(rand.NewPCG(7, 7))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range n {
		x[i] = float64(i + 1)
		y[i] = 12 + 40/x[i] + r.NormFloat64()*0.05
	}

	return x, y
}

func BenchmarkFit(b *testing.B) {
	for _, mt := range AllModelTypes {
		for _, size := range []int{100, 5000} {
			b.Run(fmt.Sprintf("%s/Points_%d", mt, size), func(b *testing.B) {
				x, y := generateBenchmarkData(size)
				b.ReportAllocs()
				for b.Loop() {
					if _, err := Fit(mt, x, y); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	x, y := generateBenchmarkData(1000)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Analyze(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEstimate(b *testing.B) {
	est := NewPowerEstimator(2, 1.5)
	var sink float64
	for b.Loop() {
		sink += est.Estimate(42)
	}
	if math.IsNaN(sink) {
		b.Fatal("NaN estimate")
	}
}
