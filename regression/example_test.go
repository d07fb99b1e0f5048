package regression_test

import (
	"fmt"
	"log"
	"math"

	"github.com/arloliu/sigma/regression"
)

func ExampleFit() {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2 * math.Pow(v, 1.5)
	}

	model, err := regression.Fit(regression.ModelTypePower, x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(model.Formula)
	fmt.Printf("R²: %.4f\n", model.RSquared)
	fmt.Printf("y(9): %.2f\n", model.Estimator.Estimate(9))
	// Output:
	// y = 2 * x^1.5
	// R²: 1.0000
	// y(9): 54.00
}

func ExampleAnalyze() {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := []float64{15.1, 9.9, 8.4, 7.4, 7.1, 6.6, 6.4, 6.3}

	result, err := regression.Analyze(x, y, regression.WithModels(
		regression.ModelTypeLinear,
		regression.ModelTypeHyperbolic,
	))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("best:", result.BestFit.Type)
	fmt.Println("models:", len(result.AllModels))
	// Output:
	// best: hyperbolic
	// models: 2
}

func ExampleNewEstimator() {
	est, err := regression.NewEstimator("polynomial", []float64{1, 0, 2})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(est.Type(), est.Estimate(3))
	// Output: polynomial 19
}
