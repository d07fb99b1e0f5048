// Package regression fits curve models to (x, y) data and ranks them by goodness of fit.
//
// Two-coefficient models are linearized and fitted with stats.LinearRegression,
// so both the OLS and the multiply slope estimators are available. The
// polynomial model is solved as a least squares problem with gonum's QR
// factorization.
//
// # Model Types
//
//   - Linear: y = a + b*x
//   - Hyperbolic: y = a + b/x (x != 0)
//   - Logarithmic: y = a + b*ln(x) (x > 0)
//   - Power: y = a * x^b (x > 0, y > 0)
//   - Exponential: y = a * e^(b*x) (y > 0)
//   - Polynomial: y = c0 + c1*x + ... + cn*x^n (degree 2 by default)
//
// # Basic Usage
//
// Fit a single model:
//
//	model, err := regression.Fit(regression.ModelTypePower, x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Formula, model.RSquared)
//
// Let Analyze pick the best model:
//
//	result, err := regression.Analyze(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range result.AllModels {
//	    fmt.Printf("%s: R²=%.4f, Formula=%s\n", m.Type, m.RSquared, m.Formula)
//	}
//	y := result.BestFit.Estimator.Estimate(42)
//
// Models whose domain excludes some of the data are skipped and reported in
// Result.Skipped rather than failing the whole analysis.
//
// # Goodness of Fit
//
// R² is computed on the original scale as 1 - SSres/SStot, so models fitted in
// log space are ranked against the data the caller supplied. RMSE is reported
// alongside for the same residuals.
//
// # Restoring Estimators
//
// Coefficients can be stored and later turned back into an estimator:
//
//	est, err := regression.NewEstimator(model.Type.String(), model.Coefficients)
package regression
