package regression

import "fmt"

// Model is a fitted regression model.
//
// Fields:
//   - Type: The model type
//   - Coefficients: The fitted parameters, in the order the formula uses them
//   - RSquared: 1 - SSres/SStot on the original scale (higher is better)
//   - RMSE: Root mean square error of the residuals (lower is better)
//   - Formula: Human-readable formula with the fitted coefficients
//   - Estimator: Evaluates the model at new x values
type Model struct {
	Type         ModelType
	Coefficients []float64
	RSquared     float64
	RMSE         float64
	Formula      string
	Estimator    Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of fitting several models to the same data.
type Result struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels holds every model that could be fitted, ranked by R² (best first).
	AllModels []*Model
	// Skipped maps model types that could not be fitted to the reason,
	// typically a domain violation such as ln(x) with x <= 0.
	Skipped map[ModelType]error
	// Points is the number of (x, y) pairs analyzed.
	Points int
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d, Points: %d}",
		r.BestFit, len(r.AllModels), r.Points)
}

// Model returns the fitted model of the given type, or nil if it was not fitted.
func (r *Result) Model(mt ModelType) *Model {
	for _, m := range r.AllModels {
		if m.Type == mt {
			return m
		}
	}

	return nil
}
