package nn

import (
	"github.com/snaketune/snaketune/internal/data"
	"gonum.org/v1/gonum/floats"
)

// MSE computes the mean squared error of m over entries.
//
// Loss = mean((Predict(x) - target)²)
//
// Returns 0 for an empty slice. MSE only reads the model.
func MSE[E data.Entry](m Model, entries []E) float64 {
	if len(entries) == 0 {
		return 0
	}
	residuals := make([]float64, len(entries))
	for i, e := range entries {
		residuals[i] = m.Predict(e.Inputs()) - e.ExpectedOutput()
	}
	return floats.Dot(residuals, residuals) / float64(len(entries))
}
