// Package builder provides validation helpers that enforce parameter
// contracts in maze constructors.
//
// Each helper wraps the matching sentinel so callers can branch with errors.Is.
package builder

import "fmt"

// validateMin ensures got ≥ min for the named parameter.
// Returns "<Method>: <name>=<got> < min=<min>: builder: parameter too small".
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewCells)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
