// Package grammar defines the optional grammar-check capability. The default
// implementation reports no issues; the red-flag detector only reacts when a
// configured checker finds more than a handful of problems.
package grammar

// Issue is a single detected grammar problem.
type Issue struct {
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

// Checker finds grammar issues in text. Implementations must be safe for
// concurrent use and must return an empty slice rather than an error when the
// underlying tool is unavailable.
type Checker interface {
	Check(text string) []Issue
}

// Noop is a Checker that never reports issues.
type Noop struct{}

// Check returns no issues.
func (Noop) Check(string) []Issue { return nil }
