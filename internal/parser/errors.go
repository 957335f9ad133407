package parser

import "fmt"

// Input length bounds enforced before extraction.
const (
	DefaultMinTextLength = 10
	DefaultMaxTextLength = 100000
)

// ValidationError indicates the input was rejected before extraction ran:
// missing, empty, or outside the configured length bounds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
