package extractor

import "fmt"

// ParsingError indicates an unexpected internal fault while scanning résumé
// text. "Nothing found" is never a ParsingError; absent fields are represented
// by default values in the record.
type ParsingError struct {
	Message string
	Cause   error
}

func (e *ParsingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parsing error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parsing error: %s", e.Message)
}

func (e *ParsingError) Unwrap() error {
	return e.Cause
}
