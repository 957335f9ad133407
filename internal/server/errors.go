// Package server provides the HTTP REST API for the resume parser.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-parser/internal/extractor"
	"github.com/jonathan/resume-parser/internal/parser"
)

// Error codes carried in the failure envelope, so callers can distinguish
// "bad input" from "our logic broke" without string matching.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeParsingError    = "PARSING_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validationErr *parser.ValidationError
	var parsingErr *extractor.ParsingError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &parsingErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the envelope error code for an error.
func ErrorCode(err error) string {
	var validationErr *parser.ValidationError
	var parsingErr *extractor.ParsingError

	switch {
	case errors.As(err, &validationErr):
		return CodeValidationError
	case errors.As(err, &parsingErr):
		return CodeParsingError
	default:
		return CodeInternalError
	}
}
