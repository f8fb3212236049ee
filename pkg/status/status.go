// Package status describes the outcome of resolving a scientific name to a
// conservation-status code by a remote source.
package status

import (
	"context"
	"fmt"
	"strings"
)

// Outcome tags every query result.
type Outcome string

const (
	Success  Outcome = "success"
	NotFound Outcome = "not_found"
	Error    Outcome = "error"
)

// Category sentinels used when no real status code is available.
const (
	NotFoundCategory = "Not Found"
	ErrorCategory    = "Error"
	UnknownCategory  = "Unknown"
)

// ErrorKind classifies failed queries.
type ErrorKind string

const (
	NoError      ErrorKind = ""
	Unauthorized ErrorKind = "unauthorized"
	HTTPError    ErrorKind = "http"
	NetworkError ErrorKind = "network"
	ParseError   ErrorKind = "parse"
	InvalidName  ErrorKind = "invalid_name"
)

// Taxonomy as reported by a remote source.
type Taxonomy struct {
	Kingdom string
	Phylum  string
	Class   string
	Order   string
	Family  string
	Genus   string
	Species string
}

// Result of one status query. It is consumed right away by a formatter.
type Result struct {
	ScientificName string
	Outcome        Outcome

	// Category is the status code for successful queries, or one of the
	// NotFoundCategory and ErrorCategory sentinels.
	Category string

	// Error describes failed queries.
	Error     string
	ErrorKind ErrorKind

	// Optional metadata, filled by sources that provide it.
	AssessmentID  string
	SISID         string
	YearPublished string
	Scope         string
	URL           string
	CommonName    string
	Taxonomy      Taxonomy
}

// NewSuccess creates a successful result. An empty category becomes
// UnknownCategory, so successful results always carry a code.
func NewSuccess(name, category string) Result {
	category = strings.TrimSpace(category)
	if category == "" {
		category = UnknownCategory
	}
	return Result{
		ScientificName: name,
		Outcome:        Success,
		Category:       category,
	}
}

// NewNotFound creates a result for a name unknown to the source.
func NewNotFound(name string) Result {
	return Result{
		ScientificName: name,
		Outcome:        NotFound,
		Category:       NotFoundCategory,
	}
}

// NewError creates a failed result.
func NewError(name string, kind ErrorKind, msg string) Result {
	return Result{
		ScientificName: name,
		Outcome:        Error,
		Category:       ErrorCategory,
		Error:          msg,
		ErrorKind:      kind,
	}
}

// NewHTTPError creates a failed result for an unexpected HTTP status.
func NewHTTPError(name string, code int) Result {
	return NewError(name, HTTPError, fmt.Sprintf("HTTP %d", code))
}

// IsUnauthorized is true when the source rejected credentials.
func (r Result) IsUnauthorized() bool {
	return r.Outcome == Error && r.ErrorKind == Unauthorized
}

// Fetcher resolves a scientific name to a conservation-status code.
// Failures are reported inside Result, never as Go errors, so one bad
// name does not stop a batch.
type Fetcher interface {
	// Fetch queries the remote source about one scientific name.
	Fetch(ctx context.Context, name string) Result

	// Source returns the label of law entries built from results.
	Source() string
}
