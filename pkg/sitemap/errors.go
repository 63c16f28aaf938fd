package sitemap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := sm.AddItem(sitemap.EntryParams{Location: "not a url"})
//	if errors.Is(err, sitemap.ErrInvalidLocation) {
//	    // Handle the rejected URL
//	}
var (
	// ErrInvalidLocation indicates an entry location is not an absolute URL with a path.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidConfig indicates the provided document options are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWriteFailed indicates a sitemap or index file could not be serialized or stored.
	ErrWriteFailed = errors.New("write failed")

	// ErrUsage indicates the command line was malformed (missing arguments, bad flag values).
	ErrUsage = errors.New("usage error")
)

// ValidationError describes a rejected field value with an actionable hint.
type ValidationError struct {
	Field   string // Field name, e.g. "location"
	Value   string // Offending value
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match ErrInvalidLocation for location failures.
func (e *ValidationError) Unwrap() error {
	if e.Field == "location" {
		return ErrInvalidLocation
	}
	return nil
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidLocation):
		return ExitInvalidLocation
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	// Check for cobra usage messages that bypass the flag error hook
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
