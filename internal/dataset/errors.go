package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for dataset loading and rendering lookups

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeFormat indicates a top-level shape violation (e.g. "elements" is not an array)
	ErrTypeFormat ErrorType = iota
	// ErrTypeValidation indicates a record, section or key failed its constraint
	ErrTypeValidation
	// ErrTypeResource indicates the underlying document could not be retrieved
	ErrTypeResource
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeFormat:
		return "Format Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeResource:
		return "Resource Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failure while retrieving, parsing or validating a document.
// Only the context fields relevant to the failure are populated.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	Locator    string    // Path or URL of the document (if known)
	Index      int       // Element index (-1 when not element-specific)
	Field      string    // Offending field name
	Section    string    // Configuration section (layouts, themes, ...)
	Key        string    // Key within the section (layout/theme name)
	StatusCode int       // HTTP status code (resource errors only)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Locator != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Locator)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewFormatError creates a top-level shape error
func NewFormatError(message string) *Error {
	return &Error{
		Type:    ErrTypeFormat,
		Message: message,
		Index:   -1,
	}
}

// NewValidationError creates a validation error without record context
func NewValidationError(message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: message,
		Index:   -1,
	}
}

// NewElementError creates a validation error for the element at index.
func NewElementError(index int, field, message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: fmt.Sprintf("element at index %d %s", index, message),
		Index:   index,
		Field:   field,
	}
}

// NewSectionError creates a validation error for a configuration section entry.
// key may be empty when the section itself is at fault.
func NewSectionError(section, key, field, message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: message,
		Index:   -1,
		Section: section,
		Key:     key,
		Field:   field,
	}
}

// NewResourceError creates a retrieval error
func NewResourceError(locator, message string, err error) *Error {
	return &Error{
		Type:    ErrTypeResource,
		Message: message,
		Locator: locator,
		Index:   -1,
		Err:     err,
	}
}

// NewStatusError creates a retrieval error for a non-success HTTP status
func NewStatusError(locator string, statusCode int, status string) *Error {
	return &Error{
		Type:       ErrTypeResource,
		Message:    fmt.Sprintf("unexpected status %s", status),
		Locator:    locator,
		Index:      -1,
		StatusCode: statusCode,
	}
}

func asError(err error) (*Error, bool) {
	var dsErr *Error
	if errors.As(err, &dsErr) {
		return dsErr, true
	}
	return nil, false
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	dsErr, ok := asError(err)
	return ok && dsErr.Type == ErrTypeFormat
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	dsErr, ok := asError(err)
	return ok && dsErr.Type == ErrTypeValidation
}

// IsResourceError checks if an error is a resource error
func IsResourceError(err error) bool {
	dsErr, ok := asError(err)
	return ok && dsErr.Type == ErrTypeResource
}

// Hint returns user-facing troubleshooting advice for an error
func Hint(err error) string {
	dsErr, ok := asError(err)
	if !ok {
		return "An unexpected error occurred. Check the error message for details."
	}

	switch dsErr.Type {
	case ErrTypeResource:
		if dsErr.StatusCode != 0 {
			return strings.Join([]string{
				fmt.Sprintf("The server answered with HTTP %d.", dsErr.StatusCode),
				"Troubleshooting:",
				"  • Check the URL is spelled correctly",
				"  • Open the URL in a browser to confirm it is reachable",
			}, "\n")
		}
		return strings.Join([]string{
			"The document could not be read.",
			"Troubleshooting:",
			"  • Verify the path exists and is readable",
			"  • Use --elements and --config to point at the right files",
		}, "\n")

	case ErrTypeFormat:
		return strings.Join([]string{
			"The document does not have the expected top-level shape.",
			`The element dataset must look like { "elements": [ ... ] }.`,
		}, "\n")

	case ErrTypeValidation:
		switch {
		case dsErr.Index >= 0:
			return fmt.Sprintf("Fix field %q of the element at index %d and try again.", dsErr.Field, dsErr.Index)
		case dsErr.Section != "" && dsErr.Key != "":
			return fmt.Sprintf("Check entry %q in the %q section of the configuration.", dsErr.Key, dsErr.Section)
		case dsErr.Section != "":
			return fmt.Sprintf("Add or fix the %q section of the configuration.", dsErr.Section)
		}
		return "The data is invalid. Check the error message for details."

	default:
		return "An error occurred. Please check the error message for details."
	}
}
