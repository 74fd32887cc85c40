package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrInvalidJSON           = errors.New("invalid JSON")
	ErrNotArray              = errors.New("JSON must be an array to convert to CSV")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrUnknownFormat         = errors.New("unknown format")
	ErrFileNotFound          = errors.New("file not found")
	ErrNoInput               = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrInvalidFilePath       = errors.New("invalid file path")
	ErrOutputDiffers         = errors.New("output differs from input")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeWatch   ErrorType = "watch"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// NewWatchError creates a new error related to file watching
func NewWatchError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeWatch,
		Message: message,
		Err:     err,
	}
}

// ConversionError is returned by the conversion engine. Its Error text is
// meant to be shown to users as is, e.g.
// "Error converting JSON to XML: Invalid JSON: <detail>".
type ConversionError struct {
	// Message is the user facing prefix.
	Message string
	// Kind classifies the failure for errors.Is; it may be nil.
	Kind error
	// Err is the underlying failure, appended to Message when set.
	Err error
}

// Error implements error interface
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns wrapped error
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel classifying this error.
func (e *ConversionError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// NewInvalidJSONError wraps a JSON syntax failure.
func NewInvalidJSONError(err error) *ConversionError {
	return &ConversionError{
		Message: "Invalid JSON",
		Kind:    ErrInvalidJSON,
		Err:     err,
	}
}

// NewNotArrayError reports that CSV output was requested for a non-array.
func NewNotArrayError() *ConversionError {
	return &ConversionError{
		Message: ErrNotArray.Error(),
		Kind:    ErrNotArray,
	}
}

// NewUnsupportedConversionError reports a format pair with no codec.
func NewUnsupportedConversionError(from, to string) *ConversionError {
	return &ConversionError{
		Message: fmt.Sprintf("Unsupported conversion: %s to %s", from, to),
		Kind:    ErrUnsupportedConversion,
	}
}

// WrapConversion prefixes err with the conversion being attempted, e.g.
// WrapConversion("JSON", "XML", err).
func WrapConversion(from, to string, err error) *ConversionError {
	return &ConversionError{
		Message: fmt.Sprintf("Error converting %s to %s", from, to),
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr.Error()
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		case ErrorTypeWatch:
			return fmt.Sprintf("Watch error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrUnknownFormat) {
		return fmt.Sprintf("Error: %v. Supported formats: plaintext, json, xml, yaml, csv.", err)
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	return fmt.Sprintf("Error: %v", err)
}
