package config

import "fmt"

// ValidationError collects every problem found in a settings or dialog
// file.
type ValidationError struct {
	Source string
	Errors []error
}

func (e *ValidationError) Error() string {
	prefix := "invalid config"
	if e.Source != "" {
		prefix = "invalid " + e.Source
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %v", prefix, e.Errors[0])
	}
	return fmt.Sprintf("%s: %d validation errors (first: %v)", prefix, len(e.Errors), e.Errors[0])
}

// Add adds an error to the validation error
func (e *ValidationError) Add(err error) {
	e.Errors = append(e.Errors, err)
}

// HasErrors returns true if there are validation errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}
