package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrDuplicateKey is reported when two records share an id
var ErrDuplicateKey = errors.New("duplicate record id")

// FieldError describes one record field that failed validation
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value any    `json:"value,omitempty"`
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s failed %q", f.Field, f.Rule)
}

// ValidationError reports every invalid field of a deck file
type ValidationError struct {
	Source string       `json:"source"`
	Fields []FieldError `json:"fields"`
	Cause  error        `json:"-"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	if e.Cause != nil && len(parts) == 0 {
		parts = append(parts, e.Cause.Error())
	}
	return fmt.Sprintf("invalid deck %s: %s", e.Source, strings.Join(parts, "; "))
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

func newValidationError(source string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Source: source, Cause: err}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Value: fe.Value(),
		})
	}
	return &ValidationError{Source: source, Fields: fields, Cause: err}
}
