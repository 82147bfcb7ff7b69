package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingField    = errors.New("missing product field")
	ErrProductNotFound = errors.New("product not found")
	ErrExportWrite     = errors.New("export write failed")
	ErrExportNotFound  = errors.New("export not found")
	ErrTemporary       = errors.New("temporary failure")

	ErrCircuitOpen      = errors.New("remote generation circuit open")
	ErrEmptyCompletion  = errors.New("remote generation returned empty completion")
	ErrProviderDisabled = errors.New("remote generation provider disabled")
)

// MissingFieldError reports a product record without one of the attributes
// the prompt templates need.
type MissingFieldError struct {
	ProductID string
	Field     string
}

func (e *MissingFieldError) Error() string {
	if e.ProductID == "" {
		return fmt.Sprintf("product is missing required field %q", e.Field)
	}
	return fmt.Sprintf("product %s is missing required field %q", e.ProductID, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
