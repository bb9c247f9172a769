package menu

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for entry validation. Use errors.Is against these.
var (
	ErrMissingFields = errors.New("missing fields")
	ErrInvalidPrice  = errors.New("invalid price")
)

// Notice is implemented by validation errors that carry user-facing text.
type Notice interface {
	error
	Title() string
	Message() string
}

// MissingFieldsError reports required entry fields left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	if len(e.Fields) == 0 {
		return ErrMissingFields.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool { return target == ErrMissingFields }

func (e *MissingFieldsError) Title() string { return "Missing Fields" }

func (e *MissingFieldsError) Message() string {
	return "Please fill out all fields before saving, Thank You!"
}

// InvalidPriceError reports a price that does not parse to a number above zero.
type InvalidPriceError struct {
	Raw string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidPrice, e.Raw)
}

func (e *InvalidPriceError) Is(target error) bool { return target == ErrInvalidPrice }

func (e *InvalidPriceError) Title() string { return "Invalid Price" }

func (e *InvalidPriceError) Message() string { return "Price must be greater than zero." }
