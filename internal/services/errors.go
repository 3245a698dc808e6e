package services

import "errors"

// Messages shown in the add-address form.
const (
	MsgDuplicateLocation = "A location with this name already exists"
	MsgLocationRequired  = "Name and address are required"
	MsgFetchProducts     = "Failed to fetch products"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrDuplicateName = errors.New("duplicate location name")
)

// FormError is a user-facing form failure. Kind is ErrValidation or
// ErrDuplicateName so callers can branch with errors.Is.
type FormError struct {
	Kind    error
	Message string
}

func (e *FormError) Error() string { return e.Message }
func (e *FormError) Unwrap() error { return e.Kind }
