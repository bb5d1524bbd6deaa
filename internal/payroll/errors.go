package payroll

import "errors"

var (
	ErrMissingField  = errors.New("required field is empty")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidRole   = errors.New("unknown role")
	ErrInvalidGender = errors.New("unknown gender")
)

// IsInputError reports whether err comes from form parsing.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidGender)
}
