package hotel

import "errors"

var (
	ErrRoomOutOfRange          = errors.New("room number must be between 1 and 10")
	ErrRoomOccupied            = errors.New("room is occupied")
	ErrRoomNotOccupied         = errors.New("room is not occupied")
	ErrCheckoutNotAfterCheckin = errors.New("check-out date must be after check-in date")
	ErrStaleQuote              = errors.New("quote no longer matches the room occupancy")
	ErrInvalidDate             = errors.New("invalid date format; expected YYYY-MM-DD")
	ErrInvalidNumber           = errors.New("invalid number")
	ErrMissingField            = errors.New("required field is empty")
)

// IsInputError reports whether err was caused by unparsable or missing form input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrMissingField)
}
