package api

import (
	"errors"
	"net/http"

	"oficina/internal/calendar"
	"oficina/internal/contacts"
	"oficina/internal/hotel"
	"oficina/internal/payroll"
)

// statusFor maps domain errors onto HTTP statuses: bad input is 400, a
// business-rule violation is 409, anything else (export I/O) is 500.
func statusFor(err error) int {
	switch {
	case hotel.IsInputError(err),
		payroll.IsInputError(err),
		errors.Is(err, hotel.ErrRoomOutOfRange),
		errors.Is(err, contacts.ErrEmptyField),
		errors.Is(err, contacts.ErrInvalidBirthDate),
		errors.Is(err, calendar.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, hotel.ErrRoomOccupied),
		errors.Is(err, hotel.ErrRoomNotOccupied),
		errors.Is(err, hotel.ErrCheckoutNotAfterCheckin),
		errors.Is(err, hotel.ErrStaleQuote):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}
