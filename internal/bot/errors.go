package bot

import (
	"errors"

	"oficina/internal/contacts"
	"oficina/internal/hotel"
	"oficina/internal/payroll"
)

func (b *Bot) getErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, hotel.ErrRoomOutOfRange):
		return "⚠️ El número de habitación debe estar entre 1 y 10."
	case errors.Is(err, hotel.ErrRoomOccupied):
		return "⚠️ La habitación ya está ocupada."
	case errors.Is(err, hotel.ErrRoomNotOccupied):
		return "⚠️ La habitación no está ocupada."
	case errors.Is(err, hotel.ErrCheckoutNotAfterCheckin):
		return "⚠️ La fecha de salida debe ser posterior a la fecha de ingreso."
	case errors.Is(err, hotel.ErrStaleQuote):
		return "⚠️ La habitación cambió desde que se calculó la cuenta. Inicie la salida de nuevo."
	case errors.Is(err, hotel.ErrInvalidDate), errors.Is(err, contacts.ErrInvalidBirthDate):
		return "⚠️ Fecha inválida. Use el formato AAAA-MM-DD o elija un día en el calendario."
	case errors.Is(err, hotel.ErrInvalidNumber), errors.Is(err, payroll.ErrInvalidNumber):
		return "⚠️ Ingrese un número válido."
	case errors.Is(err, hotel.ErrMissingField), errors.Is(err, payroll.ErrMissingField), errors.Is(err, contacts.ErrEmptyField):
		return "⚠️ No se permiten campos vacíos."
	case errors.Is(err, payroll.ErrInvalidRole):
		return "⚠️ Cargo desconocido. Elija Directivo, Estratégico u Operativo."
	case errors.Is(err, payroll.ErrInvalidGender):
		return "⚠️ Género desconocido. Elija Masculino o Femenino."
	}

	return "❌ Ocurrió un error al procesar su solicitud. Intente de nuevo más tarde."
}
