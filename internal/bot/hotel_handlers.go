package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"oficina/internal/calendar"
	"oficina/internal/hotel"
	"oficina/internal/models"

	"github.com/rs/zerolog"
)

const (
	keyRoom      = "room"
	keyDate      = "date"
	keyFirstName = "first_name"
	keyLastName  = "last_name"
	keyQuote     = "quote"
)

func (b *Bot) showRooms(ctx context.Context, chatID int64) {
	var sb strings.Builder
	sb.WriteString("🏨 Habitaciones\n\n")
	for _, room := range b.hotelService.Rooms(ctx) {
		sb.WriteString(fmt.Sprintf("%d · %s · %s/noche", room.Number, room.StatusLabel(), formatPesos(room.NightlyRate)))
		if room.Guest != nil {
			sb.WriteString(fmt.Sprintf(" · desde %s", room.Guest.CheckIn.Format(hotel.DateLayout)))
		}
		sb.WriteString("\n")
	}
	b.handleMainMenu(chatID, sb.String())
}

func (b *Bot) startCheckIn(ctx context.Context, chatID, userID int64) {
	keyboard, ok := roomsKeyboard(b.hotelService.Rooms(ctx), true)
	if !ok {
		b.clearUserState(ctx, userID)
		b.sendMessage(chatID, "No hay habitaciones disponibles.")
		return
	}
	b.setUserState(ctx, userID, models.StateCheckInRoom, nil)
	b.sendInline(chatID, "🛎 Ingreso de huésped\n\nSeleccione la habitación o escriba su número:", keyboard)
}

func (b *Bot) handleCheckInRoom(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	number, err := hotel.ParseRoomNumber(input)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	room, err := b.hotelService.Room(ctx, number)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	if !room.Available {
		b.sendError(chatID, hotel.ErrRoomOccupied)
		return
	}

	b.setUserState(ctx, userID, models.StateCheckInDate, state.With(keyRoom, strconv.Itoa(number)))
	b.sendInline(chatID,
		fmt.Sprintf("Habitación %d.\nFecha de ingreso (elija en el calendario o escriba AAAA-MM-DD):", number),
		GenerateCalendarKeyboard(calendar.MonthOf(b.now())))
}

func (b *Bot) handleCheckInDate(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	date, err := hotel.ParseDate(strings.TrimSpace(input))
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.setUserState(ctx, userID, models.StateCheckInFirstName, state.With(keyDate, date.Format(hotel.DateLayout)))
	b.sendMessage(chatID, fmt.Sprintf("Ingreso: %s.\nNombre del huésped:", date.Format(hotel.DateLayout)))
}

func (b *Bot) handleCheckInName(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	if input == "" {
		b.sendError(chatID, hotel.ErrMissingField)
		return
	}
	if state.CurrentStep == models.StateCheckInFirstName {
		b.setUserState(ctx, userID, models.StateCheckInLastName, state.With(keyFirstName, input))
		b.sendMessage(chatID, "Apellidos del huésped:")
		return
	}
	b.setUserState(ctx, userID, models.StateCheckInIDNumber, state.With(keyLastName, input))
	b.sendMessage(chatID, "Número de documento:")
}

func (b *Bot) handleCheckInIDNumber(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	form := hotel.CheckInForm{
		Room:      state.GetString(keyRoom),
		Date:      state.GetString(keyDate),
		FirstName: state.GetString(keyFirstName),
		LastName:  state.GetString(keyLastName),
		IDNumber:  input,
	}

	room, err := b.hotelService.CheckIn(ctx, form)
	if err != nil {
		// room and date were checked on their own steps
		if errors.Is(err, hotel.ErrInvalidNumber) || errors.Is(err, hotel.ErrMissingField) {
			b.sendError(chatID, err)
			return
		}
		b.abortFlow(ctx, chatID, userID, err)
		return
	}

	b.finishFlow(ctx, chatID, userID, "check_in", fmt.Sprintf(
		"✅ %s %s registrado en la habitación %d desde %s.",
		room.Guest.FirstName, room.Guest.LastName, room.Number, room.Guest.CheckIn.Format(hotel.DateLayout)))
}

func (b *Bot) startCheckout(ctx context.Context, chatID, userID int64) {
	keyboard, ok := roomsKeyboard(b.hotelService.Rooms(ctx), false)
	if !ok {
		b.clearUserState(ctx, userID)
		b.sendMessage(chatID, "No hay habitaciones ocupadas.")
		return
	}
	b.setUserState(ctx, userID, models.StateCheckoutRoom, nil)
	b.sendInline(chatID, "🧾 Salida de huésped\n\nSeleccione la habitación o escriba su número:", keyboard)
}

func (b *Bot) handleCheckoutRoom(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	number, err := hotel.ParseRoomNumber(input)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	checkIn, err := b.hotelService.CheckInDate(ctx, number)
	if err != nil {
		b.sendError(chatID, err)
		return
	}

	b.setUserState(ctx, userID, models.StateCheckoutDate, state.With(keyRoom, strconv.Itoa(number)))
	b.sendInline(chatID,
		fmt.Sprintf("Habitación %d, ingreso: %s.\nFecha de salida:", number, checkIn.Format(hotel.DateLayout)),
		GenerateCalendarKeyboard(calendar.MonthOf(b.now())))
}

func (b *Bot) handleCheckoutDate(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	quote, err := b.hotelService.QuoteCheckout(ctx, hotel.CheckoutForm{
		Room: state.GetString(keyRoom),
		Date: input,
	})
	switch {
	case err == nil:
	case hotel.IsInputError(err), errors.Is(err, hotel.ErrCheckoutNotAfterCheckin):
		b.sendError(chatID, err)
		return
	default:
		b.abortFlow(ctx, chatID, userID, err)
		return
	}

	encoded, err := json.Marshal(quote)
	if err != nil {
		b.abortFlow(ctx, chatID, userID, err)
		return
	}

	b.setUserState(ctx, userID, models.StateCheckoutConfirm, state.With(keyQuote, string(encoded)))
	b.sendInline(chatID, fmt.Sprintf(
		"Habitación %d\nIngreso: %s\nSalida: %s\nNoches: %d\nTarifa: %s\nTotal: %s",
		quote.Room,
		quote.CheckIn.Format(hotel.DateLayout),
		quote.CheckOut.Format(hotel.DateLayout),
		quote.Nights,
		formatPesos(quote.NightlyRate),
		formatPesos(quote.Total)), checkoutConfirmKeyboard())
}

func (b *Bot) commitCheckout(ctx context.Context, chatID, userID int64) {
	state := b.getUserState(ctx, userID)
	if state.CurrentStep != models.StateCheckoutConfirm {
		b.sendMessage(chatID, "No hay una salida pendiente de confirmar.")
		return
	}

	var quote hotel.Quote
	if err := json.Unmarshal([]byte(state.GetString(keyQuote)), &quote); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", userID).Msg("Stored quote is unreadable")
		b.abortFlow(ctx, chatID, userID, hotel.ErrStaleQuote)
		return
	}

	stay, err := b.hotelService.CommitCheckout(ctx, quote)
	if err != nil {
		b.abortFlow(ctx, chatID, userID, err)
		return
	}

	b.finishFlow(ctx, chatID, userID, "check_out", fmt.Sprintf(
		"✅ Salida registrada. La habitación %d está disponible.\nNoches: %d\nTotal a pagar: %s",
		stay.Room, stay.Nights, formatPesos(stay.Total)))
}

func (b *Bot) cancelCheckout(ctx context.Context, chatID, userID int64) {
	b.clearUserState(ctx, userID)
	b.handleMainMenu(chatID, "Salida cancelada. La habitación sigue ocupada.")
}
