package bot

import (
	"fmt"
	"strconv"

	"oficina/internal/hotel"
	"oficina/internal/payroll"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Main menu buttons.
const (
	btnRooms       = "🏨 Habitaciones"
	btnCheckIn     = "🛎 Ingreso de huésped"
	btnCheckout    = "🧾 Salida de huésped"
	btnAddEmployee = "👤 Agregar empleado"
	btnPayroll     = "💰 Calcular nómina"
	btnSavePayroll = "💾 Guardar nómina"
	btnNewContact  = "📇 Nuevo contacto"
	btnContacts    = "📋 Contactos"
	btnCancel      = "❌ Cancelar"

	cmdStart  = "/start"
	cmdCancel = "/cancel"
)

const (
	roomsPerRow = 5
	callbackSep = ":"

	cbNoop          = "noop"
	cbCalendarNav   = "cal_nav"
	cbCalendarDay   = "cal_day"
	cbRoom          = "room"
	cbRole          = "role"
	cbGender        = "gender"
	cbDaysDefault   = "days_default"
	cbCheckoutOK    = "checkout_confirm"
	cbCheckoutAbort = "checkout_cancel"
)

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnRooms),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCheckIn),
			tgbotapi.NewKeyboardButton(btnCheckout),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddEmployee),
			tgbotapi.NewKeyboardButton(btnPayroll),
			tgbotapi.NewKeyboardButton(btnSavePayroll),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNewContact),
			tgbotapi.NewKeyboardButton(btnContacts),
		),
	)
}

func callbackData(kind string, value interface{}) string {
	return kind + callbackSep + fmt.Sprint(value)
}

// roomsKeyboard lists the rooms whose availability matches available.
func roomsKeyboard(rooms []hotel.Room, available bool) (tgbotapi.InlineKeyboardMarkup, bool) {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, room := range rooms {
		if room.Available != available {
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(room.Number), callbackData(cbRoom, room.Number)))
		if len(row) == roomsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

func roleKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, r := range payroll.Roles() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(r.Label(), callbackData(cbRole, r.Code())))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func genderKeyboard() tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, g := range payroll.Genders() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(g.Label(), callbackData(cbGender, g.Code())))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func daysKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d días", payroll.DefaultDaysWorked), cbDaysDefault),
	))
}

func checkoutConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Registrar salida", cbCheckoutOK),
		tgbotapi.NewInlineKeyboardButtonData(btnCancel, cbCheckoutAbort),
	))
}
