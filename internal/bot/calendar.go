package bot

import (
	"strconv"

	"oficina/internal/calendar"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var weekdayHeader = [7]string{"Lu", "Ma", "Mi", "Ju", "Vi", "Sa", "Do"}

// GenerateCalendarKeyboard renders one month of the date picker. Day buttons
// carry the date as YYYY-MM-DD; ⏪/⏩ jump a year, ◀/▶ a month.
func GenerateCalendarKeyboard(m calendar.Month) tgbotapi.InlineKeyboardMarkup {
	prevYear := calendar.Month{Year: m.Year - 1, Month: m.Month}
	nextYear := calendar.Month{Year: m.Year + 1, Month: m.Month}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏪", callbackData(cbCalendarNav, prevYear.Key())),
			tgbotapi.NewInlineKeyboardButtonData("◀", callbackData(cbCalendarNav, m.Prev().Key())),
			tgbotapi.NewInlineKeyboardButtonData(calendar.Title(m), cbNoop),
			tgbotapi.NewInlineKeyboardButtonData("▶", callbackData(cbCalendarNav, m.Next().Key())),
			tgbotapi.NewInlineKeyboardButtonData("⏩", callbackData(cbCalendarNav, nextYear.Key())),
		),
	}

	header := make([]tgbotapi.InlineKeyboardButton, 0, 7)
	for _, d := range weekdayHeader {
		header = append(header, tgbotapi.NewInlineKeyboardButtonData(d, cbNoop))
	}
	rows = append(rows, header)

	for _, week := range calendar.Grid(m) {
		row := make([]tgbotapi.InlineKeyboardButton, 0, 7)
		for _, day := range week {
			if day == 0 {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(" ", cbNoop))
				continue
			}
			date, _ := m.Date(day)
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				strconv.Itoa(day), callbackData(cbCalendarDay, calendar.Format(date))))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
