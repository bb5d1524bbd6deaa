package bot

import (
	"testing"
	"time"

	"oficina/internal/calendar"
	"oficina/internal/hotel"
	"oficina/internal/payroll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCalendarKeyboard(t *testing.T) {
	kb := GenerateCalendarKeyboard(calendar.Month{Year: 2024, Month: time.January})

	// navigation + weekday header + 5 weeks
	require.Len(t, kb.InlineKeyboard, 7)

	nav := kb.InlineKeyboard[0]
	require.Len(t, nav, 5)
	assert.Equal(t, "cal_nav:2023-01", *nav[0].CallbackData)
	assert.Equal(t, "cal_nav:2023-12", *nav[1].CallbackData)
	assert.Equal(t, "Enero 2024", nav[2].Text)
	assert.Equal(t, "cal_nav:2024-02", *nav[3].CallbackData)
	assert.Equal(t, "cal_nav:2025-01", *nav[4].CallbackData)

	header := kb.InlineKeyboard[1]
	assert.Equal(t, "Lu", header[0].Text)
	assert.Equal(t, "Do", header[6].Text)

	first := kb.InlineKeyboard[2]
	assert.Equal(t, "1", first[0].Text)
	assert.Equal(t, "cal_day:2024-01-01", *first[0].CallbackData)

	last := kb.InlineKeyboard[6]
	assert.Equal(t, "31", last[2].Text)
	assert.Equal(t, cbNoop, *last[3].CallbackData)
}

func TestRoomsKeyboard(t *testing.T) {
	roster := hotel.NewRoster()
	_, err := roster.CheckIn(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), hotel.Guest{FirstName: "Ana"})
	require.NoError(t, err)

	kb, ok := roomsKeyboard(roster.Rooms(), true)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "2", kb.InlineKeyboard[0][0].Text)
	assert.Len(t, kb.InlineKeyboard[1], 4)

	kb, ok = roomsKeyboard(roster.Rooms(), false)
	require.True(t, ok)
	assert.Equal(t, "room:1", *kb.InlineKeyboard[0][0].CallbackData)

	_, ok = roomsKeyboard(hotel.NewRoster().Rooms(), false)
	assert.False(t, ok)
}

func TestRenderPayrollTable(t *testing.T) {
	out := renderPayrollTable(payroll.Table{
		Rows:  []payroll.Row{{Name: "Ana", Surname: "<Pérez>", Pay: "3000.00"}},
		Total: "3000.00",
	})
	assert.Contains(t, out, "<pre>NOMBRE  APELLIDOS   SUELDO\n")
	assert.Contains(t, out, "&lt;Pérez&gt;")
	assert.Contains(t, out, "Total nómina: $3000.00")
}

func TestFormatPesos(t *testing.T) {
	assert.Equal(t, "$0", formatPesos(0))
	assert.Equal(t, "$120.000", formatPesos(120_000))
	assert.Equal(t, "$1.360.000", formatPesos(1_360_000))
	assert.Equal(t, "$-500", formatPesos(-500))
}
