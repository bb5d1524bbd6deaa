package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInForm_Parse(t *testing.T) {
	valid := CheckInForm{Room: " 7 ", Date: "2024-01-01", FirstName: " Ana ", LastName: "Pérez", IDNumber: "1020"}

	req, err := valid.Parse()
	require.NoError(t, err)
	assert.Equal(t, 7, req.Room)
	assert.Equal(t, day("2024-01-01"), req.Date)
	assert.Equal(t, "Ana", req.Guest.FirstName)
	assert.Equal(t, int64(1020), req.Guest.IDNumber)

	tests := []struct {
		name    string
		mutate  func(f *CheckInForm)
		wantErr error
	}{
		{"room out of range", func(f *CheckInForm) { f.Room = "11" }, ErrRoomOutOfRange},
		{"room not a number", func(f *CheckInForm) { f.Room = "siete" }, ErrInvalidNumber},
		{"room empty", func(f *CheckInForm) { f.Room = "" }, ErrMissingField},
		{"bad date", func(f *CheckInForm) { f.Date = "01/01/2024" }, ErrInvalidDate},
		{"impossible date", func(f *CheckInForm) { f.Date = "2024-02-30" }, ErrInvalidDate},
		{"empty name", func(f *CheckInForm) { f.FirstName = "  " }, ErrMissingField},
		{"empty surname", func(f *CheckInForm) { f.LastName = "" }, ErrMissingField},
		{"empty id", func(f *CheckInForm) { f.IDNumber = "" }, ErrMissingField},
		{"id not numeric", func(f *CheckInForm) { f.IDNumber = "12a" }, ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			_, err := f.Parse()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutForm_Parse(t *testing.T) {
	room, date, err := CheckoutForm{Room: "2", Date: "2024-01-04"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, 2, room)
	assert.Equal(t, day("2024-01-04"), date)

	_, _, err = CheckoutForm{Room: "0", Date: "2024-01-04"}.Parse()
	assert.ErrorIs(t, err, ErrRoomOutOfRange)

	_, _, err = CheckoutForm{Room: "2", Date: "mañana"}.Parse()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(ErrInvalidDate))
	assert.True(t, IsInputError(ErrMissingField))
	assert.False(t, IsInputError(ErrRoomOccupied))
	assert.False(t, IsInputError(nil))
}
