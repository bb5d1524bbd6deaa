package hotel

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoomCount = 10

	// LowerTierRooms is the highest room number billed at the lower rate.
	LowerTierRooms = 5

	DefaultLowerRate  int64 = 120_000
	DefaultHigherRate int64 = 160_000

	DateLayout = "2006-01-02"
)

// Guest is owned by the room it occupies and dropped when the room is released.
type Guest struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	IDNumber  int64      `json:"id_number"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	StayID    uuid.UUID  `json:"stay_id"`
}

type Room struct {
	Number      int    `json:"number"`
	NightlyRate int64  `json:"nightly_rate"`
	Available   bool   `json:"available"`
	Guest       *Guest `json:"guest,omitempty"`
}

func (r Room) Status() Status {
	if r.Available {
		return StatusAvailable
	}
	return StatusOccupied
}

// StatusLabel is the board text shown for the room.
func (r Room) StatusLabel() string {
	if r.Available {
		return "Disponible"
	}
	return "No disponible"
}

// Quote is a proposed check-out. It carries the stay it was computed for so a
// later commit can tell whether the room changed in between.
type Quote struct {
	Room        int       `json:"room"`
	StayID      uuid.UUID `json:"stay_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Nights      int       `json:"nights"`
	NightlyRate int64     `json:"nightly_rate"`
	Total       int64     `json:"total"`
}

// Stay is the receipt produced by a committed check-out.
type Stay struct {
	Room     int       `json:"room"`
	Guest    Guest     `json:"guest"`
	CheckOut time.Time `json:"check_out"`
	Nights   int       `json:"nights"`
	Total    int64     `json:"total"`
}

// Nights returns the whole days between two calendar dates.
func Nights(checkIn, checkOut time.Time) int {
	in := truncateDay(checkIn)
	out := truncateDay(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
