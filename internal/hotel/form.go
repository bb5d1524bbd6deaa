package hotel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CheckInForm carries the raw check-in input as typed by the user.
type CheckInForm struct {
	Room      string `json:"room" yaml:"room"`
	Date      string `json:"date" yaml:"date"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	IDNumber  string `json:"id_number" yaml:"id_number"`
}

// CheckInRequest is a validated CheckInForm.
type CheckInRequest struct {
	Room  int
	Date  time.Time
	Guest Guest
}

func (f CheckInForm) Parse() (CheckInRequest, error) {
	room, err := ParseRoomNumber(f.Room)
	if err != nil {
		return CheckInRequest{}, err
	}

	date, err := ParseDate(strings.TrimSpace(f.Date))
	if err != nil {
		return CheckInRequest{}, fmt.Errorf("check-in date %q: %w", f.Date, err)
	}

	first := strings.TrimSpace(f.FirstName)
	last := strings.TrimSpace(f.LastName)
	doc := strings.TrimSpace(f.IDNumber)
	if first == "" || last == "" || doc == "" {
		return CheckInRequest{}, ErrMissingField
	}

	id, err := strconv.ParseInt(doc, 10, 64)
	if err != nil {
		return CheckInRequest{}, fmt.Errorf("id number %q: %w", doc, ErrInvalidNumber)
	}

	return CheckInRequest{
		Room: room,
		Date: date,
		Guest: Guest{
			FirstName: first,
			LastName:  last,
			IDNumber:  id,
		},
	}, nil
}

// CheckoutForm is the raw input of the check-out quote step.
type CheckoutForm struct {
	Room string `json:"room" yaml:"room"`
	Date string `json:"date" yaml:"date"`
}

func (f CheckoutForm) Parse() (int, time.Time, error) {
	room, err := ParseRoomNumber(f.Room)
	if err != nil {
		return 0, time.Time{}, err
	}
	date, err := ParseDate(strings.TrimSpace(f.Date))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("check-out date %q: %w", f.Date, err)
	}
	return room, date, nil
}

// ParseRoomNumber parses and range-checks a room number.
func ParseRoomNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingField
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("room %q: %w", s, ErrInvalidNumber)
	}
	if err := checkRange(n); err != nil {
		return 0, err
	}
	return n, nil
}
