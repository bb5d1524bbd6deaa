// Package calendar implements the month grid behind the date picker.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Month is the page currently shown by the picker.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Title is the Spanish header, e.g. "Enero 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

// Key encodes the month for callback data as YYYY-MM.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ParseKey is the inverse of Key.
func ParseKey(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("month %q: %w", s, ErrInvalidDate)
	}
	return MonthOf(t), nil
}

// Grid lays the month out in Monday-first weeks. Cells outside the month are 0.
func Grid(m Month) [][7]int {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	days := m.Days()

	var weeks [][7]int
	var week [7]int
	col := offset
	for d := 1; d <= days; d++ {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// Title is shorthand for m.Title().
func Title(m Month) string {
	return m.Title()
}

// Date returns the given day of the month.
func (m Month) Date(day int) (time.Time, error) {
	if day < 1 || day > m.Days() {
		return time.Time{}, fmt.Errorf("day %d of %s: %w", day, m.Key(), ErrInvalidDate)
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC), nil
}

// Format renders a picked date the way forms expect it.
func Format(t time.Time) string {
	return t.Format(Layout)
}

func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, ErrInvalidDate)
	}
	return t, nil
}
