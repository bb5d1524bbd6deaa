package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_Navigation(t *testing.T) {
	dec := Month{Year: 2023, Month: time.December}
	assert.Equal(t, Month{Year: 2024, Month: time.January}, dec.Next())
	assert.Equal(t, dec, dec.Next().Prev())

	jan := Month{Year: 2024, Month: time.January}
	assert.Equal(t, Month{Year: 2023, Month: time.December}, jan.Prev())
	assert.Equal(t, Month{Year: 2024, Month: time.February}, jan.Next())
}

func TestMonth_Days(t *testing.T) {
	assert.Equal(t, 29, Month{Year: 2024, Month: time.February}.Days())
	assert.Equal(t, 28, Month{Year: 2023, Month: time.February}.Days())
	assert.Equal(t, 28, Month{Year: 1900, Month: time.February}.Days())
	assert.Equal(t, 29, Month{Year: 2000, Month: time.February}.Days())
	assert.Equal(t, 30, Month{Year: 2024, Month: time.April}.Days())
	assert.Equal(t, 31, Month{Year: 2024, Month: time.December}.Days())
}

func TestGrid(t *testing.T) {
	// 2024-01-01 is a Monday.
	weeks := Grid(Month{Year: 2024, Month: time.January})
	require.Len(t, weeks, 5)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, weeks[0])
	assert.Equal(t, [7]int{29, 30, 31, 0, 0, 0, 0}, weeks[4])

	// 2024-09-01 is a Sunday.
	weeks = Grid(Month{Year: 2024, Month: time.September})
	require.Len(t, weeks, 6)
	assert.Equal(t, [7]int{0, 0, 0, 0, 0, 0, 1}, weeks[0])
	assert.Equal(t, [7]int{30, 0, 0, 0, 0, 0, 0}, weeks[5])

	// February 2021 starts on Monday and fills exactly four weeks.
	weeks = Grid(Month{Year: 2021, Month: time.February})
	require.Len(t, weeks, 4)
	assert.Equal(t, 28, weeks[3][6])
}

func TestGrid_ContainsEveryDayOnce(t *testing.T) {
	m := Month{Year: 2024, Month: time.February}
	seen := map[int]int{}
	for _, w := range Grid(m) {
		for _, d := range w {
			if d != 0 {
				seen[d]++
			}
		}
	}
	assert.Len(t, seen, 29)
	for d, n := range seen {
		assert.Equal(t, 1, n, "day %d", d)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Enero 2024", Title(Month{Year: 2024, Month: time.January}))
	assert.Equal(t, "Septiembre 1999", Month{Year: 1999, Month: time.September}.Title())
}

func TestKey(t *testing.T) {
	m := Month{Year: 2024, Month: time.March}
	assert.Equal(t, "2024-03", m.Key())

	back, err := ParseKey("2024-03")
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = ParseKey("2024-13")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateFormatParse(t *testing.T) {
	m := Month{Year: 2024, Month: time.February}
	d, err := m.Date(29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", Format(d))

	_, err = m.Date(30)
	assert.ErrorIs(t, err, ErrInvalidDate)

	parsed, err := Parse(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = Parse("29/02/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
