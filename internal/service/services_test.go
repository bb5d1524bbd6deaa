package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"oficina/internal/config"
	"oficina/internal/contacts"
	"oficina/internal/events"
	"oficina/internal/hotel"
	"oficina/internal/payroll"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOffice() *Office {
	return NewOffice(config.HotelConfig{LowerRate: hotel.DefaultLowerRate, HigherRate: hotel.DefaultHigherRate})
}

func record(bus *events.EventBus, eventType string) *[]*events.Event {
	var got []*events.Event
	bus.Subscribe(eventType, func(e *events.Event) error {
		got = append(got, e)
		return nil
	})
	return &got
}

func TestHotelService_Lifecycle(t *testing.T) {
	office := newTestOffice()
	bus := events.NewEventBus()
	checkedIn := record(bus, events.EventRoomCheckedIn)
	checkedOut := record(bus, events.EventRoomCheckedOut)
	logger := zerolog.Nop()
	s := NewHotelService(office.Roster, bus, &logger)
	ctx := context.Background()

	room, err := s.CheckIn(ctx, hotel.CheckInForm{Room: "2", Date: "2024-01-01", FirstName: "Ana", LastName: "Pérez", IDNumber: "1020"})
	require.NoError(t, err)
	assert.False(t, room.Available)
	require.Len(t, *checkedIn, 1)

	var in events.RoomEventPayload
	require.NoError(t, (*checkedIn)[0].Decode(&in))
	assert.Equal(t, 2, in.Room)
	assert.Equal(t, room.Guest.StayID, in.StayID)

	date, err := s.CheckInDate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), date)

	quote, err := s.QuoteCheckout(ctx, hotel.CheckoutForm{Room: "2", Date: "2024-01-04"})
	require.NoError(t, err)
	assert.Equal(t, int64(360_000), quote.Total)
	assert.Empty(t, *checkedOut)

	stay, err := s.CommitCheckout(ctx, quote)
	require.NoError(t, err)
	assert.Equal(t, 3, stay.Nights)
	require.Len(t, *checkedOut, 1)

	var out events.RoomEventPayload
	require.NoError(t, (*checkedOut)[0].Decode(&out))
	assert.Equal(t, int64(360_000), out.Total)
	require.NotNil(t, out.CheckOut)

	r, err := s.Room(ctx, 2)
	require.NoError(t, err)
	assert.True(t, r.Available)
	assert.Len(t, s.Rooms(ctx), hotel.RoomCount)
}

func TestHotelService_Rejections(t *testing.T) {
	office := newTestOffice()
	bus := events.NewEventBus()
	checkedIn := record(bus, events.EventRoomCheckedIn)
	s := NewHotelService(office.Roster, bus, nil)
	ctx := context.Background()

	_, err := s.CheckIn(ctx, hotel.CheckInForm{Room: "12", Date: "2024-01-01", FirstName: "A", LastName: "B", IDNumber: "1"})
	assert.ErrorIs(t, err, hotel.ErrRoomOutOfRange)

	_, err = s.CheckIn(ctx, hotel.CheckInForm{Room: "1", Date: "2024-01-01", FirstName: "A", LastName: "B", IDNumber: "1"})
	require.NoError(t, err)
	_, err = s.CheckIn(ctx, hotel.CheckInForm{Room: "1", Date: "2024-01-02", FirstName: "C", LastName: "D", IDNumber: "2"})
	assert.ErrorIs(t, err, hotel.ErrRoomOccupied)
	assert.Len(t, *checkedIn, 1)

	_, err = s.QuoteCheckout(ctx, hotel.CheckoutForm{Room: "1", Date: "2024-01-01"})
	assert.ErrorIs(t, err, hotel.ErrCheckoutNotAfterCheckin)

	_, err = s.CommitCheckout(ctx, hotel.Quote{Room: 1})
	assert.ErrorIs(t, err, hotel.ErrStaleQuote)
}

func TestPayrollService(t *testing.T) {
	office := newTestOffice()
	bus := events.NewEventBus()
	added := record(bus, events.EventEmployeeAdded)
	exported := record(bus, events.EventPayrollExported)
	logger := zerolog.Nop()
	s := NewPayrollService(office.Payroll, bus, &logger)
	ctx := context.Background()

	form := payroll.EmployeeForm{
		Name: "Ana", Surname: "Pérez", Role: "Operativo", Gender: "Femenino",
		DailyWage: "100", DaysWorked: "30", OtherIncome: "50", HealthDeduction: "40", PensionDeduction: "10",
	}
	e, err := s.AddEmployee(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "3000.00", e.Pay().StringFixed(2))
	require.Len(t, *added, 1)

	var payload events.EmployeeEventPayload
	require.NoError(t, (*added)[0].Decode(&payload))
	assert.Equal(t, "operativo", payload.Role)
	assert.Equal(t, 1, payload.Count)

	bad := form
	bad.DailyWage = "mucho"
	_, err = s.AddEmployee(ctx, bad)
	assert.ErrorIs(t, err, payroll.ErrInvalidNumber)
	assert.Len(t, s.Employees(ctx), 1)

	table := s.Table(ctx)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "3000.00", table.Total)

	dir := t.TempDir()
	files, err := s.Export(ctx, dir, true)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, payroll.ExportFileName), files[0])
	assert.Equal(t, filepath.Join(dir, payroll.XLSXFileName), files[1])
	require.Len(t, *exported, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total nómina = $3000.00")
}

func TestPayrollService_ExportFailure(t *testing.T) {
	office := newTestOffice()
	s := NewPayrollService(office.Payroll, nil, nil)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := s.Export(context.Background(), filepath.Join(blocker, "sub"), false)
	assert.Error(t, err)
}

func TestContactService(t *testing.T) {
	office := newTestOffice()
	bus := events.NewEventBus()
	added := record(bus, events.EventContactAdded)
	s := NewContactService(office.Contacts, bus, nil)
	ctx := context.Background()

	form := contacts.ContactForm{
		Names: "Ana", Surnames: "Pérez", BirthDate: "1990-05-17",
		Address: "Calle 1", Phone: "300", Email: "ana@example.com",
	}
	c, err := s.AddContact(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, "Ana - Pérez - 1990-05-17 - Calle 1 - 300 - ana@example.com", c.String())
	assert.Len(t, *added, 1)

	form.Email = ""
	_, err = s.AddContact(ctx, form)
	assert.ErrorIs(t, err, contacts.ErrEmptyField)
	assert.Len(t, s.Contacts(ctx), 1)
	assert.Len(t, *added, 1)
}

func TestRequestLogger(t *testing.T) {
	fallback := zerolog.Nop()
	assert.Equal(t, &fallback, requestLogger(context.Background(), &fallback))

	scoped := zerolog.New(os.Stderr)
	ctx := scoped.WithContext(context.Background())
	assert.Equal(t, zerolog.Ctx(ctx), requestLogger(ctx, &fallback))

	assert.NotNil(t, requestLogger(context.Background(), nil))
}
