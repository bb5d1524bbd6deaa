package service

import (
	"context"
	"time"

	"oficina/internal/domain"
	"oficina/internal/events"
	"oficina/internal/hotel"
	"oficina/internal/metrics"

	"github.com/rs/zerolog"
)

const toolHotel = "hotel"

type HotelService struct {
	roster   *hotel.Roster
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewHotelService(roster *hotel.Roster, eventBus domain.EventPublisher, logger *zerolog.Logger) *HotelService {
	return &HotelService{
		roster:   roster,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *HotelService) Rooms(ctx context.Context) []hotel.Room {
	return s.roster.Rooms()
}

func (s *HotelService) Room(ctx context.Context, number int) (hotel.Room, error) {
	return s.roster.Room(number)
}

func (s *HotelService) CheckInDate(ctx context.Context, number int) (time.Time, error) {
	return s.roster.CheckInDate(number)
}

func (s *HotelService) CheckIn(ctx context.Context, form hotel.CheckInForm) (hotel.Room, error) {
	l := requestLogger(ctx, s.logger)

	req, err := form.Parse()
	if err != nil {
		s.reject(l, "check_in", err)
		return hotel.Room{}, err
	}

	room, err := s.roster.CheckIn(req.Room, req.Date, req.Guest)
	if err != nil {
		s.reject(l, "check_in", err)
		return hotel.Room{}, err
	}

	metrics.IncOperation(toolHotel, "check_in", metrics.ResultOK)
	s.updateOccupancy()
	l.Info().
		Int("room", room.Number).
		Str("stay_id", room.Guest.StayID.String()).
		Time("check_in", room.Guest.CheckIn).
		Msg("guest checked in")

	s.publish(l, events.EventRoomCheckedIn, events.RoomEventPayload{
		Room:      room.Number,
		StayID:    room.Guest.StayID,
		FirstName: room.Guest.FirstName,
		LastName:  room.Guest.LastName,
		IDNumber:  room.Guest.IDNumber,
		CheckIn:   room.Guest.CheckIn,
	})
	return room, nil
}

// QuoteCheckout only computes the bill; the room is untouched.
func (s *HotelService) QuoteCheckout(ctx context.Context, form hotel.CheckoutForm) (hotel.Quote, error) {
	l := requestLogger(ctx, s.logger)

	number, date, err := form.Parse()
	if err != nil {
		s.reject(l, "quote", err)
		return hotel.Quote{}, err
	}

	quote, err := s.roster.QuoteCheckout(number, date)
	if err != nil {
		s.reject(l, "quote", err)
		return hotel.Quote{}, err
	}

	metrics.IncOperation(toolHotel, "quote", metrics.ResultOK)
	l.Debug().Int("room", quote.Room).Int("nights", quote.Nights).Int64("total", quote.Total).Msg("checkout quoted")
	return quote, nil
}

func (s *HotelService) CommitCheckout(ctx context.Context, quote hotel.Quote) (hotel.Stay, error) {
	l := requestLogger(ctx, s.logger)

	stay, err := s.roster.CommitCheckout(quote)
	if err != nil {
		s.reject(l, "check_out", err)
		return hotel.Stay{}, err
	}

	metrics.IncOperation(toolHotel, "check_out", metrics.ResultOK)
	s.updateOccupancy()
	l.Info().
		Int("room", stay.Room).
		Str("stay_id", stay.Guest.StayID.String()).
		Int("nights", stay.Nights).
		Int64("total", stay.Total).
		Msg("guest checked out")

	s.publish(l, events.EventRoomCheckedOut, events.RoomEventPayload{
		Room:      stay.Room,
		StayID:    stay.Guest.StayID,
		FirstName: stay.Guest.FirstName,
		LastName:  stay.Guest.LastName,
		IDNumber:  stay.Guest.IDNumber,
		CheckIn:   stay.Guest.CheckIn,
		CheckOut:  stay.Guest.CheckOut,
		Nights:    stay.Nights,
		Total:     stay.Total,
	})
	return stay, nil
}

func (s *HotelService) reject(l *zerolog.Logger, op string, err error) {
	metrics.IncOperation(toolHotel, op, metrics.ResultRejected)
	l.Warn().Err(err).Str("op", op).Msg("hotel operation rejected")
}

func (s *HotelService) updateOccupancy() {
	occupied := 0
	for _, r := range s.roster.Rooms() {
		if !r.Available {
			occupied++
		}
	}
	metrics.SetRoomsOccupied(occupied)
}

func (s *HotelService) publish(l *zerolog.Logger, eventType string, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		l.Error().Err(err).Str("event", eventType).Msg("publish event")
	}
}
