package service

import (
	"context"

	"oficina/internal/contacts"
	"oficina/internal/domain"
	"oficina/internal/events"
	"oficina/internal/metrics"

	"github.com/rs/zerolog"
)

type ContactService struct {
	book     *contacts.Book
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewContactService(book *contacts.Book, eventBus domain.EventPublisher, logger *zerolog.Logger) *ContactService {
	return &ContactService{
		book:     book,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *ContactService) AddContact(ctx context.Context, form contacts.ContactForm) (contacts.Contact, error) {
	l := requestLogger(ctx, s.logger)

	c, err := s.book.Add(form)
	if err != nil {
		metrics.IncOperation("contacts", "add", metrics.ResultRejected)
		l.Warn().Err(err).Msg("contact rejected")
		return contacts.Contact{}, err
	}

	count := s.book.Len()
	metrics.IncOperation("contacts", "add", metrics.ResultOK)
	metrics.SetContacts(count)
	l.Info().Str("names", c.Names).Int("count", count).Msg("contact added")

	if s.eventBus != nil {
		payload := events.ContactEventPayload{Names: c.Names, Surnames: c.Surnames, Count: count}
		if err := s.eventBus.PublishJSON(events.EventContactAdded, payload); err != nil {
			l.Error().Err(err).Str("event", events.EventContactAdded).Msg("publish event")
		}
	}
	return c, nil
}

func (s *ContactService) Contacts(ctx context.Context) []contacts.Contact {
	return s.book.All()
}
