package events

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	EventRoomCheckedIn   = "room_checked_in"
	EventRoomCheckedOut  = "room_checked_out"
	EventEmployeeAdded   = "employee_added"
	EventContactAdded    = "contact_added"
	EventPayrollExported = "payroll_exported"
)

// RoomEventPayload describes a check-in or a committed check-out.
type RoomEventPayload struct {
	Room      int        `json:"room"`
	StayID    uuid.UUID  `json:"stay_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	IDNumber  int64      `json:"id_number"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Nights    int        `json:"nights,omitempty"`
	Total     int64      `json:"total,omitempty"`
}

type EmployeeEventPayload struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    string `json:"role"`
	Pay     string `json:"pay"`
	Count   int    `json:"count"`
}

type ContactEventPayload struct {
	Names    string `json:"names"`
	Surnames string `json:"surnames"`
	Count    int    `json:"count"`
}

type ExportEventPayload struct {
	Files     []string `json:"files"`
	Employees int      `json:"employees"`
	Total     string   `json:"total"`
}

// Event is a published domain fact.
type Event struct {
	ID        uuid.UUID
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// Decode unmarshals the payload into v.
func (e *Event) Decode(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

type EventHandler func(event *Event) error

// EventBus is a synchronous in-process pub/sub.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish runs every handler of the event type in subscription order and
// returns their joined errors. A failing handler does not stop the rest.
func (b *EventBus) Publish(event *Event) error {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublishJSON serializes the payload and publishes it. A nil bus is a no-op.
func (b *EventBus) PublishJSON(eventType string, payload interface{}) error {
	if b == nil {
		return nil
	}
	event, err := NewJSONEvent(eventType, payload)
	if err != nil {
		return err
	}
	return b.Publish(&event)
}

func NewJSONEvent(eventType string, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{ID: uuid.New(), Type: eventType, Payload: raw, CreatedAt: time.Now()}, nil
}
