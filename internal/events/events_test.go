package events

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	var received *Event
	var callCount int
	bus.Subscribe(EventContactAdded, func(event *Event) error {
		received = event
		callCount++
		return nil
	})

	err := bus.PublishJSON(EventContactAdded, ContactEventPayload{Names: "Ana", Surnames: "Pérez", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, callCount)
	require.NotNil(t, received)
	assert.Equal(t, EventContactAdded, received.Type)
	assert.NotEqual(t, uuid.Nil, received.ID)

	var decoded ContactEventPayload
	require.NoError(t, received.Decode(&decoded))
	assert.Equal(t, "Pérez", decoded.Surnames)
	assert.Equal(t, 1, decoded.Count)
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus()
	var order []int

	bus.Subscribe(EventEmployeeAdded, func(_ *Event) error { order = append(order, 1); return errors.New("first failed") })
	bus.Subscribe(EventEmployeeAdded, func(_ *Event) error { order = append(order, 2); return nil })

	err := bus.Publish(&Event{Type: EventEmployeeAdded})
	assert.EqualError(t, err, "first failed")
	assert.Equal(t, []int{1, 2}, order)
}

func TestEventBusNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	assert.NoError(t, bus.Publish(&Event{Type: "unknown"}))
	assert.NoError(t, bus.PublishJSON("unknown", nil))

	var nilBus *EventBus
	assert.NoError(t, nilBus.PublishJSON(EventRoomCheckedIn, RoomEventPayload{Room: 1}))
}

func TestNewJSONEvent(t *testing.T) {
	event, err := NewJSONEvent(EventRoomCheckedOut, RoomEventPayload{Room: 4, Nights: 3, Total: 360000})
	require.NoError(t, err)
	assert.Equal(t, EventRoomCheckedOut, event.Type)
	assert.False(t, event.CreatedAt.IsZero())

	var decoded RoomEventPayload
	require.NoError(t, event.Decode(&decoded))
	assert.Equal(t, 4, decoded.Room)
	assert.Equal(t, int64(360000), decoded.Total)
	assert.Nil(t, decoded.CheckOut)

	_, err = NewJSONEvent("bad", make(chan int))
	assert.Error(t, err)
}
