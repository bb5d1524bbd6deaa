package hotel

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Roster is the fixed set of rooms indexed by number.
type Roster struct {
	mu    sync.Mutex
	rooms [RoomCount]Room
}

// NewRoster builds the ten rooms with the default tiered rates, all available.
func NewRoster() *Roster {
	return NewRosterWithRates(DefaultLowerRate, DefaultHigherRate)
}

func NewRosterWithRates(lower, higher int64) *Roster {
	r := &Roster{}
	for n := 1; n <= RoomCount; n++ {
		rate := lower
		if n > LowerTierRooms {
			rate = higher
		}
		r.rooms[n-1] = Room{Number: n, NightlyRate: rate, Available: true}
	}
	return r
}

func checkRange(number int) error {
	if number < 1 || number > RoomCount {
		return fmt.Errorf("room %d: %w", number, ErrRoomOutOfRange)
	}
	return nil
}

// Room returns a copy of the room; the guest pointer is copied too.
func (r *Roster) Room(number int) (Room, error) {
	if err := checkRange(number); err != nil {
		return Room{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyRoom(r.rooms[number-1]), nil
}

// Rooms returns a snapshot of the whole board in room order.
func (r *Roster) Rooms() []Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Room, 0, RoomCount)
	for _, room := range r.rooms {
		out = append(out, copyRoom(room))
	}
	return out
}

func (r *Roster) IsOccupied(number int) (bool, error) {
	room, err := r.Room(number)
	if err != nil {
		return false, err
	}
	return !room.Available, nil
}

// CheckInDate returns the check-in date of the current guest.
func (r *Roster) CheckInDate(number int) (time.Time, error) {
	room, err := r.Room(number)
	if err != nil {
		return time.Time{}, err
	}
	if room.Guest == nil {
		return time.Time{}, fmt.Errorf("room %d: %w", number, ErrRoomNotOccupied)
	}
	return room.Guest.CheckIn, nil
}

// CheckIn moves an available room to occupied with guest attached.
func (r *Roster) CheckIn(number int, date time.Time, guest Guest) (Room, error) {
	if err := checkRange(number); err != nil {
		return Room{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	room := &r.rooms[number-1]
	if !ValidTransition(ActionCheckIn, room.Status()) {
		return Room{}, fmt.Errorf("room %d: %w", number, ErrRoomOccupied)
	}

	guest.CheckIn = truncateDay(date)
	guest.CheckOut = nil
	guest.StayID = uuid.New()
	room.Guest = &guest
	room.Available = false
	return copyRoom(*room), nil
}

// QuoteCheckout computes nights and total for a proposed check-out date. It
// does not touch the room or the guest.
func (r *Roster) QuoteCheckout(number int, checkOut time.Time) (Quote, error) {
	room, err := r.Room(number)
	if err != nil {
		return Quote{}, err
	}
	if !ValidTransition(ActionCheckOut, room.Status()) || room.Guest == nil {
		return Quote{}, fmt.Errorf("room %d: %w", number, ErrRoomNotOccupied)
	}

	out := truncateDay(checkOut)
	if !out.After(room.Guest.CheckIn) {
		return Quote{}, fmt.Errorf("room %d: %w", number, ErrCheckoutNotAfterCheckin)
	}

	nights := Nights(room.Guest.CheckIn, out)
	return Quote{
		Room:        number,
		StayID:      room.Guest.StayID,
		CheckIn:     room.Guest.CheckIn,
		CheckOut:    out,
		Nights:      nights,
		NightlyRate: room.NightlyRate,
		Total:       int64(nights) * room.NightlyRate,
	}, nil
}

// CommitCheckout releases the room for a quote produced by QuoteCheckout. The
// quote is rejected when the room no longer holds the stay it was made for.
func (r *Roster) CommitCheckout(q Quote) (Stay, error) {
	if err := checkRange(q.Room); err != nil {
		return Stay{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	room := &r.rooms[q.Room-1]
	if !ValidTransition(ActionCheckOut, room.Status()) || room.Guest == nil {
		return Stay{}, fmt.Errorf("room %d: %w", q.Room, ErrStaleQuote)
	}
	if room.Guest.StayID != q.StayID || !room.Guest.CheckIn.Equal(q.CheckIn) {
		return Stay{}, fmt.Errorf("room %d: %w", q.Room, ErrStaleQuote)
	}
	if !q.CheckOut.After(q.CheckIn) ||
		q.Nights != Nights(q.CheckIn, q.CheckOut) ||
		q.Total != int64(q.Nights)*room.NightlyRate {
		return Stay{}, fmt.Errorf("room %d: %w", q.Room, ErrStaleQuote)
	}

	guest := *room.Guest
	out := q.CheckOut
	guest.CheckOut = &out
	stay := Stay{
		Room:     q.Room,
		Guest:    guest,
		CheckOut: out,
		Nights:   q.Nights,
		Total:    q.Total,
	}
	room.Guest = nil
	room.Available = true
	return stay, nil
}

func copyRoom(room Room) Room {
	if room.Guest != nil {
		g := *room.Guest
		room.Guest = &g
	}
	return room
}
