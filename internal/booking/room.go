package booking

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const roomsPerBlock = 5

// Room owns its reservations and rate table. Its base price is fixed when the
// room is created.
type Room struct {
	name      string
	roomType  RoomType
	basePrice float64
	rates     *RateTable

	mu           sync.RWMutex
	reservations []*Reservation
}

// roomName derives the name of the room at creation index idx: block letter
// 'A'+idx/5 and slot idx%5+1, e.g. A-1 .. A-5, B-1.
func roomName(idx int) string {
	return fmt.Sprintf("%c-%d", 'A'+rune(idx/roomsPerBlock), idx%roomsPerBlock+1)
}

func newRoom(idx int, roomType RoomType, hotelBasePrice float64) *Room {
	//nolint:exhaustruct
	return &Room{
		name:      roomName(idx),
		roomType:  roomType,
		basePrice: hotelBasePrice * roomType.Multiplier(),
		rates:     NewRateTable(),
	}
}

func (r *Room) Name() string {
	return r.name
}

func (r *Room) Type() RoomType {
	return r.roomType
}

func (r *Room) BasePrice() float64 {
	return r.basePrice
}

func (r *Room) RateFor(night int) float64 {
	return r.rates.For(night)
}

func (r *Room) Rates() map[int]float64 {
	return r.rates.Snapshot()
}

func (r *Room) SetDateRate(date int, rate float64) error {
	if err := r.rates.Set(date, rate); err != nil {
		return fmt.Errorf("room %s: %w", r.name, err)
	}

	return nil
}

func (r *Room) ClearDateRate(date int) bool {
	return r.rates.Clear(date)
}

func (r *Room) ReservationCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reservations)
}

func (r *Room) Reservations() []*Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Reservation, len(r.reservations))
	copy(out, r.reservations)

	return out
}

func (r *Room) Reservation(id uuid.UUID) (*Reservation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.reservations {
		if res.id == id {
			return res, true
		}
	}

	return nil, false
}

// AreDatesAvailable reports whether nights [checkIn, checkOut) are free. Stays
// that only touch at a boundary do not conflict.
func (r *Room) AreDatesAvailable(checkIn, checkOut int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.availableLocked(checkIn, checkOut)
}

func (r *Room) availableLocked(checkIn, checkOut int) bool {
	for _, res := range r.reservations {
		if (checkIn >= res.checkIn && checkIn < res.checkOut) ||
			(checkOut > res.checkIn && checkOut <= res.checkOut) ||
			(checkIn <= res.checkIn && checkOut >= res.checkOut) {
			return false
		}
	}

	return true
}

// AddReservation books nights [checkIn, checkOut) for guestName and prices the
// stay. Callers normally check AreDatesAvailable first; the room checks again
// under its own lock so a clash never gets stored.
func (r *Room) AddReservation(guestName string, checkIn, checkOut int) (*Reservation, error) {
	if strings.TrimSpace(guestName) == "" {
		return nil, ErrInvalidGuest
	}

	if err := ValidateStay(checkIn, checkOut); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.availableLocked(checkIn, checkOut) {
		return nil, fmt.Errorf("room %s nights [%d,%d): %w", r.name, checkIn, checkOut, ErrDatesUnavailable)
	}

	res := newReservation(r, guestName, checkIn, checkOut)
	r.reservations = append(r.reservations, res)

	return res, nil
}

func (r *Room) RemoveReservation(res *Reservation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx, existing := range r.reservations {
		if existing == res {
			r.reservations = append(r.reservations[:idx], r.reservations[idx+1:]...)

			return true
		}
	}

	return false
}

// reinstate puts a withdrawn reservation back unless its nights were taken in
// the meantime.
func (r *Room) reinstate(res *Reservation) bool {
	if res.room != r {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing == res {
			return true
		}
	}

	if !r.availableLocked(res.checkIn, res.checkOut) {
		return false
	}

	r.reservations = append(r.reservations, res)

	return true
}

// Quote prices nights [checkIn, checkOut) at the room's current rates without
// booking them.
func (r *Room) Quote(checkIn, checkOut int) (float64, error) {
	if err := ValidateStay(checkIn, checkOut); err != nil {
		return 0, err
	}

	var total float64

	for night := checkIn; night < checkOut; night++ {
		total += r.basePrice * r.rates.For(night)
	}

	return total, nil
}

func (r *Room) TotalReservationRevenue() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum float64

	for _, res := range r.reservations {
		sum += res.TotalPrice()
	}

	return sum
}
