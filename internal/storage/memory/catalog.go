package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// Catalog is the ordered set of hotels, unique by name. It also keeps the
// booking desk's event journal and idempotency keys.
type Catalog struct {
	mu              sync.RWMutex
	l               *logger.Logger
	hotels          []*booking.Hotel
	events          []*booking.Event
	idempotencyKeys map[string]*booking.Reservation
}

func New(conf Config) *Catalog {
	//nolint:exhaustruct
	return &Catalog{
		l:               conf.L,
		idempotencyKeys: make(map[string]*booking.Reservation),
	}
}

func (c *Catalog) indexLocked(name string) int {
	for idx, hotel := range c.hotels {
		if hotel.Name() == name {
			return idx
		}
	}

	return -1
}

// AddHotel creates a hotel with nRooms standard rooms and appends it.
func (c *Catalog) AddHotel(name string, basePrice float64, nRooms int) (*booking.Hotel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(name) >= 0 {
		return nil, fmt.Errorf("hotel %q: %w", name, ErrDuplicateName)
	}

	hotel, err := booking.NewHotel(name, basePrice, nRooms)
	if err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	c.hotels = append(c.hotels, hotel)

	c.l.LogDebug("Hotel %q added with %d rooms at %.2f", name, nRooms, basePrice)

	return hotel, nil
}

// RemoveHotel drops the hotel with its rooms and reservations. It reports
// false when no hotel has that name.
func (c *Catalog) RemoveHotel(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(name)
	if idx < 0 {
		return false
	}

	removed := c.hotels[idx]
	c.hotels = append(c.hotels[:idx], c.hotels[idx+1:]...)

	rooms := make(map[*booking.Room]struct{})
	for _, room := range removed.Rooms() {
		rooms[room] = struct{}{}
	}

	for key, res := range c.idempotencyKeys {
		if _, ok := rooms[res.Room()]; ok {
			delete(c.idempotencyKeys, key)
		}
	}

	c.l.LogDebug("Hotel %q removed", name)

	return true
}

func (c *Catalog) RenameHotel(oldName, newName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(oldName)
	if idx < 0 {
		return fmt.Errorf("hotel %q: %w", oldName, booking.ErrHotelNotFound)
	}

	if oldName == newName {
		return nil
	}

	if c.indexLocked(newName) >= 0 {
		return fmt.Errorf("hotel %q: %w", newName, ErrDuplicateName)
	}

	if err := c.hotels[idx].Rename(newName); err != nil {
		return fmt.Errorf("rename hotel %q: %w", oldName, err)
	}

	return nil
}

func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.hotels)
}

func (c *Catalog) Hotel(index int) (*booking.Hotel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.hotels) {
		return nil, false
	}

	return c.hotels[index], true
}

func (c *Catalog) HotelByName(name string) (*booking.Hotel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexLocked(name)
	if idx < 0 {
		return nil, false
	}

	return c.hotels[idx], true
}

func (c *Catalog) Hotels() []*booking.Hotel {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*booking.Hotel, len(c.hotels))
	copy(out, c.hotels)

	return out
}

func (c *Catalog) SaveEvent(_ context.Context, event *booking.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, event)

	return nil
}

func (c *Catalog) Events() []*booking.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*booking.Event, len(c.events))
	copy(out, c.events)

	return out
}

func (c *Catalog) SaveReservationIdempotencyKey(ctx context.Context, reservation *booking.Reservation) error {
	key, ok := booking.IdempotencyKeyFromContext(ctx)
	if !ok {
		return booking.ErrIdempotencyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.idempotencyKeys[key] = reservation

	return nil
}

// GetReservationByIdempotencyKey returns the reservation stored under the key in
// ctx. A key whose reservation was cancelled since counts as unknown.
func (c *Catalog) GetReservationByIdempotencyKey(ctx context.Context) (*booking.Reservation, error) {
	key, ok := booking.IdempotencyKeyFromContext(ctx)
	if !ok {
		return nil, booking.ErrIdempotencyKey
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	res, exists := c.idempotencyKeys[key]
	if !exists {
		return nil, booking.ErrRecordNotFound
	}

	if _, booked := res.Room().Reservation(res.ID()); !booked {
		return nil, booking.ErrRecordNotFound
	}

	return res, nil
}
