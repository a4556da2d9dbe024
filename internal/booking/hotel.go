package booking

import (
	"fmt"
	"strings"
	"sync"
)

// MaxRooms caps the number of rooms a hotel may hold.
const MaxRooms = 50

type Hotel struct {
	mu        sync.RWMutex
	name      string
	basePrice float64
	rooms     []*Room
}

// NewHotel creates a hotel with nRooms standard rooms.
func NewHotel(name string, basePrice float64, nRooms int) (*Hotel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	if basePrice <= 0 {
		return nil, fmt.Errorf("hotel %q base price %v: %w", name, basePrice, ErrInvalidPrice)
	}

	if nRooms < 1 || nRooms > MaxRooms {
		return nil, fmt.Errorf("hotel %q with %d rooms: %w", name, nRooms, ErrInvalidRoomCount)
	}

	//nolint:exhaustruct
	h := &Hotel{
		name:      name,
		basePrice: basePrice,
	}

	h.appendRoomsLocked(nRooms, RoomTypeStandard)

	return h, nil
}

func (h *Hotel) Name() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.name
}

// Rename is meant for the owning catalog, which keeps names unique.
func (h *Hotel) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.name = name

	return nil
}

func (h *Hotel) BasePrice() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.basePrice
}

// SetBasePrice affects rooms created afterwards only.
func (h *Hotel) SetBasePrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("base price %v: %w", price, ErrInvalidPrice)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.basePrice = price

	return nil
}

func (h *Hotel) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms)
}

func (h *Hotel) Rooms() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*Room, len(h.rooms))
	copy(out, h.rooms)

	return out
}

func (h *Hotel) Room(index int) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if index < 0 || index >= len(h.rooms) {
		return nil, false
	}

	return h.rooms[index], true
}

func (h *Hotel) RoomByName(name string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, room := range h.rooms {
		if room.name == name {
			return room, true
		}
	}

	return nil, false
}

func (h *Hotel) AddRooms(count int) error {
	return h.AddRoomsOfType(count, RoomTypeStandard)
}

// AddRoomsOfType appends count rooms priced from the current hotel base price.
func (h *Hotel) AddRoomsOfType(count int, roomType RoomType) error {
	if !roomType.Valid() {
		return fmt.Errorf("%v: %w", roomType, ErrInvalidRoomType)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if count < 1 || len(h.rooms)+count > MaxRooms {
		return fmt.Errorf("add %d rooms to %d in %q: %w", count, len(h.rooms), h.name, ErrInvalidRoomCount)
	}

	h.appendRoomsLocked(count, roomType)

	return nil
}

func (h *Hotel) appendRoomsLocked(count int, roomType RoomType) {
	for i := 0; i < count; i++ {
		h.rooms = append(h.rooms, newRoom(len(h.rooms), roomType, h.basePrice))
	}
}

// RemoveRooms drops the last count rooms. Nothing is removed unless every one
// of them is free of reservations.
func (h *Hotel) RemoveRooms(count int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if count < 1 || count > len(h.rooms) {
		return fmt.Errorf("remove %d of %d rooms in %q: %w", count, len(h.rooms), h.name, ErrInvalidRoomCount)
	}

	if count > h.availableLocked() {
		return fmt.Errorf("remove %d rooms in %q: %w", count, h.name, ErrRoomsOccupied)
	}

	tail := h.rooms[len(h.rooms)-count:]
	for _, room := range tail {
		if room.ReservationCount() > 0 {
			return fmt.Errorf("remove %d rooms in %q, %s is booked: %w", count, h.name, room.name, ErrRoomsOccupied)
		}
	}

	for i := range tail {
		tail[i] = nil
	}

	h.rooms = h.rooms[:len(h.rooms)-count]

	return nil
}

// AvailableRoomCount counts rooms with no reservations at all, whatever their
// dates.
func (h *Hotel) AvailableRoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.availableLocked()
}

func (h *Hotel) availableLocked() int {
	var n int

	for _, room := range h.rooms {
		if room.ReservationCount() == 0 {
			n++
		}
	}

	return n
}

// RoomsAvailableFor lists rooms whose nights [checkIn, checkOut) are free.
func (h *Hotel) RoomsAvailableFor(checkIn, checkOut int) []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []*Room

	for _, room := range h.rooms {
		if room.AreDatesAvailable(checkIn, checkOut) {
			out = append(out, room)
		}
	}

	return out
}

func (h *Hotel) OccupiedRevenue() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var sum float64

	for _, room := range h.rooms {
		sum += room.TotalReservationRevenue()
	}

	return sum
}

func (h *Hotel) ReservationCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var n int

	for _, room := range h.rooms {
		n += room.ReservationCount()
	}

	return n
}
