package booking

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventBooked          EventKind = "reservation.booked"
	EventCancelled       EventKind = "reservation.cancelled"
	EventDiscountApplied EventKind = "reservation.discount_applied"
)

type Event struct {
	ID            int
	Kind          EventKind
	HotelName     string
	RoomName      string
	ReservationID uuid.UUID
	Code          string
	TotalPrice    float64
	CreatedAt     time.Time
}

type BookInput struct {
	HotelName string
	RoomName  string
	GuestName string
	CheckIn   int
	CheckOut  int
	Codes     []string
}

type ReservationRef struct {
	HotelName     string
	RoomName      string
	ReservationID uuid.UUID
}
