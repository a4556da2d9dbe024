package memory

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/logger"
)

func newTestCatalog() *Catalog {
	return New(Config{L: logger.New(log.New(io.Discard, "", 0))})
}

func TestCatalog_AddHotel(t *testing.T) {
	c := newTestCatalog()

	hotel, err := c.AddHotel("Reddison", 1299, 12)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hotel.RoomCount() != 12 {
		t.Errorf("Expected 12 rooms created, got %d", hotel.RoomCount())
	}

	if c.Count() != 1 {
		t.Errorf("Expected 1 hotel, got %d", c.Count())
	}
}

func TestCatalog_AddHotelRejects(t *testing.T) {
	c := newTestCatalog()

	if _, err := c.AddHotel("Reddison", 1299, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name    string
		hotel   string
		price   float64
		rooms   int
		wantErr error
	}{
		{name: "duplicate name", hotel: "Reddison", price: 500, rooms: 3, wantErr: ErrDuplicateName},
		{name: "duplicate name with invalid rooms", hotel: "Reddison", price: 500, rooms: 0, wantErr: ErrDuplicateName},
		{name: "no rooms", hotel: "Other", price: 500, rooms: 0, wantErr: booking.ErrInvalidRoomCount},
		{name: "too many rooms", hotel: "Other", price: 500, rooms: 51, wantErr: booking.ErrInvalidRoomCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.AddHotel(tt.hotel, tt.price, tt.rooms); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}

			if c.Count() != 1 {
				t.Errorf("Expected catalog unchanged, got %d hotels", c.Count())
			}
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := newTestCatalog()
	_, _ = c.AddHotel("First", 1000, 1)
	_, _ = c.AddHotel("Second", 1000, 1)

	hotel, ok := c.Hotel(1)
	if !ok || hotel.Name() != "Second" {
		t.Errorf("Expected Second at index 1, got %v", hotel)
	}

	if _, ok := c.Hotel(2); ok {
		t.Error("Expected no hotel at index 2")
	}

	if _, ok := c.Hotel(-1); ok {
		t.Error("Expected no hotel at index -1")
	}

	if _, ok := c.HotelByName("first"); ok {
		t.Error("Expected case-sensitive lookup")
	}

	if hotel, ok := c.HotelByName("First"); !ok || hotel.Name() != "First" {
		t.Error("Expected First found by name")
	}
}

func TestCatalog_RemoveHotel(t *testing.T) {
	c := newTestCatalog()
	_, _ = c.AddHotel("First", 1000, 1)
	_, _ = c.AddHotel("Second", 1000, 1)

	if !c.RemoveHotel("First") {
		t.Fatal("Expected First removed")
	}

	if c.RemoveHotel("First") {
		t.Error("Expected second removal to report false")
	}

	hotels := c.Hotels()
	if len(hotels) != 1 || hotels[0].Name() != "Second" {
		t.Errorf("Expected only Second left, got %d hotels", len(hotels))
	}

	if _, err := c.AddHotel("First", 1000, 1); err != nil {
		t.Errorf("Expected name reusable after removal, got %v", err)
	}
}

func TestCatalog_RenameHotel(t *testing.T) {
	c := newTestCatalog()
	_, _ = c.AddHotel("First", 1000, 1)
	_, _ = c.AddHotel("Second", 1000, 1)

	if err := c.RenameHotel("First", "Second"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}

	if err := c.RenameHotel("Missing", "Third"); !errors.Is(err, booking.ErrHotelNotFound) {
		t.Errorf("Expected ErrHotelNotFound, got %v", err)
	}

	if err := c.RenameHotel("First", ""); !errors.Is(err, booking.ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}

	if err := c.RenameHotel("First", "Third"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, ok := c.HotelByName("Third"); !ok {
		t.Error("Expected Third found")
	}

	if _, ok := c.HotelByName("First"); ok {
		t.Error("Expected First gone")
	}
}

func TestCatalog_IdempotencyKeys(t *testing.T) {
	c := newTestCatalog()
	hotel, _ := c.AddHotel("First", 1000, 1)
	room, _ := hotel.Room(0)
	res, _ := room.AddReservation("Guest", 1, 3)

	if _, err := c.GetReservationByIdempotencyKey(context.Background()); !errors.Is(err, booking.ErrIdempotencyKey) {
		t.Errorf("Expected ErrIdempotencyKey, got %v", err)
	}

	ctx := booking.NewContextWithIdempotencyKey(context.Background(), "k1")

	if _, err := c.GetReservationByIdempotencyKey(ctx); !errors.Is(err, booking.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}

	if err := c.SaveReservationIdempotencyKey(ctx, res); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := c.GetReservationByIdempotencyKey(ctx)
	if err != nil || got != res {
		t.Fatalf("Expected stored reservation, got %v (%v)", got, err)
	}

	room.RemoveReservation(res)

	if _, err := c.GetReservationByIdempotencyKey(ctx); !errors.Is(err, booking.ErrRecordNotFound) {
		t.Errorf("Expected cancelled reservation to be forgotten, got %v", err)
	}
}

func TestCatalog_RemoveHotelDropsKeys(t *testing.T) {
	c := newTestCatalog()
	hotel, _ := c.AddHotel("First", 1000, 1)
	room, _ := hotel.Room(0)
	res, _ := room.AddReservation("Guest", 1, 3)

	ctx := booking.NewContextWithIdempotencyKey(context.Background(), "k1")
	_ = c.SaveReservationIdempotencyKey(ctx, res)

	c.RemoveHotel("First")

	if len(c.idempotencyKeys) != 0 {
		t.Errorf("Expected keys dropped with the hotel, got %d", len(c.idempotencyKeys))
	}
}

func TestCatalog_Events(t *testing.T) {
	c := newTestCatalog()

	_ = c.SaveEvent(context.Background(), &booking.Event{ID: 1, Kind: booking.EventBooked})
	_ = c.SaveEvent(context.Background(), &booking.Event{ID: 2, Kind: booking.EventCancelled})

	events := c.Events()
	if len(events) != 2 || events[1].Kind != booking.EventCancelled {
		t.Errorf("Expected events in order, got %+v", events)
	}
}
