package booking

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/avstrong/hotel/internal/logger"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func discardLogger() *logger.Logger {
	l := logger.New(log.New(io.Discard, "", 0))
	l.SetLevel(logger.LevelDebug)

	return l
}

func newTestHotel(t *testing.T, basePrice float64, rooms int) *Hotel {
	t.Helper()

	hotel, err := NewHotel("Test Hotel", basePrice, rooms)
	if err != nil {
		t.Fatalf("Expected hotel, got error %v", err)
	}

	return hotel
}

func firstRoom(t *testing.T, hotel *Hotel) *Room {
	t.Helper()

	room, ok := hotel.Room(0)
	if !ok {
		t.Fatal("Expected room at index 0")
	}

	return room
}
