package migration

import (
	"context"
	"fmt"

	"github.com/avstrong/hotel/internal/boost"
	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/logger"
)

type catalog interface {
	AddHotel(name string, basePrice float64, nRooms int) (*booking.Hotel, error)
	RemoveHotel(name string) bool
}

type desk interface {
	Book(ctx context.Context, input *booking.BookInput) (*booking.Reservation, error)
}

type roomBatch struct {
	count    int
	roomType booking.RoomType
}

type rateOverride struct {
	room string
	date int
	rate float64
}

type hotelSeed struct {
	name       string
	priceRatio float64
	rooms      int
	extra      []roomBatch
	rates      []rateOverride
}

func seeds() []hotelSeed {
	return []hotelSeed{
		{
			name:       "Grand Reddison",
			priceRatio: 1,
			rooms:      10,
			extra: []roomBatch{
				{count: 5, roomType: booking.RoomTypeDeluxe},
				{count: 2, roomType: booking.RoomTypeExecutive},
			},
			rates: []rateOverride{
				{room: "A-1", date: 3, rate: 0.8},
				{room: "A-1", date: 15, rate: 1.2},
				{room: "A-1", date: 30, rate: 1.5},
				{room: "C-1", date: 15, rate: 1.1},
			},
		},
		{
			name:       "Seaside Inn",
			priceRatio: 0.6,
			rooms:      5,
		},
	}
}

func bookings() []*booking.BookInput {
	return []*booking.BookInput{
		{HotelName: "Grand Reddison", RoomName: "A-1", GuestName: "Ada Lovelace", CheckIn: 10, CheckOut: 13, Codes: []string{boost.CodeEmployee}},
		{HotelName: "Grand Reddison", RoomName: "A-2", GuestName: "Alan Turing", CheckIn: 1, CheckOut: 6, Codes: []string{boost.CodeLongStay}},
		{HotelName: "Grand Reddison", RoomName: "C-1", GuestName: "Grace Hopper", CheckIn: 14, CheckOut: 17, Codes: []string{boost.CodePayday}},
		{HotelName: "Seaside Inn", RoomName: "A-1", GuestName: "Edsger Dijkstra", CheckIn: 28, CheckOut: 31},
	}
}

func seedHotel(c catalog, seed hotelSeed, basePrice float64) (err error) {
	hotel, err := c.AddHotel(seed.name, basePrice*seed.priceRatio, seed.rooms)
	if err != nil {
		return fmt.Errorf("add hotel %q: %w", seed.name, err)
	}

	defer func() {
		if err != nil {
			c.RemoveHotel(seed.name)
		}
	}()

	for _, batch := range seed.extra {
		if err := hotel.AddRoomsOfType(batch.count, batch.roomType); err != nil {
			return fmt.Errorf("add %v rooms to %q: %w", batch.roomType, seed.name, err)
		}
	}

	for _, override := range seed.rates {
		room, ok := hotel.RoomByName(override.room)
		if !ok {
			return fmt.Errorf("room %q in %q: %w", override.room, seed.name, booking.ErrRoomNotFound)
		}

		if err := room.SetDateRate(override.date, override.rate); err != nil {
			return fmt.Errorf("set rate in %q: %w", seed.name, err)
		}
	}

	return nil
}

// Up fills an empty catalog with demo hotels and reservations. On failure every
// hotel it added is removed again.
func Up(ctx context.Context, l *logger.Logger, c catalog, d desk, basePrice float64) (err error) {
	var added []string

	defer func() {
		if err == nil {
			l.LogInfo("Seeded %d hotels", len(added))

			return
		}

		for _, name := range added {
			c.RemoveHotel(name)
		}

		l.LogInfo("Seed has been roll backed after error")
	}()

	for _, seed := range seeds() {
		if err = seedHotel(c, seed, basePrice); err != nil {
			return err
		}

		added = append(added, seed.name)
	}

	for _, input := range bookings() {
		if _, err = d.Book(ctx, input); err != nil {
			return fmt.Errorf("book %s in %s/%s: %w", input.GuestName, input.HotelName, input.RoomName, err)
		}
	}

	return nil
}
