package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avstrong/hotel/internal/booking"
	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/idgen/simple"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/migration"
	"github.com/avstrong/hotel/internal/storage/memory"
)

func Run(l *logger.Logger, conf config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	ctx = logger.NewContextWithTrace(ctx)

	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	l.SetLevel(level)

	catalog := memory.New(memory.Config{L: l})
	idGen := simple.New()
	desk := booking.New(l, catalog, idGen)

	if conf.Seed {
		if err := migration.Up(ctx, l, catalog, desk, conf.DefaultBasePrice); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	Report(l, catalog)

	l.LogInfo("Journal holds %d events", len(catalog.Events()))

	return nil
}

// Report logs room occupancy and revenue per hotel.
func Report(l *logger.Logger, catalog *memory.Catalog) {
	for idx, hotel := range catalog.Hotels() {
		l.LogInfo(
			"#%d %s: %d rooms, %d without reservations, %d reservations, revenue %.2f",
			idx+1,
			hotel.Name(),
			hotel.RoomCount(),
			hotel.AvailableRoomCount(),
			hotel.ReservationCount(),
			hotel.OccupiedRevenue(),
		)

		for _, room := range hotel.Rooms() {
			for _, res := range room.Reservations() {
				l.LogDebug("  %s (%s, %.2f/night): %s", room.Name(), room.Type(), room.BasePrice(), res)
			}
		}
	}
}
