package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avstrong/hotel/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (int, error)
}

type storageReader interface {
	HotelByName(name string) (*Hotel, bool)
	GetReservationByIdempotencyKey(ctx context.Context) (*Reservation, error)
}

type storageWriter interface {
	SaveReservationIdempotencyKey(ctx context.Context, reservation *Reservation) error
	SaveEvent(ctx context.Context, event *Event) error
}

type storage interface {
	storageReader
	storageWriter
}

// Manager is the booking desk: it resolves hotel and room by name, books stays,
// applies discount codes and journals what happened.
type Manager struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator) *Manager {
	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
	}
}

func (b *BookInput) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(b.HotelName) == "" {
		inputErr.addError("hotelName", "provide hotelName")
	}

	if strings.TrimSpace(b.RoomName) == "" {
		inputErr.addError("roomName", "provide roomName")
	}

	if strings.TrimSpace(b.GuestName) == "" {
		inputErr.addError("guestName", "provide guestName")
	}

	if b.CheckIn < MinCheckIn || b.CheckIn > MaxCheckIn {
		inputErr.addError("checkIn", fmt.Sprintf("checkIn must be within [%d,%d]", MinCheckIn, MaxCheckIn))
	}

	if b.CheckOut < MinCheckOut || b.CheckOut > MaxCheckOut {
		inputErr.addError("checkOut", fmt.Sprintf("checkOut must be within [%d,%d]", MinCheckOut, MaxCheckOut))
	}

	if b.CheckOut <= b.CheckIn {
		inputErr.addError("checkOut", "checkOut must be after checkIn")
	}

	seen := make(map[string]struct{}, len(b.Codes))
	for _, code := range b.Codes {
		if _, ok := seen[code]; ok {
			inputErr.addError("codes", fmt.Sprintf("code %s requested twice", code))
		}

		seen[code] = struct{}{}
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (m *Manager) room(hotelName, roomName string) (*Room, error) {
	hotel, ok := m.storage.HotelByName(hotelName)
	if !ok {
		return nil, fmt.Errorf("hotel %q: %w", hotelName, ErrHotelNotFound)
	}

	room, ok := hotel.RoomByName(roomName)
	if !ok {
		return nil, fmt.Errorf("room %q in hotel %q: %w", roomName, hotelName, ErrRoomNotFound)
	}

	return room, nil
}

// Find resolves a reservation reference.
func (m *Manager) Find(ref ReservationRef) (*Room, *Reservation, error) {
	room, err := m.room(ref.HotelName, ref.RoomName)
	if err != nil {
		return nil, nil, err
	}

	res, ok := room.Reservation(ref.ReservationID)
	if !ok {
		return nil, nil, fmt.Errorf("reservation %s in room %q: %w", ref.ReservationID, ref.RoomName, ErrReservationMissing)
	}

	return room, res, nil
}

func (m *Manager) buildEvent(ctx context.Context, kind EventKind, hotelName string, res *Reservation) (*Event, error) {
	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	return &Event{
		ID:            id,
		Kind:          kind,
		HotelName:     hotelName,
		RoomName:      res.Room().Name(),
		ReservationID: res.ID(),
		TotalPrice:    res.TotalPrice(),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func (m *Manager) reservationByIdempotencyKey(ctx context.Context) (*Reservation, error) {
	if _, ok := IdempotencyKeyFromContext(ctx); !ok {
		return nil, nil //nolint:nilnil
	}

	res, err := m.storage.GetReservationByIdempotencyKey(ctx)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, fmt.Errorf("get reservation by idempotency key: %w", err)
	}

	return res, nil
}

// Book reserves a room and applies the requested discount codes in order. If
// any code is rejected the reservation is withdrawn and nothing is recorded.
//
//nolint:funlen,cyclop // it's linear simple code
func (m *Manager) Book(ctx context.Context, input *BookInput) (_ *Reservation, err error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := m.reservationByIdempotencyKey(ctx)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		m.l.LogDebug("Replayed reservation %s, traceID: %s", existing.ID(), logger.TraceID(ctx))

		return existing, nil
	}

	room, err := m.room(input.HotelName, input.RoomName)
	if err != nil {
		return nil, err
	}

	if !room.AreDatesAvailable(input.CheckIn, input.CheckOut) {
		availabilityErr := NewAvailabilityError()
		availabilityErr.AddUnavailableRoom(input.HotelName, input.RoomName, input.CheckIn, input.CheckOut)

		return nil, availabilityErr
	}

	res, err := room.AddReservation(input.GuestName, input.CheckIn, input.CheckOut)
	if errors.Is(err, ErrDatesUnavailable) {
		availabilityErr := NewAvailabilityError()
		availabilityErr.AddUnavailableRoom(input.HotelName, input.RoomName, input.CheckIn, input.CheckOut)

		return nil, availabilityErr
	}

	if err != nil {
		return nil, fmt.Errorf("add reservation: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}

		room.RemoveReservation(res)

		m.l.LogInfo("Reservation %s has been withdrawn after error, traceID: %s", res.ID(), logger.TraceID(ctx))
	}()

	for _, code := range input.Codes {
		if err = res.ApplyDiscount(code); err != nil {
			return nil, fmt.Errorf("reservation %s: %w", res.ID(), err)
		}
	}

	event, err := m.buildEvent(ctx, EventBooked, input.HotelName, res)
	if err != nil {
		return nil, fmt.Errorf("build event for reservation %v: %w", res.ID(), err)
	}

	if _, ok := IdempotencyKeyFromContext(ctx); ok {
		if err = m.storage.SaveReservationIdempotencyKey(ctx, res); err != nil {
			return nil, fmt.Errorf("save idempotency key: %w", err)
		}
	}

	if err = m.storage.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("save event to storage: %w", err)
	}

	m.l.LogInfo(
		"Booked %s in %s/%s nights [%d,%d) total %.2f, traceID: %s",
		res.GuestName(), input.HotelName, input.RoomName, res.CheckIn(), res.CheckOut(), res.TotalPrice(), logger.TraceID(ctx),
	)

	return res, nil
}

func (m *Manager) Cancel(ctx context.Context, ref ReservationRef) (err error) {
	room, res, err := m.Find(ref)
	if err != nil {
		return err
	}

	event, err := m.buildEvent(ctx, EventCancelled, ref.HotelName, res)
	if err != nil {
		return fmt.Errorf("build event for reservation %v: %w", res.ID(), err)
	}

	if !room.RemoveReservation(res) {
		return fmt.Errorf("reservation %s: %w", res.ID(), ErrReservationMissing)
	}

	defer func() {
		if err == nil {
			return
		}

		if !room.reinstate(res) {
			m.l.LogErrorf("Reservation %s could not be reinstated, traceID: %s", res.ID(), logger.TraceID(ctx))

			return
		}

		m.l.LogInfo("Reservation %s has been reinstated after error, traceID: %s", res.ID(), logger.TraceID(ctx))
	}()

	if err = m.storage.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("save event to storage: %w", err)
	}

	m.l.LogInfo("Cancelled reservation %s in %s/%s, traceID: %s", res.ID(), ref.HotelName, ref.RoomName, logger.TraceID(ctx))

	return nil
}

func (m *Manager) ApplyDiscount(ctx context.Context, ref ReservationRef, code string) (_ *Reservation, err error) {
	_, res, err := m.Find(ref)
	if err != nil {
		return nil, err
	}

	before := res.snapshotPrice()

	if err = res.ApplyDiscount(code); err != nil {
		m.l.LogDebug("Rejected code %s for reservation %s: %v, traceID: %s", code, res.ID(), err.Error(), logger.TraceID(ctx))

		return nil, err
	}

	defer func() {
		if err == nil {
			return
		}

		res.restorePrice(before)

		m.l.LogInfo("Code %s has been withdrawn from reservation %s after error, traceID: %s", code, res.ID(), logger.TraceID(ctx))
	}()

	event, err := m.buildEvent(ctx, EventDiscountApplied, ref.HotelName, res)
	if err != nil {
		return nil, fmt.Errorf("build event for reservation %v: %w", res.ID(), err)
	}

	event.Code = code

	if err = m.storage.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("save event to storage: %w", err)
	}

	m.l.LogInfo("Applied code %s to reservation %s, total %.2f, traceID: %s", code, res.ID(), res.TotalPrice(), logger.TraceID(ctx))

	return res, nil
}
