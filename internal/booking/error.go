package booking

import (
	"errors"
	"fmt"
)

var (
	ErrIdempotencyKey     = errors.New("idempotency key not found")
	ErrNextID             = errors.New("get next id from generator")
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidRoomCount   = errors.New("invalid room count")
	ErrInvalidRoomType    = errors.New("invalid room type")
	ErrRoomsOccupied      = errors.New("rooms to remove have reservations")
	ErrInvalidRateDate    = errors.New("rate date out of range")
	ErrInvalidRate        = errors.New("rate out of range")
	ErrInvalidDates       = errors.New("invalid check-in/check-out dates")
	ErrInvalidGuest       = errors.New("guest name is required")
	ErrDatesUnavailable   = errors.New("dates are not available")
	ErrCodeAlreadyApplied = errors.New("discount code already applied")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrReservationMissing = errors.New("reservation not found")
)

type AvailabilityError struct {
	errors []string
}

func NewAvailabilityError() *AvailabilityError {
	//nolint:exhaustruct
	return &AvailabilityError{}
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityError *AvailabilityError

	if errors.As(err, &availabilityError) {
		return availabilityError
	}

	return nil
}

func (e *AvailabilityError) AddUnavailableRoom(hotel, room string, checkIn, checkOut int) {
	e.errors = append(e.errors, fmt.Sprintf("room '%v' is unavailable in hotel '%v' for nights [%d,%d)", room, hotel, checkIn, checkOut))
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%+v", e.errors)
}

func (e *AvailabilityError) Unwrap() error {
	return ErrDatesUnavailable
}

func (e *AvailabilityError) Fields() []string {
	return e.errors
}

func (e *AvailabilityError) UnavailableRoomsCount() int {
	return len(e.errors)
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
