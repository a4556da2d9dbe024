package booking

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/avstrong/hotel/internal/boost"
)

const (
	MinCheckIn  = 1
	MaxCheckIn  = 30
	MinCheckOut = 2
	MaxCheckOut = 31
)

// Reservation is a stay of one guest in one room over nights [checkIn, checkOut).
// The stay itself never changes; only its price state does.
type Reservation struct {
	id        uuid.UUID
	guestName string
	checkIn   int
	checkOut  int
	room      *Room

	mu           sync.RWMutex
	nightlyPrice float64
	totalPrice   float64
	appliedCodes []string
}

type NightCharge struct {
	Night  int
	Rate   float64
	Amount float64
}

// ValidateStay checks a check-in/check-out pair against the bookable calendar.
func ValidateStay(checkIn, checkOut int) error {
	switch {
	case checkIn < MinCheckIn || checkIn > MaxCheckIn:
		return fmt.Errorf("check-in %d outside [%d,%d]: %w", checkIn, MinCheckIn, MaxCheckIn, ErrInvalidDates)
	case checkOut < MinCheckOut || checkOut > MaxCheckOut:
		return fmt.Errorf("check-out %d outside [%d,%d]: %w", checkOut, MinCheckOut, MaxCheckOut, ErrInvalidDates)
	case checkOut <= checkIn:
		return fmt.Errorf("check-out %d not after check-in %d: %w", checkOut, checkIn, ErrInvalidDates)
	}

	return nil
}

func newReservation(room *Room, guestName string, checkIn, checkOut int) *Reservation {
	//nolint:exhaustruct
	r := &Reservation{
		id:           uuid.New(),
		guestName:    guestName,
		checkIn:      checkIn,
		checkOut:     checkOut,
		room:         room,
		nightlyPrice: room.BasePrice(),
	}

	r.totalPrice = r.baseTotal(r.nightlyPrice)

	return r
}

func (r *Reservation) ID() uuid.UUID {
	return r.id
}

func (r *Reservation) GuestName() string {
	return r.guestName
}

func (r *Reservation) CheckIn() int {
	return r.checkIn
}

func (r *Reservation) CheckOut() int {
	return r.checkOut
}

func (r *Reservation) Nights() int {
	return r.checkOut - r.checkIn
}

func (r *Reservation) Room() *Room {
	return r.room
}

func (r *Reservation) NightlyPrice() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.nightlyPrice
}

func (r *Reservation) TotalPrice() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.totalPrice
}

// AppliedCodes returns the discount codes in the order they were applied.
func (r *Reservation) AppliedCodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.appliedCodes))
	copy(out, r.appliedCodes)

	return out
}

func (r *Reservation) hasCodeLocked(code string) bool {
	for _, applied := range r.appliedCodes {
		if applied == code {
			return true
		}
	}

	return false
}

// Breakdown lists what each night costs before discounts.
func (r *Reservation) Breakdown() []NightCharge {
	nightly := r.NightlyPrice()
	charges := make([]NightCharge, 0, r.Nights())

	for night := r.checkIn; night < r.checkOut; night++ {
		rate := r.room.RateFor(night)
		charges = append(charges, NightCharge{
			Night:  night,
			Rate:   rate,
			Amount: nightly * rate,
		})
	}

	return charges
}

func (r *Reservation) baseTotal(nightly float64) float64 {
	var total float64

	for night := r.checkIn; night < r.checkOut; night++ {
		total += nightly * r.room.RateFor(night)
	}

	return total
}

func (r *Reservation) stay(nightly float64) boost.Stay {
	return boost.Stay{
		CheckIn:        r.checkIn,
		CheckOut:       r.checkOut,
		NightlyPrice:   nightly,
		FirstNightRate: r.room.RateFor(r.checkIn),
	}
}

// ApplyDiscount runs a house discount code against the current total. Each code
// applies at most once and the result depends on the order codes are applied in.
func (r *Reservation) ApplyDiscount(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasCodeLocked(code) {
		return fmt.Errorf("code %q: %w", code, ErrCodeAlreadyApplied)
	}

	total, err := boost.Default().Discount(code, r.stay(r.nightlyPrice), r.totalPrice)
	if err != nil {
		return fmt.Errorf("apply discount: %w", err)
	}

	r.totalPrice = total
	r.appliedCodes = append(r.appliedCodes, code)

	return nil
}

type priceState struct {
	nightly float64
	total   float64
	codes   int
}

func (r *Reservation) snapshotPrice() priceState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return priceState{nightly: r.nightlyPrice, total: r.totalPrice, codes: len(r.appliedCodes)}
}

// restorePrice rolls the price back to a state taken earlier. Codes are only
// ever appended, so truncating drops the ones applied since.
func (r *Reservation) restorePrice(state priceState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nightlyPrice = state.nightly
	r.totalPrice = state.total
	r.appliedCodes = r.appliedCodes[:state.codes]
}

// SetNightlyPrice overrides the nightly price, re-derives the base total and
// replays the applied codes in their original order.
func (r *Reservation) SetNightlyPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("nightly price %v: %w", price, ErrInvalidPrice)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.baseTotal(price)
	stay := r.stay(price)

	for _, code := range r.appliedCodes {
		var err error

		total, err = boost.Default().Discount(code, stay, total)
		if err != nil {
			return fmt.Errorf("replay code %q: %w", code, err)
		}
	}

	r.nightlyPrice = price
	r.totalPrice = total

	return nil
}

func (r *Reservation) String() string {
	return fmt.Sprintf("%s: %s in %s nights [%d,%d) total %.2f codes [%s]",
		r.id, r.guestName, r.room.Name(), r.checkIn, r.checkOut, r.TotalPrice(), strings.Join(r.AppliedCodes(), ","))
}
