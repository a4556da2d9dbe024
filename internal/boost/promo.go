package boost

import (
	"fmt"
	"sort"
	"sync"
)

const (
	CodeEmployee = "I_WORK_HERE"
	CodeLongStay = "STAY4_GET1"
	CodePayday   = "PAYDAY"
)

// Stay is the pricing view of a reservation that rules work against.
type Stay struct {
	CheckIn        int
	CheckOut       int
	NightlyPrice   float64
	FirstNightRate float64
}

func (s Stay) Nights() int {
	return s.CheckOut - s.CheckIn
}

func (s Stay) coversNight(night int) bool {
	return night >= s.CheckIn && night < s.CheckOut
}

// Rule is a named discount: Eligible decides whether it may run against a stay,
// Apply maps the current total to the discounted one.
type Rule struct {
	Code     string
	Eligible func(stay Stay) bool
	Apply    func(stay Stay, total float64) float64
}

type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{rules: make(map[string]Rule, len(rules))}

	for _, rule := range rules {
		r.rules[rule.Code] = rule
	}

	return r
}

func (r *Registry) Register(rule Rule) error {
	if rule.Code == "" || rule.Apply == nil {
		return fmt.Errorf("register rule %q: %w", rule.Code, ErrInvalidRule)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[rule.Code]; ok {
		return fmt.Errorf("register rule %q: %w", rule.Code, ErrDuplicateCode)
	}

	r.rules[rule.Code] = rule

	return nil
}

func (r *Registry) Lookup(code string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[code]

	return rule, ok
}

// Codes returns the registered codes sorted alphabetically.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.rules))
	for code := range r.rules {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Discount runs the rule registered under code against total. It does not track
// which codes a stay already used; that is the caller's bookkeeping.
func (r *Registry) Discount(code string, stay Stay, total float64) (float64, error) {
	rule, ok := r.Lookup(code)
	if !ok {
		return total, fmt.Errorf("code %q: %w", code, ErrUnknownCode)
	}

	if rule.Eligible != nil && !rule.Eligible(stay) {
		return total, fmt.Errorf("code %q for nights [%d,%d): %w", code, stay.CheckIn, stay.CheckOut, ErrIneligible)
	}

	return rule.Apply(stay, total), nil
}

func EmployeeDiscount() Rule {
	return Rule{
		Code:     CodeEmployee,
		Eligible: func(Stay) bool { return true },
		Apply: func(_ Stay, total float64) float64 {
			return total * 0.90 //nolint:gomnd
		},
	}
}

// LongStayDiscount refunds the first night at its own rate for stays of five
// nights or more.
func LongStayDiscount() Rule {
	return Rule{
		Code: CodeLongStay,
		Eligible: func(stay Stay) bool {
			return stay.Nights() >= 5 //nolint:gomnd
		},
		Apply: func(stay Stay, total float64) float64 {
			return total - stay.NightlyPrice*stay.FirstNightRate
		},
	}
}

func PaydayDiscount() Rule {
	return Rule{
		Code: CodePayday,
		Eligible: func(stay Stay) bool {
			return stay.coversNight(15) || stay.coversNight(30) //nolint:gomnd
		},
		Apply: func(_ Stay, total float64) float64 {
			return total * 0.93 //nolint:gomnd
		},
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default is the shared registry holding the house codes.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(EmployeeDiscount(), LongStayDiscount(), PaydayDiscount())
	})

	return defaultRegistry
}
