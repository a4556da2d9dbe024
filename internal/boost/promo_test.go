package boost

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestDefault_Codes(t *testing.T) {
	want := []string{CodeEmployee, CodePayday, CodeLongStay}

	if got := Default().Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected codes %v, got %v", want, got)
	}
}

func TestDiscount_Eligibility(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		stay     Stay
		eligible bool
	}{
		{name: "employee any stay", code: CodeEmployee, stay: Stay{CheckIn: 1, CheckOut: 2}, eligible: true},
		{name: "long stay five nights", code: CodeLongStay, stay: Stay{CheckIn: 1, CheckOut: 6}, eligible: true},
		{name: "long stay four nights", code: CodeLongStay, stay: Stay{CheckIn: 1, CheckOut: 5}, eligible: false},
		{name: "payday covers 15", code: CodePayday, stay: Stay{CheckIn: 15, CheckOut: 16}, eligible: true},
		{name: "payday covers 30", code: CodePayday, stay: Stay{CheckIn: 29, CheckOut: 31}, eligible: true},
		{name: "payday leaves on 15", code: CodePayday, stay: Stay{CheckIn: 10, CheckOut: 15}, eligible: false},
		{name: "payday arrives on 16", code: CodePayday, stay: Stay{CheckIn: 16, CheckOut: 20}, eligible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.stay.NightlyPrice = 100
			tt.stay.FirstNightRate = 1

			total, err := Default().Discount(tt.code, tt.stay, 1000)

			if tt.eligible && err != nil {
				t.Fatalf("Expected eligible, got %v", err)
			}

			if !tt.eligible {
				if !errors.Is(err, ErrIneligible) {
					t.Fatalf("Expected ErrIneligible, got %v", err)
				}

				if total != 1000 {
					t.Errorf("Expected total untouched, got %v", total)
				}
			}
		})
	}
}

func TestDiscount_Effects(t *testing.T) {
	stay := Stay{CheckIn: 14, CheckOut: 20, NightlyPrice: 1000, FirstNightRate: 1.2}

	tests := []struct {
		code string
		want float64
	}{
		{code: CodeEmployee, want: 9000},
		{code: CodePayday, want: 9300},
		{code: CodeLongStay, want: 8800},
	}

	for _, tt := range tests {
		got, err := Default().Discount(tt.code, stay, 10000)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", tt.code, err)
		}

		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Expected %s to give %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestDiscount_UnknownCode(t *testing.T) {
	if _, err := Default().Discount("i_work_here", Stay{CheckIn: 1, CheckOut: 2}, 10); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Expected ErrUnknownCode for lower-case code, got %v", err)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(EmployeeDiscount())

	flat := Rule{
		Code:  "FLAT_100",
		Apply: func(_ Stay, total float64) float64 { return total - 100 },
	}

	if err := r.Register(flat); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := r.Register(flat); !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("Expected ErrDuplicateCode, got %v", err)
	}

	if err := r.Register(Rule{Code: "BROKEN"}); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("Expected ErrInvalidRule, got %v", err)
	}

	got, err := r.Discount("FLAT_100", Stay{CheckIn: 1, CheckOut: 2}, 500)
	if err != nil || got != 400 {
		t.Errorf("Expected 400, got %v (%v)", got, err)
	}

	if _, ok := r.Lookup(CodePayday); ok {
		t.Error("Expected PAYDAY missing from custom registry")
	}
}
