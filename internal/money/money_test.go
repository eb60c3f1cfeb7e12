package money

import (
	"errors"
	"testing"
)

func TestDollarsToCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"18.74", 1874},
		{"0.01", 1},
		{"10", 1000},
		{"0", 0},
		{"1234.5", 123450},
	}

	for _, tc := range tests {
		got, err := DollarsToCents(tc.in)
		if err != nil {
			t.Errorf("DollarsToCents(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DollarsToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDollarsToCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1.00"} {
		if _, err := DollarsToCents(in); !errors.Is(err, ErrInvalidMoney) {
			t.Errorf("DollarsToCents(%q): expected ErrInvalidMoney, got %v", in, err)
		}
	}
}

func TestCentsToDollarsString(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1874, "18.74"},
		{-10000, "-100.00"},
		{5, "0.05"},
		{0, "0.00"},
	}

	for _, tc := range tests {
		if got := CentsToDollarsString(tc.in); got != tc.want {
			t.Errorf("CentsToDollarsString(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
