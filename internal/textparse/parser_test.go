package textparse

import (
	"errors"
	"testing"
	"time"
)

func TestParse_WellFormed(t *testing.T) {
	text := "Chase Sapphire Preferred: You made a $18.74 transaction with TST* PRIME PIZZA - P on Oct 30, 2022 at 10:04 PM ET"

	draft, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if draft.AmountCents != 1874 {
		t.Errorf("Expected 1874 cents, got %d", draft.AmountCents)
	}
	if draft.Merchant != "TST* PRIME PIZZA - P" {
		t.Errorf("Expected merchant 'TST* PRIME PIZZA - P', got %q", draft.Merchant)
	}

	want := time.Date(2022, time.October, 30, 22, 4, 0, 0, time.Local)
	if !draft.Day.Equal(want) {
		t.Errorf("Expected day %v, got %v", want, draft.Day)
	}
	if draft.Hour != 22 || draft.Minute != 4 {
		t.Errorf("Expected 22:04, got %d:%02d", draft.Hour, draft.Minute)
	}
	if draft.RawDay != "Oct 30, 2022" {
		t.Errorf("Expected raw day 'Oct 30, 2022', got %q", draft.RawDay)
	}
	if draft.RawTime != "10:04 PM" {
		t.Errorf("Expected raw time '10:04 PM', got %q", draft.RawTime)
	}
}

func TestParse_TrailingPeriodAfterZone(t *testing.T) {
	// some banks append a period after the timezone
	text := "Chase Sapphire Preferred: You made a $15.93 transaction with UBER   *ALFALFA on Oct 30, 2022 at 1:04 PM ET."

	draft, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if draft.Merchant != "UBER   *ALFALFA" {
		t.Errorf("Expected merchant 'UBER   *ALFALFA', got %q", draft.Merchant)
	}
	if draft.Hour != 13 || draft.Minute != 4 {
		t.Errorf("Expected 13:04, got %d:%02d", draft.Hour, draft.Minute)
	}
}

func TestParse_SingleDigitDay(t *testing.T) {
	text := "Credit Card: You made a $10.00 transaction with MERCHANT on Jan 1, 2022 at 12:00 PM ET"

	draft, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2022, time.January, 1, 12, 0, 0, 0, time.Local)
	if !draft.Day.Equal(want) {
		t.Errorf("Expected day %v, got %v", want, draft.Day)
	}
}

func TestParse_MissingZoneTolerated(t *testing.T) {
	// only " ET" is recognized; when absent the whole time field passes
	// through unchanged and still parses. Documented current behavior.
	text := "Credit Card: You made a $10.00 transaction with MERCHANT on Jan 1, 2022 at 12:00 PM"

	draft, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if draft.RawTime != "12:00 PM" {
		t.Errorf("Expected raw time '12:00 PM', got %q", draft.RawTime)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"missing amount marker", "You spent $18.74 at TST* PRIME PIZZA"},
		{"missing merchant marker", "You made a $18.74 at TST* PRIME PIZZA on Oct 30, 2022 at 10:04 PM ET"},
		{"missing date marker", "You made a $18.74 transaction with TST* PRIME PIZZA"},
		{"missing time marker", "You made a $18.74 transaction with TST* PRIME PIZZA on Oct 30, 2022"},
		{"unknown zone suffix", "You made a $18.74 transaction with TST* PRIME PIZZA on Oct 30, 2022 at 10:04 PM PT"},
		{"bad amount", "You made a $abc transaction with TST* PRIME PIZZA on Oct 30, 2022 at 10:04 PM ET"},
		{"bad day", "You made a $18.74 transaction with TST* PRIME PIZZA on October 30th at 10:04 PM ET"},
		{"bad time", "You made a $18.74 transaction with TST* PRIME PIZZA on Oct 30, 2022 at 22:04 ET"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft, err := Parse(tc.text)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("Expected ErrParse, got %v", err)
			}
			if draft != (Draft{}) {
				t.Errorf("Expected zero draft on failure, got %+v", draft)
			}
		})
	}
}
