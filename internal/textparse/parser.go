// Package textparse turns pasted bank notification texts into draft
// transactions.
//
// Recognized shape:
//
//	Chase Sapphire Preferred: You made a $18.74 transaction with TST* PRIME PIZZA - P on Oct 30, 2022 at 10:04 PM ET
package textparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrParse is returned for any input that does not match the expected
// notification shape. Callers show a fixed instructional message and
// echo the raw input back for correction.
var ErrParse = errors.New("could not parse transaction text")

const (
	markerAmount   = "You made a $"
	markerMerchant = " transaction with "
	markerDay      = " on "
	markerTime     = " at "
	markerZone     = " ET"

	dayLayout  = "Jan 2, 2006"
	timeLayout = "3:04 PM"
)

// Draft is the parsed, not-yet-confirmed transaction. It is never
// persisted directly; the raw substrings are kept for the preview UI.
type Draft struct {
	Amount      decimal.Decimal `json:"amount"`
	AmountCents int64           `json:"amount_cents"`
	Merchant    string          `json:"merchant"`
	RawDay      string          `json:"raw_day"`
	RawTime     string          `json:"raw_time"`
	Day         time.Time       `json:"day"`
	Hour        int             `json:"hour"`
	Minute      int             `json:"minute"`
}

// Parse splits text against the fixed grammar and builds a draft.
// Any missing marker or malformed field fails with ErrParse and no
// partial result. Only the ET timezone suffix is recognized; the
// combined timestamp is produced in local time.
func Parse(text string) (Draft, error) {
	_, body, ok := strings.Cut(text, markerAmount)
	if !ok {
		return Draft{}, fmt.Errorf("%w: missing %q", ErrParse, markerAmount)
	}

	rawAmount, rest, ok := strings.Cut(body, markerMerchant)
	if !ok {
		return Draft{}, fmt.Errorf("%w: missing %q", ErrParse, markerMerchant)
	}

	merchant, dateTail, ok := strings.Cut(rest, markerDay)
	if !ok {
		return Draft{}, fmt.Errorf("%w: missing %q", ErrParse, markerDay)
	}

	rawDay, timeWithZone, ok := strings.Cut(dateTail, markerTime)
	if !ok {
		return Draft{}, fmt.Errorf("%w: missing %q", ErrParse, markerTime)
	}

	// Split semantics, not suffix-strip: anything after " ET" is dropped,
	// and without the marker the whole field reaches the time parse below.
	rawTime, _, _ := strings.Cut(timeWithZone, markerZone)

	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return Draft{}, fmt.Errorf("%w: bad amount %q", ErrParse, rawAmount)
	}

	day, err := time.ParseInLocation(dayLayout, rawDay, time.Local)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: bad day %q", ErrParse, rawDay)
	}

	clock, err := time.Parse(timeLayout, rawTime)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: bad time %q", ErrParse, rawTime)
	}

	hour, minute := clock.Hour(), clock.Minute()
	combined := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)

	return Draft{
		Amount:      amount,
		AmountCents: amount.Shift(2).IntPart(),
		Merchant:    strings.TrimSpace(merchant),
		RawDay:      rawDay,
		RawTime:     rawTime,
		Day:         combined,
		Hour:        hour,
		Minute:      minute,
	}, nil
}
