package transactions

import (
	"fmt"
	"sort"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayGroup is a feed bucket: all of one calendar day's transactions
// under a human label.
type DayGroup struct {
	Label        string        `json:"label"`
	Transactions []Transaction `json:"transactions"`
}

// RelativeDay labels a date against the current wall clock.
func RelativeDay(date time.Time) string {
	return RelativeDayAt(date, time.Now())
}

// RelativeDayAt labels a date against an explicit "now":
//
//	Today
//	Yesterday
//	Last <Weekday>   (within 7 calendar days)
//	<Weekday>, <Month> <OrdinalDay>
func RelativeDayAt(date, now time.Time) string {
	if sameCalendarDay(date, now) {
		return "Today"
	}
	if sameCalendarDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	if calendarDaysBetween(date, now) <= 7 {
		return "Last " + date.Weekday().String()
	}
	return fmt.Sprintf("%s, %s %s", date.Weekday(), date.Month(), ordinal(date.Day()))
}

// GroupByDay buckets transactions by local calendar day, labels each
// bucket relative to the current time, and sorts buckets newest day
// first with each bucket's transactions oldest first.
func GroupByDay(txs []Transaction) []DayGroup {
	return GroupByDayAt(txs, time.Now())
}

func GroupByDayAt(txs []Transaction, now time.Time) []DayGroup {
	buckets := make(map[string][]Transaction)
	for _, tx := range txs {
		key := tx.CreatedAt.Local().Format(dayKeyLayout)
		buckets[key] = append(buckets[key], tx)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// yyyy-mm-dd keys order lexically
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		day := buckets[key]
		sort.Slice(day, func(i, j int) bool {
			return day[i].CreatedAt.Before(day[j].CreatedAt)
		})

		keyDate, _ := time.ParseInLocation(dayKeyLayout, key, time.Local)
		groups = append(groups, DayGroup{
			Label:        RelativeDayAt(keyDate, now),
			Transactions: day,
		})
	}
	return groups
}

// SpentSince sums transactions whose effective time is strictly after
// the cutoff. The home feed uses start-of-today to show today's spend.
func SpentSince(txs []Transaction, cutoff time.Time) int64 {
	var total int64
	for _, tx := range txs {
		if tx.CreatedAt.After(cutoff) {
			total += tx.Amount
		}
	}
	return total
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// calendarDaysBetween counts whole calendar days from "from" up to
// "to", ignoring the time of day. Normalizing through UTC sidesteps
// DST-length days.
func calendarDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
