package transactions

import (
	"testing"
	"time"
)

// 2024-06-10 is a Monday.
var labelNow = time.Date(2024, time.June, 10, 15, 30, 0, 0, time.Local)

func TestRelativeDayAt(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"today", time.Date(2024, time.June, 10, 8, 0, 0, 0, time.Local), "Today"},
		{"yesterday", time.Date(2024, time.June, 9, 23, 59, 0, 0, time.Local), "Yesterday"},
		{"six days ago", time.Date(2024, time.June, 4, 12, 0, 0, 0, time.Local), "Last Tuesday"},
		{"seven days ago", time.Date(2024, time.June, 3, 12, 0, 0, 0, time.Local), "Last Monday"},
		{"eight days ago", time.Date(2024, time.June, 2, 12, 0, 0, 0, time.Local), "Sunday, June 2nd"},
		{"three weeks ago", time.Date(2024, time.May, 20, 12, 0, 0, 0, time.Local), "Monday, May 20th"},
		{"ordinal teens", time.Date(2024, time.May, 13, 12, 0, 0, 0, time.Local), "Monday, May 13th"},
		{"ordinal first", time.Date(2024, time.May, 1, 12, 0, 0, 0, time.Local), "Wednesday, May 1st"},
		{"ordinal third", time.Date(2024, time.May, 3, 12, 0, 0, 0, time.Local), "Friday, May 3rd"},
		{"ordinal twenty-second", time.Date(2024, time.April, 22, 12, 0, 0, 0, time.Local), "Monday, April 22nd"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeDayAt(tc.date, labelNow); got != tc.want {
				t.Errorf("RelativeDayAt(%v) = %q, want %q", tc.date, got, tc.want)
			}
		})
	}
}

func txAt(id string, at time.Time) Transaction {
	return Transaction{ID: id, Name: "tx " + id, Amount: 100, Label: "🍔", Type: TypeNeed, CreatedAt: at}
}

func TestGroupByDayAt_Empty(t *testing.T) {
	groups := GroupByDayAt(nil, labelNow)
	if len(groups) != 0 {
		t.Fatalf("Expected no groups, got %d", len(groups))
	}
}

func TestGroupByDayAt_SameDaySortedAscending(t *testing.T) {
	day := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)
	txs := []Transaction{
		txAt("b", day.Add(14*time.Hour)),
		txAt("a", day.Add(9*time.Hour)),
		txAt("c", day.Add(20*time.Hour)),
	}

	groups := GroupByDayAt(txs, labelNow)
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}
	if groups[0].Label != "Today" {
		t.Errorf("Expected label 'Today', got %q", groups[0].Label)
	}

	var gotIDs []string
	for _, tx := range groups[0].Transactions {
		gotIDs = append(gotIDs, tx.ID)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, gotIDs)
		}
	}
}

func TestGroupByDayAt_GroupsNewestDayFirst(t *testing.T) {
	txs := []Transaction{
		txAt("old", time.Date(2024, time.June, 4, 10, 0, 0, 0, time.Local)),
		txAt("new", time.Date(2024, time.June, 10, 10, 0, 0, 0, time.Local)),
		txAt("mid", time.Date(2024, time.June, 9, 10, 0, 0, 0, time.Local)),
	}

	groups := GroupByDayAt(txs, labelNow)
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}

	wantLabels := []string{"Today", "Yesterday", "Last Tuesday"}
	for i, want := range wantLabels {
		if groups[i].Label != want {
			t.Errorf("Group %d label = %q, want %q", i, groups[i].Label, want)
		}
	}
}

func TestSpentSince(t *testing.T) {
	cutoff := StartOfDay(labelNow)
	txs := []Transaction{
		{Amount: 500, CreatedAt: cutoff.Add(2 * time.Hour)},
		{Amount: 300, CreatedAt: cutoff.Add(10 * time.Hour)},
		{Amount: 999, CreatedAt: cutoff.Add(-time.Minute)},
	}

	if got := SpentSince(txs, cutoff); got != 800 {
		t.Errorf("SpentSince = %d, want 800", got)
	}
}
