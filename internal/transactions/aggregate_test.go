package transactions

import (
	"testing"
	"time"
)

func TestSpendByCategory_FiltersAndSorts(t *testing.T) {
	june := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	may := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)

	txs := []Transaction{
		{Label: "A", Amount: 500, CreatedAt: june},
		{Label: "B", Amount: 300, CreatedAt: june},
		{Label: "A", Amount: 200, CreatedAt: may},
	}

	spend := SpendByCategory(txs, june)

	if spend.Month != "2024-06" {
		t.Errorf("Expected month 2024-06, got %q", spend.Month)
	}
	if len(spend.Categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(spend.Categories))
	}
	if spend.Categories[0].Label != "A" || spend.Categories[0].Sum != 500 {
		t.Errorf("Expected A=500 first, got %+v", spend.Categories[0])
	}
	if spend.Categories[1].Label != "B" || spend.Categories[1].Sum != 300 {
		t.Errorf("Expected B=300 second, got %+v", spend.Categories[1])
	}
	if spend.Total != 800 {
		t.Errorf("Expected total 800, got %d", spend.Total)
	}
	if spend.Max != 500 {
		t.Errorf("Expected max 500, got %d", spend.Max)
	}
}

func TestSpendByCategory_SameMonthDifferentYearExcluded(t *testing.T) {
	thisJune := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)
	lastJune := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.Local)

	txs := []Transaction{
		{Label: "A", Amount: 100, CreatedAt: lastJune},
	}

	spend := SpendByCategory(txs, thisJune)
	if len(spend.Categories) != 0 || spend.Total != 0 {
		t.Errorf("Expected empty spend, got %+v", spend)
	}
}

func TestSpendByCategory_TiesKeepFirstEncounterOrder(t *testing.T) {
	june := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	txs := []Transaction{
		{Label: "B", Amount: 300, CreatedAt: june},
		{Label: "A", Amount: 300, CreatedAt: june},
	}

	spend := SpendByCategory(txs, june)
	if spend.Categories[0].Label != "B" || spend.Categories[1].Label != "A" {
		t.Errorf("Expected tie order B then A, got %+v", spend.Categories)
	}
}

func TestSpendByCategory_Empty(t *testing.T) {
	spend := SpendByCategory(nil, time.Now())
	if len(spend.Categories) != 0 || spend.Total != 0 || spend.Max != 0 {
		t.Errorf("Expected zero spend, got %+v", spend)
	}
}
