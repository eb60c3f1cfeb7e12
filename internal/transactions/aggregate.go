package transactions

import (
	"sort"
	"time"
)

// CategorySum is one category's spend for the month.
type CategorySum struct {
	Label string `json:"label"`
	Sum   int64  `json:"sum"`
}

// MonthlySpend is the per-category breakdown the spend view renders.
// Total and Max are raw cents; any proportional bar widths are for the
// client to derive.
type MonthlySpend struct {
	Month      string        `json:"month"` // YYYY-MM
	Categories []CategorySum `json:"categories"`
	Total      int64         `json:"total"`
	Max        int64         `json:"max"`
}

// SpendByCategory filters txs to the anchor's calendar month and year,
// sums amounts per label, and sorts categories by sum descending.
// Ties keep first-encounter order.
func SpendByCategory(txs []Transaction, anchor time.Time) MonthlySpend {
	sums := make(map[string]int64)
	order := make([]string, 0, 8)

	for _, tx := range txs {
		created := tx.CreatedAt.Local()
		if created.Year() != anchor.Year() || created.Month() != anchor.Month() {
			continue
		}
		if _, seen := sums[tx.Label]; !seen {
			order = append(order, tx.Label)
		}
		sums[tx.Label] += tx.Amount
	}

	categories := make([]CategorySum, 0, len(order))
	var total, max int64
	for _, label := range order {
		sum := sums[label]
		categories = append(categories, CategorySum{Label: label, Sum: sum})
		total += sum
		if sum > max {
			max = sum
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Sum > categories[j].Sum
	})

	return MonthlySpend{
		Month:      anchor.Format("2006-01"),
		Categories: categories,
		Total:      total,
		Max:        max,
	}
}
