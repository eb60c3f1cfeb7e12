package reports

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"

	"github.com/BCarroll524/money-tracker-turbo/internal/money"
	"github.com/BCarroll524/money-tracker-turbo/internal/transactions"
)

// MonthlyPDF renders the month's category breakdown as a downloadable
// PDF statement.
func (h *Handler) MonthlyPDF(c *fiber.Ctx) error {
	userID := getUserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	anchor, err := monthAnchor(c.Query("month"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	txs, err := h.Store.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}

	spend := transactions.SpendByCategory(txs, anchor)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Spending by Category")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Month: "+anchor.Format("January 2006"))
	pdf.Ln(5)
	pdf.Cell(0, 6, "Total spent: $"+money.CentsToDollarsString(spend.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(90, 7, "Category", "B", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Spent", "B", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "Share", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, cat := range spend.Categories {
		share := "0%"
		if spend.Total > 0 {
			share = money.CentsToDollarsString(cat.Sum*10000/spend.Total) + "%"
		}
		pdf.CellFormat(90, 7, cat.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, "$"+money.CentsToDollarsString(cat.Sum), "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, share, "", 1, "R", false, 0, "")
	}

	if len(spend.Categories) == 0 {
		pdf.SetTextColor(120, 120, 120)
		pdf.Cell(0, 8, "No transactions recorded this month.")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render pdf: "+err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="spend-`+anchor.Format("2006-01")+`.pdf"`)
	return c.Send(buf.Bytes())
}
