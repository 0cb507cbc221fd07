// Package invoice renders order invoices as PDF documents.
package invoice

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/idan2468/go-store/internal/domain"
)

const separator = "------------------------------------------------------------------------"

// Render writes a line-itemized PDF invoice to w. Line prices come from the
// resolved (current) product data; the grand total is the order's stored
// total, which the sweep keeps consistent when products are deleted.
func Render(w io.Writer, orderID string, lines []domain.ResolvedLine, totalPrice float64) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 26)
	pdf.Cell(0, 14, "Your Invoice")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 15)
	pdf.Cell(0, 8, separator)
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Order %s", orderID))
	pdf.Ln(8)
	pdf.Cell(0, 8, separator)
	pdf.Ln(10)

	for _, line := range lines {
		pdf.Cell(0, 8, fmt.Sprintf("%d X %s      $%.2f", line.Quantity, line.Product.Title, line.Subtotal))
		pdf.Ln(8)
	}

	pdf.Cell(0, 8, separator)
	pdf.Ln(12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: $%.2f", totalPrice))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render invoice: %w", err)
	}

	return nil
}
