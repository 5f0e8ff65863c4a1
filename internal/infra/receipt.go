package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the plain-text sale artifact: header with sale id and
// timestamp, a divider, one line per item, a divider, then gross total,
// discount applied, and final total.
type Receipt struct {
	SaleID    uint
	CreatedAt time.Time
	Lines     []ReceiptLine
	Gross     decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
}

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

const receiptDivider = "----------------------------------------"

// Text renders the receipt in its canonical plain-text form.
func (r Receipt) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SALE RECEIPT #%d\n", r.SaleID)
	fmt.Fprintf(&b, "Date: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(receiptDivider + "\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%s x%d  $%s  Sub: $%s\n",
			line.Name, line.Quantity, line.UnitPrice.StringFixed(2), line.Subtotal.StringFixed(2))
	}
	b.WriteString(receiptDivider + "\n")
	fmt.Fprintf(&b, "Gross total: $%s\n", r.Gross.StringFixed(2))
	fmt.Fprintf(&b, "Discount applied: $%s\n", r.Discount.StringFixed(2))
	fmt.Fprintf(&b, "Final total: $%s", r.Total.StringFixed(2))
	return b.String()
}

// ReceiptWriter persists receipts under a storage directory, named by
// sale id. When pdf is enabled it writes a ticket PDF next to the text
// file.
type ReceiptWriter struct {
	dir string
	pdf bool
}

func NewReceiptWriter(dir string, pdf bool) *ReceiptWriter {
	return &ReceiptWriter{dir: dir, pdf: pdf}
}

// Save writes the text receipt (and optionally the PDF ticket) and
// returns the text file's path.
func (w *ReceiptWriter) Save(r Receipt) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("receipt: create storage dir: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("receipt_sale_%d.txt", r.SaleID))
	if err := os.WriteFile(path, []byte(r.Text()+"\n"), 0644); err != nil {
		return "", fmt.Errorf("receipt: write file: %w", err)
	}
	if w.pdf {
		if _, err := GenerateTicketPDF(r, w.dir); err != nil {
			return "", err
		}
	}
	return path, nil
}
