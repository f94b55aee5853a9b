// Package csvexport writes the invoice register as CSV for spreadsheet
// import.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"rapidbill/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer",
	"Customer State",
	"Tax Type",
	"Status",
	"Subtotal",
	"CGST",
	"SGST",
	"IGST",
	"Discount",
	"Round Off",
	"Total",
	"Amount Received",
	"Balance Due",
	"Credit Note",
	"Created At",
}

// Writer wraps csv.Writer for exporting the invoice register.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices writes one row per invoice.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered rows to the underlying writer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from a previous write or flush.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceRow(inv *domain.Invoice) []string {
	creditNote := "no"
	if inv.IsCreditNote {
		creditNote = "yes"
	}
	return []string{
		inv.InvoiceNumber,
		inv.InvoiceDate.Format("2006-01-02"),
		inv.CustomerName,
		inv.CustomerState,
		string(inv.TaxType),
		string(inv.Status),
		money(inv.Subtotal),
		money(inv.TotalCGST),
		money(inv.TotalSGST),
		money(inv.TotalIGST),
		money(inv.DiscountAmount),
		money(inv.RoundUpAmount),
		money(inv.Total),
		money(inv.AmountReceived),
		money(inv.BalanceDue),
		creditNote,
		inv.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
