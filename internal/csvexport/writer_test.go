package csvexport_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rapidbill/internal/csvexport"
	"rapidbill/internal/domain"
)

func sampleInvoice() domain.Invoice {
	return domain.Invoice{
		InvoiceNumber:  "INV-fy2025-0042",
		CustomerName:   "Sharma Traders",
		CustomerState:  "Delhi",
		InvoiceDate:    time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
		TaxType:        domain.TaxIntraState,
		Status:         domain.StatusPartial,
		Subtotal:       1200,
		TotalCGST:      95,
		TotalSGST:      95,
		DiscountAmount: 0,
		RoundUpAmount:  10,
		Total:          1400,
		AmountReceived: 1000,
		BalanceDue:     400,
		CreatedAt:      time.Date(2025, 8, 14, 11, 30, 0, 0, time.UTC),
	}
}

func TestWriter_HeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInvoices([]domain.Invoice{sampleInvoice()}))
	w.Flush()
	require.NoError(t, w.Error())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "Invoice Number,Invoice Date,Customer"))
	assert.Equal(t,
		"INV-fy2025-0042,2025-08-14,Sharma Traders,Delhi,INTRA_STATE,PARTIAL,"+
			"1200.00,95.00,95.00,0.00,0.00,10.00,1400.00,1000.00,400.00,no,2025-08-14 11:30:00",
		lines[1])
}

func TestWriter_CreditNoteFlag(t *testing.T) {
	inv := sampleInvoice()
	inv.IsCreditNote = true

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{inv}))
	w.Flush()

	assert.Contains(t, buf.String(), ",yes,")
}

func TestWriter_FieldWithCommaIsQuoted(t *testing.T) {
	inv := sampleInvoice()
	inv.CustomerName = "Sharma, Sons & Co"

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteInvoices([]domain.Invoice{inv}))
	w.Flush()

	assert.Contains(t, buf.String(), `"Sharma, Sons & Co"`)
}

func TestBOM(t *testing.T) {
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, csvexport.BOM)
}
