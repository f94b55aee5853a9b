package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rapidbill/internal/billing"
	"rapidbill/internal/domain"
)

// --- ResolvePayment ---

func TestResolvePayment_FullPayment(t *testing.T) {
	status, due := billing.ResolvePayment(1000, 1000)
	assert.Equal(t, domain.StatusPaid, status)
	assert.Equal(t, 0.0, due)
}

func TestResolvePayment_Overpayment(t *testing.T) {
	status, due := billing.ResolvePayment(1000, 1200)
	assert.Equal(t, domain.StatusPaid, status)
	assert.Equal(t, 0.0, due)
}

func TestResolvePayment_Partial(t *testing.T) {
	status, due := billing.ResolvePayment(1000, 400)
	assert.Equal(t, domain.StatusPartial, status)
	assert.Equal(t, 600.0, due)
}

func TestResolvePayment_NothingReceived(t *testing.T) {
	status, due := billing.ResolvePayment(1000, 0)
	assert.Equal(t, domain.StatusPending, status)
	assert.Equal(t, 1000.0, due)
}

func TestResolvePayment_ZeroTotalZeroReceived(t *testing.T) {
	// The full-payment check runs first, so a zero invoice is PAID, not
	// PENDING.
	status, due := billing.ResolvePayment(0, 0)
	assert.Equal(t, domain.StatusPaid, status)
	assert.Equal(t, 0.0, due)
}

func TestResolvePayment_EveryTotalGetsExactlyOneStatus(t *testing.T) {
	for _, received := range []float64{0, 0.01, 500, 999.99, 1000, 1500} {
		status, _ := billing.ResolvePayment(1000, received)
		switch {
		case received >= 1000:
			assert.Equal(t, domain.StatusPaid, status, "received %v", received)
		case received > 0:
			assert.Equal(t, domain.StatusPartial, status, "received %v", received)
		default:
			assert.Equal(t, domain.StatusPending, status, "received %v", received)
		}
	}
}

// --- CashSale ---

func TestCashSale_AlwaysPaidInFull(t *testing.T) {
	status, received, due := billing.CashSale(1390)
	assert.Equal(t, domain.StatusPaid, status)
	assert.Equal(t, 1390.0, received)
	assert.Equal(t, 0.0, due)
}

func TestCashSale_ZeroTotal(t *testing.T) {
	status, received, due := billing.CashSale(0)
	assert.Equal(t, domain.StatusPaid, status)
	assert.Equal(t, 0.0, received)
	assert.Equal(t, 0.0, due)
}
