package billing

import (
	"math"

	"rapidbill/internal/domain"
)

// JurisdictionFor derives the tax mode from the supplier and customer states.
// Comparison is case-sensitive string equality with no normalization; an
// empty supplier state falls back to the configured default.
func JurisdictionFor(supplierState, customerState, fallbackState string) domain.TaxType {
	if supplierState == "" {
		supplierState = fallbackState
	}
	if supplierState == customerState {
		return domain.TaxIntraState
	}
	return domain.TaxInterState
}

// ApplyItemDiscount computes the post-discount taxable base for a line.
// The discount applies before tax and the base is clamped at zero.
func ApplyItemDiscount(quantity, unitRate float64, d Discount) (baseAmount, discountAmount float64) {
	raw := quantity * unitRate
	if d.Value > 0 {
		if d.Type == domain.DiscountPercentage {
			discountAmount = raw * d.Value / 100
		} else {
			discountAmount = d.Value
		}
	}
	baseAmount = raw - discountAmount
	if baseAmount < 0 {
		baseAmount = 0
	}
	return baseAmount, discountAmount
}

// ComputeLineTax splits GST on a taxable base. Intra-state charges CGST and
// SGST at half the rate each; inter-state charges IGST at the full rate. The
// two modes are mutually exclusive.
func ComputeLineTax(baseAmount, gstRate float64, taxType domain.TaxType) (cgst, sgst, igst float64) {
	if taxType == domain.TaxIntraState {
		cgst = baseAmount * (gstRate / 2) / 100
		sgst = baseAmount * (gstRate / 2) / 100
		return cgst, sgst, 0
	}
	return 0, 0, baseAmount * gstRate / 100
}

// ComputeLine re-derives every computed field of a line from its inputs.
// With GST disabled the line total is just the discounted base.
func ComputeLine(li *LineItem, taxType domain.TaxType, gstEnabled bool) {
	li.BaseAmount, li.DiscountAmount = ApplyItemDiscount(li.Quantity, li.UnitRate, li.Discount)
	if !gstEnabled {
		li.CGSTAmount, li.SGSTAmount, li.IGSTAmount = 0, 0, 0
		li.TotalAmount = li.BaseAmount
		return
	}
	li.CGSTAmount, li.SGSTAmount, li.IGSTAmount = ComputeLineTax(li.BaseAmount, li.GSTRate, taxType)
	li.TotalAmount = li.BaseAmount + li.CGSTAmount + li.SGSTAmount + li.IGSTAmount
}

// ComputeBill derives bill totals from the cart's already-computed lines.
// Ghost rows are skipped. A PERCENTAGE bill discount is taken against the
// subtotal only, not the tax-inclusive amount. The net total is clamped at
// zero before rounding, and rounding is always a ceiling to the next multiple
// so the merchant never under-collects.
func ComputeBill(cart Cart, billDiscount Discount, policy RoundingPolicy) Totals {
	var t Totals
	for i := range cart {
		if cart[i].Ghost() {
			continue
		}
		t.Subtotal += cart[i].BaseAmount
		t.TotalCGST += cart[i].CGSTAmount
		t.TotalSGST += cart[i].SGSTAmount
		t.TotalIGST += cart[i].IGSTAmount
	}

	if billDiscount.Value > 0 {
		if billDiscount.Type == domain.DiscountPercentage {
			t.DiscountAmount = t.Subtotal * billDiscount.Value / 100
		} else {
			t.DiscountAmount = billDiscount.Value
		}
	}

	net := t.Subtotal + t.TotalCGST + t.TotalSGST + t.TotalIGST - t.DiscountAmount
	if net < 0 {
		net = 0
	}

	if policy.RoundUpTo > 0 {
		step := float64(policy.RoundUpTo)
		rounded := math.Ceil(net/step) * step
		t.RoundUpAmount = rounded - net
		t.Total = rounded
	} else {
		t.Total = net
	}
	return t
}

// Round2 rounds a monetary amount to two decimals. Applied only at the
// persistence boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
