package billing

import (
	"strconv"
	"strings"

	"rapidbill/internal/domain"
)

// User-facing entry errors. These are short strings shown next to the keypad,
// not Go errors: referential failures are the only ones ever surfaced, and
// the session keeps going.
const (
	ErrMsgItemNotFound  = "Item ID not found"
	ErrMsgItemNotInList = "Item not in list"
)

// ApplySmartEntry parses one committed keypad command and applies it to the
// cart, returning the resulting cart and an error message ("" on success).
// The input cart is never mutated.
//
// Command forms:
//
//	P100        add one of P100
//	P100*3      add three (3*P100 also works; the id may sit on either
//	            side of the '*')
//	P100*3-50   add three with a flat 50 discount
//	-P100       remove one
//	-P100*5     remove five
//
// Malformed quantities fall back to 1 and malformed discounts to 0, silently;
// only an unresolvable id or a removal of an absent line produce an error.
// Tax recomputation for touched lines is delegated to ComputeLine.
func ApplySmartEntry(buffer string, cart Cart, catalog Catalog, lookup PriceLookup, taxType domain.TaxType, gstEnabled bool) (Cart, string) {
	remove := false
	input := buffer
	discountValue := 0.0

	if strings.HasPrefix(buffer, "-") {
		remove = true
		input = buffer[1:]
	} else if strings.Contains(buffer, "-") {
		// A single embedded '-' marks a flat discount suffix: "1001-50".
		parts := strings.Split(buffer, "-")
		if len(parts) == 2 {
			input = parts[0]
			discountValue = numberOr(parts[1], 0)
		}
	}

	product, quantity := resolveProduct(input, catalog)
	if product == nil {
		return cart, ErrMsgItemNotFound
	}

	next := make(Cart, len(cart))
	copy(next, cart)

	existing := -1
	for i := range next {
		if next[i].ProductID == product.ID {
			existing = i
			break
		}
	}

	if remove {
		if existing < 0 {
			return cart, ErrMsgItemNotInList
		}
		remaining := next[existing].Quantity - quantity
		if remaining <= 0 {
			next = append(next[:existing], next[existing+1:]...)
			return next, ""
		}
		next[existing].Quantity = remaining
		ComputeLine(&next[existing], taxType, gstEnabled)
		return next, ""
	}

	if existing >= 0 {
		next[existing].Quantity += quantity
		if discountValue > 0 {
			next[existing].Discount = Discount{Type: domain.DiscountAmount, Value: discountValue}
		}
		ComputeLine(&next[existing], taxType, gstEnabled)
		return next, ""
	}

	rate := product.Price
	if lookup != nil {
		if last := lookup(product.ID); last != nil {
			rate = *last
		}
	}
	line := LineItem{
		ProductID:   product.ID,
		Description: product.Name,
		Quantity:    quantity,
		UnitRate:    rate,
		Discount:    Discount{Type: domain.DiscountAmount, Value: discountValue},
		HSN:         product.HSN,
		GSTRate:     product.GSTRate,
	}
	ComputeLine(&line, taxType, gstEnabled)
	return append(next, line), ""
}

// resolveProduct splits the command on '*' and resolves the id segment.
// With two segments the id is tried on both sides, because operators type
// quantity-first as often as id-first.
func resolveProduct(input string, catalog Catalog) (*CatalogProduct, float64) {
	parts := strings.Split(input, "*")
	switch len(parts) {
	case 1:
		p, ok := catalog.FindByID(parts[0])
		if !ok {
			return nil, 0
		}
		return p, 1
	case 2:
		if p, ok := catalog.FindByID(parts[0]); ok {
			return p, numberOr(parts[1], 1)
		}
		if p, ok := catalog.FindByID(parts[1]); ok {
			return p, numberOr(parts[0], 1)
		}
	}
	return nil, 0
}

// numberOr parses s as a number, substituting def when the text is not
// numeric or parses to zero.
func numberOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return def
	}
	return v
}

// FeedSmartEntry advances the keypad buffer by one keystroke. It returns the
// new buffer and, when the keystroke commits a command, the command text to
// hand to ApplySmartEntry (empty otherwise). Any pending error message should
// be cleared by the caller on every keystroke.
//
//	C   clears the buffer
//	+   commits the buffer as an add
//	*   appends the multiplier separator; a second '*' is ignored
//	-   with a buffer present, commits the buffer as a removal;
//	    otherwise starts a removal (or negative entry) buffer
//
// every other character is appended.
func FeedSmartEntry(buffer string, ch rune) (newBuffer, commit string) {
	switch ch {
	case 'C':
		return "", ""
	case '+':
		if buffer != "" {
			return "", buffer
		}
		return buffer, ""
	case '*':
		if strings.ContainsRune(buffer, '*') {
			return buffer, ""
		}
		return buffer + "*", ""
	case '-':
		if buffer != "" && buffer != "-" {
			if strings.HasPrefix(buffer, "-") {
				return "", buffer
			}
			return "", "-" + buffer
		}
		return buffer + "-", ""
	default:
		return buffer + string(ch), ""
	}
}
