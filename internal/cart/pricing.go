package cart

import "ergoshop/internal/models"

// Fixed storewide rates: every line gets a 10% discount, then 15% tax on the
// discounted amount.
const (
	DiscountRate = 0.10
	TaxRate      = 0.15
)

type LineTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// PriceLine computes the pricing breakdown for a unit price and quantity.
func PriceLine(price float64, qty int) LineTotals {
	subtotal := price * float64(qty)
	discount := subtotal * DiscountRate
	tax := (subtotal - discount) * TaxRate
	return LineTotals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}

// PriceCart sums each pricing component across all lines in ledger order.
func PriceCart(lines []models.CartLine) LineTotals {
	var totals LineTotals
	for _, line := range lines {
		lt := PriceLine(line.Price, line.Qty)
		totals.Subtotal += lt.Subtotal
		totals.Discount += lt.Discount
		totals.Tax += lt.Tax
		totals.Total += lt.Total
	}
	return totals
}
