package models

// CartLine is one entry in the cart ledger. The product name is the line's
// identity: adding the same name again bumps the quantity instead of
// appending a second line.
type CartLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Image string  `json:"img,omitempty"`
}
