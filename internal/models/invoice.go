package models

import "time"

// GuestTRN tags invoices committed without an authenticated identity.
const GuestTRN = "GUEST"

// CustomerInfo captures the contact details entered at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// InvoiceLine is a cart line frozen at checkout time together with its
// computed pricing.
type InvoiceLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Image    string  `json:"img,omitempty"`
}

// Invoice is the durable record of a completed order. It is immutable once
// committed: later cart mutations never touch it.
type Invoice struct {
	InvoiceNumber string        `json:"invoiceNumber"`
	InvoiceDate   time.Time     `json:"invoiceDate"`
	TRN           string        `json:"trn"`
	Customer      CustomerInfo  `json:"customer"`
	Items         []InvoiceLine `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	TotalDiscount float64       `json:"totalDiscount"`
	TotalTax      float64       `json:"totalTax"`
	GrandTotal    float64       `json:"grandTotal"`
}
