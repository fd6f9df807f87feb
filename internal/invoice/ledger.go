package invoice

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"ergoshop/internal/cart"
	"ergoshop/internal/models"
	"ergoshop/internal/store"
)

const storageKey = "Invoices"

// Ledger is the append-only record of completed orders. Invoice numbers are
// snowflake IDs: derived from commit time like the old INV-<millis> scheme,
// but the embedded sequence keeps two commits in the same millisecond from
// colliding.
type Ledger struct {
	mu    sync.Mutex
	store store.Store
	node  *snowflake.Node
	now   func() time.Time
}

func NewLedger(s store.Store) (*Ledger, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("invoice: init id node: %w", err)
	}
	return &Ledger{store: s, node: node, now: time.Now}, nil
}

// Commit prices the given cart lines, freezes them with the customer data
// into a new invoice, and appends it to the ledger. The caller has already
// validated the customer fields and a non-empty cart.
func (l *Ledger) Commit(customer models.CustomerInfo, lines []models.CartLine, trn string) (models.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if trn == "" {
		trn = models.GuestTRN
	}

	items := make([]models.InvoiceLine, 0, len(lines))
	var totals cart.LineTotals
	for _, line := range lines {
		lt := cart.PriceLine(line.Price, line.Qty)
		items = append(items, models.InvoiceLine{
			Name:     line.Name,
			Price:    line.Price,
			Qty:      line.Qty,
			Subtotal: lt.Subtotal,
			Discount: lt.Discount,
			Tax:      lt.Tax,
			Total:    lt.Total,
			Image:    line.Image,
		})
		totals.Subtotal += lt.Subtotal
		totals.Discount += lt.Discount
		totals.Tax += lt.Tax
		totals.Total += lt.Total
	}

	inv := models.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%s", l.node.Generate()),
		InvoiceDate:   l.now().UTC(),
		TRN:           trn,
		Customer:      customer,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.Discount,
		TotalTax:      totals.Tax,
		GrandTotal:    totals.Total,
	}

	invoices, err := l.all()
	if err != nil {
		return models.Invoice{}, err
	}
	invoices = append(invoices, inv)
	if err := l.store.Put(storageKey, invoices); err != nil {
		return models.Invoice{}, err
	}

	log.Printf("[INVOICE] [INFO] committed %s for %s, total %.2f", inv.InvoiceNumber, trn, inv.GrandTotal)
	return inv, nil
}

// ListFor returns the invoices tagged with the given TRN in creation order.
func (l *Ledger) ListFor(trn string) ([]models.Invoice, error) {
	invoices, err := l.All()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Invoice, 0)
	for _, inv := range invoices {
		if inv.TRN == trn {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

// All returns every invoice in creation order.
func (l *Ledger) All() ([]models.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.all()
}

func (l *Ledger) all() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if _, err := l.store.Get(storageKey, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}
