package cart

import (
	"errors"
	"sync"

	"ergoshop/internal/models"
	"ergoshop/internal/store"
)

const storageKey = "cart"

// ErrIndexOutOfRange reports a cart line index that does not exist. The line
// index is positional in ledger order.
var ErrIndexOutOfRange = errors.New("cart line index out of range")

// Ledger is the shopping cart: an ordered list of lines keyed by product
// name, persisted as one snapshot per mutation.
type Ledger struct {
	mu    sync.Mutex
	store store.Store
}

func NewLedger(s store.Store) *Ledger {
	return &Ledger{store: s}
}

func (l *Ledger) Lines() ([]models.CartLine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lines()
}

// AddItem adds one unit of the named product. A line with the same name is
// merged by bumping its quantity.
func (l *Ledger) AddItem(name string, price float64, image string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.lines()
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].Name == name {
			lines[i].Qty++
			return l.store.Put(storageKey, lines)
		}
	}

	lines = append(lines, models.CartLine{Name: name, Price: price, Qty: 1, Image: image})
	return l.store.Put(storageKey, lines)
}

// SetQuantity sets a line's quantity, clamping anything below 1 up to 1. A
// line never reaches zero through an edit; removal is always explicit.
func (l *Ledger) SetQuantity(index, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.lines()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return ErrIndexOutOfRange
	}

	if qty < 1 {
		qty = 1
	}
	lines[index].Qty = qty
	return l.store.Put(storageKey, lines)
}

// RemoveLine deletes the line at the given position.
func (l *Ledger) RemoveLine(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.lines()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return ErrIndexOutOfRange
	}

	lines = append(lines[:index], lines[index+1:]...)
	return l.store.Put(storageKey, lines)
}

func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Delete(storageKey)
}

// ItemCount is the total quantity across all lines, shown on the cart badge.
func (l *Ledger) ItemCount() (int, error) {
	lines, err := l.Lines()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range lines {
		count += line.Qty
	}
	return count, nil
}

func (l *Ledger) lines() ([]models.CartLine, error) {
	var lines []models.CartLine
	if _, err := l.store.Get(storageKey, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
