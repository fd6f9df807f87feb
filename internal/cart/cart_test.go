package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ergoshop/internal/store"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(store.NewMemoryStore())
}

func TestAddItemMergesByName(t *testing.T) {
	ledger := newTestLedger(t)

	require.NoError(t, ledger.AddItem("Logitech Mouse", 25, "assets/mouse1.png"))
	require.NoError(t, ledger.AddItem("Perixx Keyboard", 80, "assets/keyboard1.png"))
	require.NoError(t, ledger.AddItem("Logitech Mouse", 25, "assets/mouse1.png"))

	lines, err := ledger.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Logitech Mouse", lines[0].Name)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, 1, lines[1].Qty)

	count, err := ledger.ItemCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	ledger := newTestLedger(t)
	require.NoError(t, ledger.AddItem("Logitech Mouse", 25, ""))

	require.NoError(t, ledger.SetQuantity(0, 0))
	lines, err := ledger.Lines()
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)

	require.NoError(t, ledger.SetQuantity(0, -5))
	lines, err = ledger.Lines()
	require.NoError(t, err)
	assert.Equal(t, 1, lines[0].Qty)

	require.NoError(t, ledger.SetQuantity(0, 7))
	lines, err = ledger.Lines()
	require.NoError(t, err)
	assert.Equal(t, 7, lines[0].Qty)
}

func TestSetQuantityOutOfRange(t *testing.T) {
	ledger := newTestLedger(t)
	require.NoError(t, ledger.AddItem("Logitech Mouse", 25, ""))

	assert.ErrorIs(t, ledger.SetQuantity(1, 2), ErrIndexOutOfRange)
	assert.ErrorIs(t, ledger.SetQuantity(-1, 2), ErrIndexOutOfRange)
}

func TestRemoveLine(t *testing.T) {
	ledger := newTestLedger(t)
	require.NoError(t, ledger.AddItem("A", 10, ""))
	require.NoError(t, ledger.AddItem("B", 20, ""))
	require.NoError(t, ledger.AddItem("C", 30, ""))

	require.NoError(t, ledger.RemoveLine(1))

	lines, err := ledger.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Name)
	assert.Equal(t, "C", lines[1].Name)
}

func TestRemoveLineOutOfRange(t *testing.T) {
	ledger := newTestLedger(t)
	require.NoError(t, ledger.AddItem("A", 10, ""))

	assert.ErrorIs(t, ledger.RemoveLine(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, ledger.RemoveLine(-1), ErrIndexOutOfRange)

	// The failed removal must not have touched the ledger.
	lines, err := ledger.Lines()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestClear(t *testing.T) {
	ledger := newTestLedger(t)
	require.NoError(t, ledger.AddItem("A", 10, ""))
	require.NoError(t, ledger.AddItem("B", 20, ""))

	require.NoError(t, ledger.Clear())

	lines, err := ledger.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)

	count, err := ledger.ItemCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}
