package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omosemola/my-ecommerce-web/internal/model"
)

func tee(id int64, variant string) model.CartItem {
	return model.CartItem{ProductID: id, Name: "tee", Price: 49.00, Variant: variant}
}

func openEmpty(t *testing.T) *Cart {
	t.Helper()
	c, err := Open("sess-1", NewMemoryStore())
	require.NoError(t, err)
	return c
}

func TestAddNewLine(t *testing.T) {
	c := openEmpty(t)

	require.NoError(t, c.Add(tee(1, "M"), 2))

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 2, snap[0].Quantity)
	assert.Equal(t, 2, c.Count())
}

func TestAddMergesSameProductAndVariant(t *testing.T) {
	c := openEmpty(t)

	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Add(tee(1, "M"), 3))

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 5, snap[0].Quantity)
}

func TestAddDifferentVariantIsSeparateLine(t *testing.T) {
	c := openEmpty(t)

	require.NoError(t, c.Add(tee(1, "M"), 1))
	require.NoError(t, c.Add(tee(1, "L"), 1))

	assert.Len(t, c.Snapshot(), 2)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	c := openEmpty(t)

	var verr *model.ValidationError
	assert.ErrorAs(t, c.Add(tee(1, "M"), 0), &verr)
	assert.ErrorAs(t, c.Add(tee(1, "M"), -2), &verr)
	assert.Empty(t, c.Snapshot())
}

func TestRemoveUndoesAdd(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(2, ""), 1))
	before := c.Snapshot()

	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Remove(tee(1, "M").Key()))

	assert.Equal(t, before, c.Snapshot())
}

func TestRemoveAfterMergeRemovesWholeLine(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Add(tee(1, "M"), 3))

	require.NoError(t, c.Remove(tee(1, "M").Key()))

	assert.Empty(t, c.Snapshot())
}

func TestRemoveAbsentLineIsNoOp(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 1))

	require.NoError(t, c.Remove(model.CartKey{ProductID: 99}))

	assert.Len(t, c.Snapshot(), 1)
}

func TestSetQuantityReplaces(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 2))

	require.NoError(t, c.SetQuantity(tee(1, "M").Key(), 7))

	assert.Equal(t, 7, c.Snapshot()[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 2))

	require.NoError(t, c.SetQuantity(tee(1, "M").Key(), 0))

	assert.Empty(t, c.Snapshot())
}

func TestSetQuantityMissingLine(t *testing.T) {
	c := openEmpty(t)

	assert.ErrorIs(t, c.SetQuantity(model.CartKey{ProductID: 5}, 3), model.ErrNotFound)
}

func TestClear(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Add(tee(2, ""), 1))

	require.NoError(t, c.Clear())

	assert.Empty(t, c.Snapshot())
	assert.Zero(t, c.Count())
}

func TestSubtotal(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Add(model.CartItem{ProductID: 2, Name: "top", Price: 9.99}, 3))

	assert.Equal(t, 127.97, c.Subtotal())
}

func TestSnapshotDoesNotAliasCart(t *testing.T) {
	c := openEmpty(t)
	require.NoError(t, c.Add(tee(1, "M"), 2))

	snap := c.Snapshot()
	require.NoError(t, c.SetQuantity(tee(1, "M").Key(), 9))
	snap[0].Quantity = 1

	assert.Equal(t, 9, c.Snapshot()[0].Quantity)
}

func TestMutationsPersistThroughStore(t *testing.T) {
	store := NewMemoryStore()
	c, err := Open("sess-1", store)
	require.NoError(t, err)
	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Add(tee(2, ""), 1))
	require.NoError(t, c.Remove(tee(2, "").Key()))

	reloaded, err := Open("sess-1", store)
	require.NoError(t, err)

	assert.Equal(t, c.Snapshot(), reloaded.Snapshot())
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	a, err := Open("sess-a", store)
	require.NoError(t, err)
	b, err := Open("sess-b", store)
	require.NoError(t, err)

	require.NoError(t, a.Add(tee(1, "M"), 2))

	assert.Empty(t, b.Snapshot())
	reloaded, err := Open("sess-b", store)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Snapshot())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.json")
	store := NewFileStore(path)

	c, err := Open("sess-1", store)
	require.NoError(t, err)
	require.NoError(t, c.Add(tee(1, "M"), 2))

	reloaded, err := Open("sess-1", NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, c.Snapshot(), reloaded.Snapshot())
}

func TestFileStoreClearDropsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.json")
	store := NewFileStore(path)

	c, err := Open("sess-1", store)
	require.NoError(t, err)
	require.NoError(t, c.Add(tee(1, "M"), 2))
	require.NoError(t, c.Clear())

	items, err := store.Load("sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
