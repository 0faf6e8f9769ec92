package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddIncrementsExisting(t *testing.T) {
	c := New(NewMemoryStore())

	require.NoError(t, c.Add(1, "Tomatoes", decimal.NewFromFloat(3.50)))
	require.NoError(t, c.Add(1, "Tomatoes", decimal.NewFromFloat(3.50)))
	require.NoError(t, c.Add(2, "Eggs", decimal.NewFromFloat(6.00)))

	items, err := c.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(2), items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New(NewMemoryStore())
	require.NoError(t, c.Add(1, "Tomatoes", decimal.NewFromFloat(3.50)))

	require.NoError(t, c.UpdateQuantity(1, 4))
	items, err := c.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	// zero removes the line
	require.NoError(t, c.UpdateQuantity(1, 0))
	items, err = c.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	// absent product is a no-op
	require.NoError(t, c.UpdateQuantity(99, 3))
	items, err = c.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCart_TotalsUnderThreshold(t *testing.T) {
	c := New(NewMemoryStore())
	require.NoError(t, c.Add(1, "Tomatoes", decimal.NewFromFloat(10.00)))
	require.NoError(t, c.Add(1, "Tomatoes", decimal.NewFromFloat(10.00)))

	totals, err := c.Totals()
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(20)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Shipping.Equal(decimal.NewFromInt(5)), "shipping %s", totals.Shipping)
	// 8% of 25.00
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(2)), "tax %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(27)), "total %s", totals.Total)
}

func TestCart_TotalsFreeShipping(t *testing.T) {
	c := New(NewMemoryStore())
	require.NoError(t, c.Add(1, "Honey", decimal.NewFromFloat(25.00)))

	totals, err := c.Totals()
	require.NoError(t, err)

	assert.True(t, totals.Shipping.IsZero(), "shipping %s", totals.Shipping)
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(2)), "tax %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(27)), "total %s", totals.Total)
}

func TestCart_TotalsEmptyCart(t *testing.T) {
	c := New(NewMemoryStore())

	totals, err := c.Totals()
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Shipping.IsZero(), "empty cart pays no shipping")
	assert.True(t, totals.Total.IsZero())
}

func TestCart_TotalsRoundsTaxToCents(t *testing.T) {
	c := New(NewMemoryStore())
	require.NoError(t, c.Add(1, "Jam", decimal.NewFromFloat(7.77)))

	totals, err := c.Totals()
	require.NoError(t, err)

	// (7.77 + 5.00) * 0.08 = 1.0216 rounds to 1.02
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(1.02)), "tax %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(13.79)), "total %s", totals.Total)
}

func TestCart_ClearAndPersistence(t *testing.T) {
	store := NewMemoryStore()
	c := New(store)
	require.NoError(t, c.Add(1, "Tomatoes", decimal.NewFromFloat(3.50)))

	// a second cart over the same store sees the same state
	other := New(store)
	items, err := other.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, c.Clear())
	items, err = other.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}
