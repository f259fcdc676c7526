package ledger

import (
	"testing"

	"github.com/feohuman/squishcart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumItems(items []*models.BasketItem) (qty int, total float64) {
	for _, it := range items {
		qty += it.Quantity
		total += it.TotalPrice
	}
	return qty, total
}

func TestApplyAddMovesStockIntoBasket(t *testing.T) {
	product := &models.Product{Name: "Milk", Price: 2.5, Stock: 10}
	basket := &models.Basket{}
	item := &models.BasketItem{}

	require.NoError(t, applyAdd(product, basket, item, 4))

	assert.Equal(t, 6, product.Stock)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, 10.0, item.TotalPrice)
	assert.Equal(t, 4, basket.Quantity)
	assert.Equal(t, 10.0, basket.TotalPrice)
}

func TestApplyAddInsufficientStockLeavesStateUntouched(t *testing.T) {
	product := &models.Product{Name: "Milk", Price: 2.5, Stock: 3}
	basket := &models.Basket{Quantity: 1, TotalPrice: 2.5}
	item := &models.BasketItem{Quantity: 1, TotalPrice: 2.5}

	err := applyAdd(product, basket, item, 4)
	require.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 3, product.Stock)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 1, basket.Quantity)
	assert.Equal(t, 2.5, basket.TotalPrice)
}

func TestApplyAddRejectsNonPositiveQuantity(t *testing.T) {
	product := &models.Product{Price: 1, Stock: 5}
	for _, qty := range []int{0, -2} {
		err := applyAdd(product, &models.Basket{}, &models.BasketItem{}, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 5, product.Stock)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	product := &models.Product{Name: "Eggs", Price: 0.3, Stock: 12}
	basket := &models.Basket{}
	item := &models.BasketItem{}

	require.NoError(t, applyAdd(product, basket, item, 6))
	require.NoError(t, applyRemove(product, basket, item, 6))

	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, 0, item.Quantity)
	assert.InDelta(t, 0, item.TotalPrice, 1e-9)
	assert.Equal(t, 0, basket.Quantity)
	assert.InDelta(t, 0, basket.TotalPrice, 1e-9)
}

func TestApplyRemoveRejectsExcessQuantity(t *testing.T) {
	product := &models.Product{Name: "Eggs", Price: 0.3, Stock: 6}
	basket := &models.Basket{Quantity: 2, TotalPrice: 0.6}
	item := &models.BasketItem{Quantity: 2, TotalPrice: 0.6}

	err := applyRemove(product, basket, item, 3)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Equal(t, 6, product.Stock)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 2, basket.Quantity)
}

func TestApplyDeleteRestoresFullLine(t *testing.T) {
	product := &models.Product{Name: "Butter", Price: 4, Stock: 1}
	basket := &models.Basket{Quantity: 5, TotalPrice: 23}
	item := &models.BasketItem{Quantity: 3, TotalPrice: 12}

	applyDelete(product, basket, item)

	assert.Equal(t, 4, product.Stock)
	assert.Equal(t, 2, basket.Quantity)
	assert.InDelta(t, 11, basket.TotalPrice, 1e-9)
	assert.Equal(t, 0, item.Quantity)
}

// Basket totals must equal the sum over its lines after any sequence of
// add/remove operations.
func TestBasketTotalsStayConsistentAcrossSequences(t *testing.T) {
	milk := &models.Product{Name: "Milk", Price: 2.5, Stock: 20}
	bread := &models.Product{Name: "Bread", Price: 1.2, Stock: 20}
	basket := &models.Basket{}
	milkLine := &models.BasketItem{}
	breadLine := &models.BasketItem{}

	ops := []struct {
		product *models.Product
		line    *models.BasketItem
		qty     int
		remove  bool
	}{
		{milk, milkLine, 3, false},
		{bread, breadLine, 5, false},
		{milk, milkLine, 1, true},
		{milk, milkLine, 2, false},
		{bread, breadLine, 5, true},
		{milk, milkLine, 4, true},
	}

	for i, op := range ops {
		var err error
		if op.remove {
			err = applyRemove(op.product, basket, op.line, op.qty)
		} else {
			err = applyAdd(op.product, basket, op.line, op.qty)
		}
		require.NoError(t, err, "op %d", i)

		qty, total := sumItems([]*models.BasketItem{milkLine, breadLine})
		assert.Equal(t, qty, basket.Quantity, "op %d", i)
		assert.InDelta(t, total, basket.TotalPrice, 1e-9, "op %d", i)
		assert.GreaterOrEqual(t, milk.Stock, 0, "op %d", i)
		assert.GreaterOrEqual(t, bread.Stock, 0, "op %d", i)
	}
}

func TestApplyAddExistingLineAccumulates(t *testing.T) {
	product := &models.Product{Name: "Milk", Price: 2, Stock: 10}
	basket := &models.Basket{}
	item := &models.BasketItem{}

	require.NoError(t, applyAdd(product, basket, item, 2))
	require.NoError(t, applyAdd(product, basket, item, 3))

	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 10.0, item.TotalPrice)
	assert.Equal(t, 5, basket.Quantity)
	assert.Equal(t, 5, product.Stock)
}
