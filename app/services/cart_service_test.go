package services_test

import (
	"testing"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/app/services"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*services.CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewSweetRepository(db),
	), db
}

func TestAddItemSnapshotsSweet(t *testing.T) {
	svc, db := newCartService(t)
	sweet := seedSweet(t, db, "Gulab Jamun", 220, 50)

	item, merged, err := svc.AddItem(1, sweet.ID, 2)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, sweet.Name, item.SweetName)
	assert.Equal(t, sweet.Price, item.Price)
	assert.Equal(t, sweet.Unit, item.Unit)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	svc, db := newCartService(t)
	sweet := seedSweet(t, db, "Rasgulla", 200, 50)

	first, _, err := svc.AddItem(1, sweet.ID, 2)
	require.NoError(t, err)

	second, merged, err := svc.AddItem(1, sweet.ID, 3)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddItemKeepsOriginalSnapshotOnMerge(t *testing.T) {
	svc, db := newCartService(t)
	sweet := seedSweet(t, db, "Jalebi", 160, 50)

	_, _, err := svc.AddItem(1, sweet.ID, 1)
	require.NoError(t, err)

	// Price change between adds must not refresh the snapshot.
	require.NoError(t, db.Model(&models.Sweet{}).Where("id = ?", sweet.ID).Update("price", 999).Error)

	item, merged, err := svc.AddItem(1, sweet.ID, 1)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 160.0, item.Price)
}

func TestAddItemStockChecks(t *testing.T) {
	svc, db := newCartService(t)
	soldOut := seedSweet(t, db, "Sold Out", 100, 0)
	low := seedSweet(t, db, "Low", 100, 2)

	_, _, err := svc.AddItem(1, low.ID, 0)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, _, err = svc.AddItem(1, 9999, 1)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	// Cart add has no separate sell-out error class: a zero-stock sweet
	// fails the same shortfall check as a partially stocked one.
	_, _, err = svc.AddItem(1, soldOut.ID, 1)
	assert.Equal(t, apperr.InsufficientStock, apperr.KindOf(err))
	assert.Equal(t, "Insufficient quantity available", apperr.Message(err))

	_, _, err = svc.AddItem(1, low.ID, 3)
	assert.Equal(t, apperr.InsufficientStock, apperr.KindOf(err))
	assert.Equal(t, "Insufficient quantity available", apperr.Message(err))
}

func TestListComputesFreshTotal(t *testing.T) {
	svc, db := newCartService(t)
	a := seedSweet(t, db, "A", 100, 50)
	b := seedSweet(t, db, "B", 250, 50)

	_, _, err := svc.AddItem(1, a.ID, 2)
	require.NoError(t, err)
	_, _, err = svc.AddItem(1, b.ID, 1)
	require.NoError(t, err)

	lines, total, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 450.0, total)

	for _, line := range lines {
		assert.Equal(t, line.Price*float64(line.Quantity), line.Subtotal)
	}
}

func TestUpdateItemOwnerScoped(t *testing.T) {
	svc, db := newCartService(t)
	sweet := seedSweet(t, db, "Owned", 100, 50)

	item, _, err := svc.AddItem(1, sweet.ID, 1)
	require.NoError(t, err)

	// Another user cannot see the line.
	_, err = svc.UpdateItem(2, item.ID, 5)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Cart item not found", apperr.Message(err))

	// The owner overwrites the quantity; stock is not re-checked.
	updated, err := svc.UpdateItem(1, item.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Quantity)

	_, err = svc.UpdateItem(1, item.ID, 0)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestRemoveItemOwnerScoped(t *testing.T) {
	svc, db := newCartService(t)
	sweet := seedSweet(t, db, "Removable", 100, 50)

	item, _, err := svc.AddItem(1, sweet.ID, 1)
	require.NoError(t, err)

	err = svc.RemoveItem(2, item.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	require.NoError(t, svc.RemoveItem(1, item.ID))
	err = svc.RemoveItem(1, item.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestClearIsIdempotent(t *testing.T) {
	svc, db := newCartService(t)
	sweet := seedSweet(t, db, "Clearable", 100, 50)

	_, _, err := svc.AddItem(1, sweet.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(1))
	require.NoError(t, svc.Clear(1)) // empty cart clears fine

	lines, total, err := svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, total)
}
