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

func newSweetService(t *testing.T) (*services.SweetService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewSweetService(repositories.NewSweetRepository(db)), db
}

func TestCreateTrimsNameAndCategory(t *testing.T) {
	svc, _ := newSweetService(t)

	sweet, err := svc.Create("  Kaju Katli  ", " Dry Fruit ", 550, 40, "")
	require.NoError(t, err)
	assert.Equal(t, "Kaju Katli", sweet.Name)
	assert.Equal(t, "Dry Fruit", sweet.Category)
	assert.Equal(t, models.DefaultUnit, sweet.Unit)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newSweetService(t)

	cases := []struct {
		name     string
		sweet    string
		category string
		price    float64
		quantity int
		message  string
	}{
		{"negative price", "A", "B", -1, 1, "Price must be greater than or equal to 0"},
		{"negative quantity", "A", "B", 1, -1, "Quantity must be greater than or equal to 0"},
		{"blank name", "   ", "B", 1, 1, "Name and category cannot be empty"},
		{"blank category", "A", "   ", 1, 1, "Name and category cannot be empty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.sweet, tc.category, tc.price, tc.quantity, "")
			require.Error(t, err)
			assert.Equal(t, apperr.Validation, apperr.KindOf(err))
			assert.Equal(t, tc.message, apperr.Message(err))
		})
	}
}

func TestSearchFilters(t *testing.T) {
	svc, db := newSweetService(t)
	seedSweet(t, db, "Kaju Katli", 550, 40)
	seedSweet(t, db, "Gulab Jamun", 220, 60)
	seedSweet(t, db, "Besan Ladoo", 320, 35)

	// Case-insensitive substring on name.
	found, err := svc.Search(repositories.SweetFilter{Name: "kaju"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Kaju Katli", found[0].Name)

	// Inclusive price range.
	min, max := 220.0, 320.0
	found, err = svc.Search(repositories.SweetFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Empty filter matches everything.
	found, err = svc.Search(repositories.SweetFilter{})
	require.NoError(t, err)
	assert.Len(t, found, 3)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	svc, db := newSweetService(t)
	sweet := seedSweet(t, db, "Original", 100, 10)

	price := 150.0
	updated, err := svc.Update(sweet.ID, services.UpdateSweetInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Original", updated.Name)
	assert.Equal(t, 10, updated.Quantity)

	blank := "   "
	_, err = svc.Update(sweet.ID, services.UpdateSweetInput{Name: &blank})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Equal(t, "Name cannot be empty", apperr.Message(err))

	negative := -5.0
	_, err = svc.Update(sweet.ID, services.UpdateSweetInput{Price: &negative})
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = svc.Update(9999, services.UpdateSweetInput{Price: &price})
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, "Sweet not found", apperr.Message(err))
}

func TestDeleteIsHard(t *testing.T) {
	svc, db := newSweetService(t)
	sweet := seedSweet(t, db, "Doomed", 100, 10)

	require.NoError(t, svc.Delete(sweet.ID))

	var count int64
	db.Unscoped().Model(&models.Sweet{}).Where("id = ?", sweet.ID).Count(&count)
	assert.Zero(t, count)

	err := svc.Delete(sweet.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
