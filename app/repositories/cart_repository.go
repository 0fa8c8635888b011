package repositories

import (
	"github.com/shashiranjanraj/sweetshop/app/models"
	"gorm.io/gorm"
)

// CartRepository handles database operations for CartItem. Every lookup
// is scoped to the owning user.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// FindByUserAndSweet returns the user's existing line for a sweet, if any.
func (r *CartRepository) FindByUserAndSweet(userID, sweetID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND sweet_id = ?", userID, sweetID).First(&item).Error
	return item, err
}

// FindForUser returns a line by id only when it belongs to userID.
func (r *CartRepository) FindForUser(userID, itemID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	return item, err
}

// ListForUser returns all of a user's lines, newest-created-first.
func (r *CartRepository) ListForUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// Create persists a new cart line.
func (r *CartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// Save persists changes to an existing cart line.
func (r *CartRepository) Save(item *models.CartItem) error {
	return r.db.Save(item).Error
}

// DeleteForUser removes one line owned by userID. Returns
// gorm.ErrRecordNotFound when no owned row matched.
func (r *CartRepository) DeleteForUser(userID, itemID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearForUser removes every line owned by userID. A no-op on an
// already-empty cart.
func (r *CartRepository) ClearForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
