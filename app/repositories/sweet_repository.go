package repositories

import (
	"strings"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"gorm.io/gorm"
)

// SweetFilter is the optional search criteria for the catalogue.
// Nil pointer fields are no-ops.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetRepository handles database operations for Sweet.
type SweetRepository struct {
	db *gorm.DB
}

func NewSweetRepository(db *gorm.DB) *SweetRepository {
	return &SweetRepository{db: db}
}

// Create persists a new sweet.
func (r *SweetRepository) Create(sweet *models.Sweet) error {
	return r.db.Create(sweet).Error
}

// FindByID looks up a sweet by primary key.
func (r *SweetRepository) FindByID(id uint) (models.Sweet, error) {
	var sweet models.Sweet
	err := r.db.First(&sweet, id).Error
	return sweet, err
}

// All returns every sweet, newest-created-first.
func (r *SweetRepository) All() ([]models.Sweet, error) {
	var sweets []models.Sweet
	err := r.db.Order("created_at DESC, id DESC").Find(&sweets).Error
	return sweets, err
}

// Search filters the catalogue: case-insensitive substring match on
// name/category, inclusive price range. Newest-created-first.
func (r *SweetRepository) Search(f SweetFilter) ([]models.Sweet, error) {
	q := r.db.Model(&models.Sweet{})

	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(f.Category)+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var sweets []models.Sweet
	err := q.Order("created_at DESC, id DESC").Find(&sweets).Error
	return sweets, err
}

// Save persists changes to an existing sweet.
func (r *SweetRepository) Save(sweet *models.Sweet) error {
	return r.db.Save(sweet).Error
}

// Delete hard-deletes a sweet. Returns gorm.ErrRecordNotFound when no
// row matched.
func (r *SweetRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Sweet{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
