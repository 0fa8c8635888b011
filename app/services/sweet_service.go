package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"gorm.io/gorm"
)

// UpdateSweetInput carries the optional fields of a partial update.
// Nil pointers leave the stored value untouched.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
	Unit     *string
}

// SweetService is the catalogue: create/read/update/delete/search.
type SweetService struct {
	sweets *repositories.SweetRepository
}

func NewSweetService(sweets *repositories.SweetRepository) *SweetService {
	return &SweetService{sweets: sweets}
}

// Create persists a new sweet with trimmed name/category.
func (s *SweetService) Create(name, category string, price float64, quantity int, unit string) (models.Sweet, error) {
	if price < 0 {
		return models.Sweet{}, apperr.New(apperr.Validation, "Price must be greater than or equal to 0")
	}
	if quantity < 0 {
		return models.Sweet{}, apperr.New(apperr.Validation, "Quantity must be greater than or equal to 0")
	}

	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" || category == "" {
		return models.Sweet{}, apperr.New(apperr.Validation, "Name and category cannot be empty")
	}

	if unit = strings.TrimSpace(unit); unit == "" {
		unit = models.DefaultUnit
	}

	sweet := models.Sweet{
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
		Unit:     unit,
	}
	if err := s.sweets.Create(&sweet); err != nil {
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to create sweet", err)
	}

	return sweet, nil
}

// List returns all sweets, newest-created-first.
func (s *SweetService) List() ([]models.Sweet, error) {
	sweets, err := s.sweets.All()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch sweets", err)
	}
	return sweets, nil
}

// Search filters the catalogue; unspecified filters are no-ops.
func (s *SweetService) Search(f repositories.SweetFilter) ([]models.Sweet, error) {
	sweets, err := s.sweets.Search(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to search sweets", err)
	}
	return sweets, nil
}

// Update merges the supplied fields into an existing sweet.
func (s *SweetService) Update(id uint, in UpdateSweetInput) (models.Sweet, error) {
	if in.Price != nil && *in.Price < 0 {
		return models.Sweet{}, apperr.New(apperr.Validation, "Price must be greater than or equal to 0")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return models.Sweet{}, apperr.New(apperr.Validation, "Quantity must be greater than or equal to 0")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return models.Sweet{}, apperr.New(apperr.Validation, "Name cannot be empty")
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return models.Sweet{}, apperr.New(apperr.Validation, "Category cannot be empty")
	}

	sweet, err := s.sweets.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sweet{}, apperr.New(apperr.NotFound, "Sweet not found")
		}
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to update sweet", err)
	}

	if in.Name != nil {
		sweet.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		sweet.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		sweet.Price = *in.Price
	}
	if in.Quantity != nil {
		sweet.Quantity = *in.Quantity
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) != "" {
		sweet.Unit = strings.TrimSpace(*in.Unit)
	}
	sweet.UpdatedAt = time.Now()

	if err := s.sweets.Save(&sweet); err != nil {
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to update sweet", err)
	}

	return sweet, nil
}

// Delete hard-deletes a sweet. Existing cart lines and orders keep
// their snapshots.
func (s *SweetService) Delete(id uint) error {
	err := s.sweets.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "Sweet not found")
		}
		return apperr.Wrap(apperr.Internal, "Failed to delete sweet", err)
	}
	return nil
}
