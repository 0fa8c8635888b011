package services

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"gorm.io/gorm"
)

// InventoryService adjusts stock levels. Purchase and Restock both use
// a fetch-then-save cycle on the sweet row.
type InventoryService struct {
	sweets *repositories.SweetRepository
}

func NewInventoryService(sweets *repositories.SweetRepository) *InventoryService {
	return &InventoryService{sweets: sweets}
}

// Purchase decrements stock by quantity and returns the updated sweet.
// Checks run in a fixed order: the quantity itself, existence, complete
// sell-out, then partial shortfall.
func (s *InventoryService) Purchase(sweetID uint, quantity int) (models.Sweet, error) {
	if quantity <= 0 {
		return models.Sweet{}, apperr.New(apperr.Validation, "Quantity must be greater than 0")
	}

	sweet, err := s.sweets.FindByID(sweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sweet{}, apperr.New(apperr.NotFound, "Sweet not found")
		}
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to purchase sweet", err)
	}

	if sweet.Quantity == 0 {
		return models.Sweet{}, apperr.New(apperr.OutOfStock, "Sweet is out of stock")
	}
	if sweet.Quantity < quantity {
		return models.Sweet{}, apperr.New(apperr.InsufficientStock, "Insufficient quantity available")
	}

	sweet.Quantity -= quantity
	sweet.UpdatedAt = time.Now()
	if err := s.sweets.Save(&sweet); err != nil {
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to purchase sweet", err)
	}

	return sweet, nil
}

// Restock increments stock by quantity and returns the updated sweet.
func (s *InventoryService) Restock(sweetID uint, quantity int) (models.Sweet, error) {
	if quantity <= 0 {
		return models.Sweet{}, apperr.New(apperr.Validation, "Quantity must be greater than 0")
	}

	sweet, err := s.sweets.FindByID(sweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Sweet{}, apperr.New(apperr.NotFound, "Sweet not found")
		}
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to restock sweet", err)
	}

	sweet.Quantity += quantity
	sweet.UpdatedAt = time.Now()
	if err := s.sweets.Save(&sweet); err != nil {
		return models.Sweet{}, apperr.Wrap(apperr.Internal, "Failed to restock sweet", err)
	}

	return sweet, nil
}
