package services

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"gorm.io/gorm"
)

// CartLine is a cart item together with its derived subtotal.
type CartLine struct {
	models.CartItem
	Subtotal float64 `json:"subtotal"`
}

// CartService maintains per-user carts. Lines snapshot the sweet's name,
// price and unit at add time and are never refreshed afterwards.
type CartService struct {
	carts  *repositories.CartRepository
	sweets *repositories.SweetRepository
}

func NewCartService(carts *repositories.CartRepository, sweets *repositories.SweetRepository) *CartService {
	return &CartService{carts: carts, sweets: sweets}
}

// AddItem adds quantity of a sweet to the user's cart. If a line for the
// sweet already exists the quantities merge and merged reports true; the
// existing snapshot is kept either way.
func (s *CartService) AddItem(userID, sweetID uint, quantity int) (models.CartItem, bool, error) {
	if quantity <= 0 {
		return models.CartItem{}, false, apperr.New(apperr.Validation, "Quantity must be greater than 0")
	}

	sweet, err := s.sweets.FindByID(sweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, false, apperr.New(apperr.NotFound, "Sweet not found")
		}
		return models.CartItem{}, false, apperr.Wrap(apperr.Internal, "Failed to add to cart", err)
	}

	// Unlike purchase, cart add has a single stock check: a zero-stock
	// sweet fails the shortfall comparison like any other.
	if sweet.Quantity < quantity {
		return models.CartItem{}, false, apperr.New(apperr.InsufficientStock, "Insufficient quantity available")
	}

	existing, err := s.carts.FindByUserAndSweet(userID, sweetID)
	switch {
	case err == nil:
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now()
		if err := s.carts.Save(&existing); err != nil {
			return models.CartItem{}, false, apperr.Wrap(apperr.Internal, "Failed to add to cart", err)
		}
		return existing, true, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.CartItem{}, false, apperr.Wrap(apperr.Internal, "Failed to add to cart", err)
	}

	item := models.CartItem{
		UserID:    userID,
		SweetID:   sweetID,
		SweetName: sweet.Name,
		Price:     sweet.Price,
		Quantity:  quantity,
		Unit:      sweet.Unit,
	}
	if err := s.carts.Create(&item); err != nil {
		return models.CartItem{}, false, apperr.Wrap(apperr.Internal, "Failed to add to cart", err)
	}

	return item, false, nil
}

// List returns the user's cart lines with subtotals and the cart total,
// computed fresh from the snapshot prices.
func (s *CartService) List(userID uint) ([]CartLine, float64, error) {
	items, err := s.carts.ListForUser(userID)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "Failed to fetch cart", err)
	}

	lines := make([]CartLine, 0, len(items))
	var total float64
	for _, item := range items {
		subtotal := item.Price * float64(item.Quantity)
		total += subtotal
		lines = append(lines, CartLine{CartItem: item, Subtotal: subtotal})
	}

	return lines, total, nil
}

// UpdateItem sets a line's quantity. Only the owning user's line is
// visible; stock is not rechecked here.
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, apperr.New(apperr.Validation, "Quantity must be greater than 0")
	}

	item, err := s.carts.FindForUser(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, apperr.New(apperr.NotFound, "Cart item not found")
		}
		return models.CartItem{}, apperr.Wrap(apperr.Internal, "Failed to update cart item", err)
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := s.carts.Save(&item); err != nil {
		return models.CartItem{}, apperr.Wrap(apperr.Internal, "Failed to update cart item", err)
	}

	return item, nil
}

// RemoveItem deletes one of the user's lines.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	err := s.carts.DeleteForUser(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "Cart item not found")
		}
		return apperr.Wrap(apperr.Internal, "Failed to remove cart item", err)
	}
	return nil
}

// Clear empties the user's cart. Clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	if err := s.carts.ClearForUser(userID); err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to clear cart", err)
	}
	return nil
}
