package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/sweetshop/app/services"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/shashiranjanraj/sweetshop/pkg/bind"
	"github.com/shashiranjanraj/sweetshop/pkg/middleware"
	"github.com/shashiranjanraj/sweetshop/pkg/response"
)

type addToCartRequest struct {
	SweetID  uint `json:"sweetId" validate:"required"`
	Quantity int  `json:"quantity"`
}

// CartController exposes the caller's own cart. Every handler resolves
// the owner from the authenticated identity, never from the request.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	var body addToCartRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	item, merged, err := c.cart.AddItem(identity.UserID, body.SweetID, body.Quantity)
	if err != nil {
		response.Err(w, err)
		return
	}

	message := "Added to cart successfully"
	if merged {
		message = "Cart updated successfully"
	}
	response.OK(w, map[string]interface{}{
		"message":  message,
		"cartItem": item,
	})
}

func (c *CartController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	lines, total, err := c.cart.List(identity.UserID)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"cartItems": lines,
		"total":     total,
	})
}

func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	itemID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		response.Err(w, apperr.New(apperr.NotFound, "Cart item not found"))
		return
	}

	var body quantityRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	item, err := c.cart.UpdateItem(identity.UserID, itemID, body.Quantity)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"message":  "Cart item updated successfully",
		"cartItem": item,
	})
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	itemID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		response.Err(w, apperr.New(apperr.NotFound, "Cart item not found"))
		return
	}

	if err := c.cart.RemoveItem(identity.UserID, itemID); err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"message": "Item removed from cart successfully"})
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	if err := c.cart.Clear(identity.UserID); err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"message": "Cart cleared successfully"})
}
