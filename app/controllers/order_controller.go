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

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderController exposes order history plus the admin listing, status
// update and analytics endpoints.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	orders, err := c.orders.ListForUser(identity.UserID)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"orders": orders})
}

func (c *OrderController) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListAll()
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"orders": orders})
}

// UpdateStatus overwrites an order's status with the caller-supplied
// value. Any non-empty string is accepted.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		response.Err(w, apperr.New(apperr.NotFound, "Order not found"))
		return
	}

	var body updateStatusRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	order, err := c.orders.SetStatus(orderID, body.Status)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"order":   order,
		"message": "Order status updated successfully",
	})
}

func (c *OrderController) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := c.orders.Analytics()
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, analytics)
}
