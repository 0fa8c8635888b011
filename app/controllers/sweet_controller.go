package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/app/services"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/shashiranjanraj/sweetshop/pkg/bind"
	"github.com/shashiranjanraj/sweetshop/pkg/logger"
	"github.com/shashiranjanraj/sweetshop/pkg/metrics"
	"github.com/shashiranjanraj/sweetshop/pkg/middleware"
	"github.com/shashiranjanraj/sweetshop/pkg/response"
)

type createSweetRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Unit     string   `json:"unit"`
}

type updateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Unit     *string  `json:"unit"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// SweetController exposes the catalogue plus the purchase and restock
// stock movements.
type SweetController struct {
	sweets    *services.SweetService
	inventory *services.InventoryService
	orders    *services.OrderService
}

func NewSweetController(sweets *services.SweetService, inventory *services.InventoryService, orders *services.OrderService) *SweetController {
	return &SweetController{sweets: sweets, inventory: inventory, orders: orders}
}

func (c *SweetController) Create(w http.ResponseWriter, r *http.Request) {
	var body createSweetRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}
	if body.Name == "" || body.Category == "" || body.Price == nil || body.Quantity == nil {
		response.Err(w, apperr.New(apperr.Validation, "All fields are required"))
		return
	}

	sweet, err := c.sweets.Create(body.Name, body.Category, *body.Price, *body.Quantity, body.Unit)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"sweet":   sweet,
		"message": "Sweet created successfully",
	})
}

func (c *SweetController) List(w http.ResponseWriter, r *http.Request) {
	sweets, err := c.sweets.List()
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, map[string]interface{}{"sweets": sweets})
}

func (c *SweetController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.SweetFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
	}

	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Err(w, apperr.New(apperr.Validation, "Invalid minPrice"))
			return
		}
		filter.MinPrice = &v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Err(w, apperr.New(apperr.Validation, "Invalid maxPrice"))
			return
		}
		filter.MaxPrice = &v
	}

	sweets, err := c.sweets.Search(filter)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, map[string]interface{}{"sweets": sweets})
}

func (c *SweetController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(r)
	if !ok {
		response.Err(w, apperr.New(apperr.NotFound, "Sweet not found"))
		return
	}

	var body updateSweetRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	sweet, err := c.sweets.Update(id, services.UpdateSweetInput{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Quantity: body.Quantity,
		Unit:     body.Unit,
	})
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"sweet":   sweet,
		"message": "Sweet updated successfully",
	})
}

func (c *SweetController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(r)
	if !ok {
		response.Err(w, apperr.New(apperr.NotFound, "Sweet not found"))
		return
	}

	if err := c.sweets.Delete(id); err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{"message": "Sweet deleted successfully"})
}

// Purchase decrements stock, then records the order. The two writes are
// not transactional: a failed order record after a committed decrement
// surfaces as 500 with the stock already reduced.
func (c *SweetController) Purchase(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromCtx(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
		return
	}

	id, ok := sweetID(r)
	if !ok {
		metrics.PurchaseFailures.WithLabelValues(metrics.ReasonNotFound).Inc()
		response.Err(w, apperr.New(apperr.NotFound, "Sweet not found"))
		return
	}

	var body quantityRequest
	if err := bind.JSON(r, &body); err != nil {
		metrics.PurchaseFailures.WithLabelValues(metrics.ReasonInvalid).Inc()
		response.Err(w, err)
		return
	}

	sweet, err := c.inventory.Purchase(id, body.Quantity)
	if err != nil {
		metrics.PurchaseFailures.WithLabelValues(purchaseFailureReason(err)).Inc()
		response.Err(w, err)
		return
	}

	if _, err := c.orders.Record(identity.UserID, sweet, body.Quantity); err != nil {
		logger.WithCtx(r.Context()).Error("order record failed after stock decrement",
			"sweet_id", sweet.ID, "user_id", identity.UserID, "error", err)
		response.Err(w, err)
		return
	}

	metrics.PurchasesTotal.Inc()
	response.OK(w, map[string]interface{}{
		"sweet":   sweet,
		"message": "Purchase successful",
	})
}

func (c *SweetController) Restock(w http.ResponseWriter, r *http.Request) {
	id, ok := sweetID(r)
	if !ok {
		response.Err(w, apperr.New(apperr.NotFound, "Sweet not found"))
		return
	}

	var body quantityRequest
	if err := bind.JSON(r, &body); err != nil {
		response.Err(w, err)
		return
	}

	sweet, err := c.inventory.Restock(id, body.Quantity)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"sweet":   sweet,
		"message": "Restock successful",
	})
}

func sweetID(r *http.Request) (uint, bool) {
	return parseID(chi.URLParam(r, "id"))
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func purchaseFailureReason(err error) string {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return metrics.ReasonNotFound
	case apperr.OutOfStock:
		return metrics.ReasonOutOfStock
	case apperr.InsufficientStock:
		return metrics.ReasonInsufficientStock
	case apperr.Validation:
		return metrics.ReasonInvalid
	default:
		return metrics.ReasonInternal
	}
}
