package services

import (
	"errors"
	"sort"
	"time"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/shashiranjanraj/sweetshop/pkg/metrics"
	"gorm.io/gorm"
)

// AdminOrder is an order decorated with the customer's name and email
// for the back-office listing.
type AdminOrder struct {
	models.Order
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// SweetSales is one row of the most-sold ranking.
type SweetSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Analytics is the back-office sales summary. Daily figures cover the
// server's local calendar day.
type Analytics struct {
	DailySales      float64      `json:"dailySales"`
	DailyOrderCount int          `json:"dailyOrderCount"`
	TotalRevenue    float64      `json:"totalRevenue"`
	TotalOrderCount int          `json:"totalOrderCount"`
	MostSoldSweets  []SweetSales `json:"mostSoldSweets"`
}

// OrderService records purchases and serves order history and the
// back-office views.
type OrderService struct {
	orders *repositories.OrderRepository
	users  *repositories.UserRepository
}

func NewOrderService(orders *repositories.OrderRepository, users *repositories.UserRepository) *OrderService {
	return &OrderService{orders: orders, users: users}
}

// Record writes the order row for a completed purchase, snapshotting the
// sweet's name, unit and price.
func (s *OrderService) Record(userID uint, sweet models.Sweet, quantity int) (models.Order, error) {
	order := models.Order{
		UserID:     userID,
		SweetID:    sweet.ID,
		SweetName:  sweet.Name,
		Quantity:   quantity,
		Unit:       sweet.Unit,
		UnitPrice:  sweet.Price,
		TotalPrice: sweet.Price * float64(quantity),
		Status:     models.StatusPlaced,
	}
	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, apperr.Wrap(apperr.Internal, "Failed to record order", err)
	}

	metrics.OrdersTotal.Inc()
	return order, nil
}

// ListForUser returns the user's own orders, newest-first.
func (s *OrderService) ListForUser(userID uint) ([]models.Order, error) {
	orders, err := s.orders.ListForUser(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err)
	}
	return orders, nil
}

// ListAll returns every order with customer details attached. Orders
// whose user has since disappeared show "Unknown" for both fields.
func (s *OrderService) ListAll() ([]AdminOrder, error) {
	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err)
	}

	// Cache user lookups; admin listings repeat the same customers.
	seen := make(map[uint]models.User)
	out := make([]AdminOrder, 0, len(orders))
	for _, order := range orders {
		entry := AdminOrder{Order: order, CustomerName: "Unknown", CustomerEmail: "Unknown"}
		user, ok := seen[order.UserID]
		if !ok {
			user, err = s.users.FindByID(order.UserID)
			if err == nil {
				seen[order.UserID] = user
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Wrap(apperr.Internal, "Failed to fetch orders", err)
			}
			ok = err == nil
		}
		if ok {
			entry.CustomerName = user.Name
			entry.CustomerEmail = user.Email
		}
		out = append(out, entry)
	}

	return out, nil
}

// SetStatus overwrites an order's status with whatever the caller sent.
// No transition rules are enforced.
func (s *OrderService) SetStatus(orderID uint, status string) (models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, apperr.New(apperr.NotFound, "Order not found")
		}
		return models.Order{}, apperr.Wrap(apperr.Internal, "Failed to update order status", err)
	}

	order.Status = status
	if err := s.orders.Save(&order); err != nil {
		return models.Order{}, apperr.Wrap(apperr.Internal, "Failed to update order status", err)
	}

	return order, nil
}

// Analytics computes the sales summary at call time. The daily window is
// [midnight, next midnight) in server local time; the most-sold ranking
// is the top five sweets by cumulative quantity across all orders, ties
// broken by name.
func (s *OrderService) Analytics() (Analytics, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	daily, err := s.orders.ListCreatedBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		return Analytics{}, apperr.Wrap(apperr.Internal, "Failed to fetch analytics", err)
	}

	all, err := s.orders.ListAll()
	if err != nil {
		return Analytics{}, apperr.Wrap(apperr.Internal, "Failed to fetch analytics", err)
	}

	a := Analytics{
		DailyOrderCount: len(daily),
		TotalOrderCount: len(all),
		MostSoldSweets:  []SweetSales{},
	}
	for _, order := range daily {
		a.DailySales += order.TotalPrice
	}

	byName := make(map[string]int)
	for _, order := range all {
		a.TotalRevenue += order.TotalPrice
		byName[order.SweetName] += order.Quantity
	}

	ranking := make([]SweetSales, 0, len(byName))
	for name, qty := range byName {
		ranking = append(ranking, SweetSales{Name: name, Quantity: qty})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].Name < ranking[j].Name
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	a.MostSoldSweets = ranking

	return a, nil
}
