package repositories

import (
	"time"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	return order, err
}

// ListForUser returns a user's orders, newest-first.
func (r *OrderRepository) ListForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListAll returns every order, newest-first.
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

// ListCreatedBetween returns orders with createdAt in [from, to).
func (r *OrderRepository) ListCreatedBetween(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("created_at >= ? AND created_at < ?", from, to).Find(&orders).Error
	return orders, err
}

// Save persists changes to an existing order.
func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}
