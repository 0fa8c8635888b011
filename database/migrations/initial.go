package migrations

import (
	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_sweets_table", &CreateSweetsTable{})
	migration.Register("20260101000002_create_cart_items_table", &CreateCartItemsTable{})
	migration.Register("20260101000003_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: sweets --------

type CreateSweetsTable struct{}

func (m *CreateSweetsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Sweet{})
}

func (m *CreateSweetsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("sweets")
}

// -------- 0003: cart items --------

type CreateCartItemsTable struct{}

func (m *CreateCartItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CartItem{})
}

func (m *CreateCartItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cart_items")
}

// -------- 0004: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}
