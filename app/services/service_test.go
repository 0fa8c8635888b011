package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test so tests can run
// in parallel without sharing state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.Sweet{}, &models.CartItem{}, &models.Order{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func seedSweet(t *testing.T, db *gorm.DB, name string, price float64, quantity int) models.Sweet {
	t.Helper()

	sweet := models.Sweet{
		Name:     name,
		Category: "Test",
		Price:    price,
		Quantity: quantity,
		Unit:     models.DefaultUnit,
	}
	if err := db.Create(&sweet).Error; err != nil {
		t.Fatalf("seed sweet: %v", err)
	}
	return sweet
}
