package seeders

import (
	"errors"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog inserts a demo sweet catalogue. Sweets already present by
// name are left untouched so the seeder can run repeatedly.
func SeedCatalog(db *gorm.DB) error {
	sweets := []models.Sweet{
		{Name: "Kaju Katli", Category: "Dry Fruit", Price: 550, Quantity: 40, Unit: "kg"},
		{Name: "Gulab Jamun", Category: "Milk", Price: 220, Quantity: 60, Unit: "kg"},
		{Name: "Rasgulla", Category: "Milk", Price: 200, Quantity: 50, Unit: "kg"},
		{Name: "Besan Ladoo", Category: "Ladoo", Price: 320, Quantity: 35, Unit: "kg"},
		{Name: "Motichoor Ladoo", Category: "Ladoo", Price: 340, Quantity: 30, Unit: "kg"},
		{Name: "Soan Papdi", Category: "Flaky", Price: 180, Quantity: 80, Unit: "nos"},
		{Name: "Mysore Pak", Category: "Ghee", Price: 400, Quantity: 25, Unit: "kg"},
		{Name: "Jalebi", Category: "Fried", Price: 160, Quantity: 45, Unit: "kg"},
	}

	for _, sweet := range sweets {
		var existing models.Sweet
		err := db.Where("name = ?", sweet.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&sweet).Error; err != nil {
			return err
		}
	}

	return nil
}
