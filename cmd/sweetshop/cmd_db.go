package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/config"
	"github.com/shashiranjanraj/sweetshop/database/seeders"
	"github.com/shashiranjanraj/sweetshop/pkg/auth"
	"github.com/shashiranjanraj/sweetshop/pkg/database"
	"github.com/shashiranjanraj/sweetshop/pkg/migration"
)

// bootDB loads config and opens the database connection.
func bootDB() (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return database.Open()
}

// sweetshop migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println("Running migrations…")
		return migration.New(db).Run()
	},
}

// sweetshop migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println("Rolling back last batch…")
		return migration.New(db).Rollback()
	},
}

// sweetshop migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		return migration.New(db).Status()
	},
}

// sweetshop seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Println("Running seeders…")
		return seeders.RunAll(db)
	},
}

// sweetshop admin:create — create the default admin (and a demo user).
var adminCreateCmd = &cobra.Command{
	Use:   "admin:create",
	Short: "Create the default admin account and a demo user",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := db.AutoMigrate(&models.User{}); err != nil {
			return err
		}

		if err := createAccount(db, "Admin User", "admin@example.com", "admin123", models.RoleAdmin); err != nil {
			return err
		}
		return createAccount(db, "Regular User", "user@example.com", "user123", models.RoleUser)
	},
}

func createAccount(db *gorm.DB, name, email, password, role string) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("%s already exists\n", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{Name: name, Email: email, Password: hash, Role: role}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	fmt.Printf("Created %s account: %s\n", role, email)
	return nil
}
