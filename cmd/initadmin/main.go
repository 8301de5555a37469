// Command initadmin ensures the admin account exists and carries the is_admin
// flag. It creates the account with default budget and settings when missing,
// and promotes an existing account with the configured admin email. Safe to
// run repeatedly.
package main

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Admin init error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	db := dbManager.DB()
	userService := services.NewUserService(db)

	var existing models.User
	err = db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsAdmin {
			log.Infof("Admin account %s already initialized", cfg.AdminEmail)
			return nil
		}
		if err := db.Model(&existing).Update("is_admin", true).Error; err != nil {
			return fmt.Errorf("failed to promote admin account: %w", err)
		}
		log.Infof("Promoted existing account %s to admin", cfg.AdminEmail)
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			return fmt.Errorf("ADMIN_PASSWORD must be set to create the admin account")
		}
		user, err := userService.CreateUser("Administrator", cfg.AdminEmail, password)
		if err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
		if !user.IsAdmin {
			if err := db.Model(user).Update("is_admin", true).Error; err != nil {
				return fmt.Errorf("failed to flag admin account: %w", err)
			}
		}
		log.Infof("Created admin account %s", cfg.AdminEmail)
		return nil

	default:
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
}
