package database

import (
	"fmt"

	"hiringbooth/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет миграцию всех моделей
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.CompanyProfile{},
		&models.Job{},
		&models.Application{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
