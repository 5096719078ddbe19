package database

import (
	"gorm.io/gorm"

	"github.com/wisewallet/backend/internal/models"
)

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Recipe{},
		&models.MealPlan{},
		&models.Event{},
		&models.FuelStation{},
	)
}
