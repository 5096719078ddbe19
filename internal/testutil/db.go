package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wisewallet/backend/internal/models"
)

// SetupDB opens an in-memory sqlite database with the full schema applied.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Recipe{},
		&models.MealPlan{},
		&models.Event{},
		&models.FuelStation{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// SeedRecipes inserts the given recipes into the catalog.
func SeedRecipes(t *testing.T, db *gorm.DB, recipes ...models.Recipe) {
	t.Helper()
	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			t.Fatalf("failed to seed recipe %s: %v", recipes[i].ID, err)
		}
	}
}
