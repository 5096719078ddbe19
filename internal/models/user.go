package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	// MealPlanID references the user's single active plan, if one has been
	// generated. A user owns at most one plan.
	MealPlanID *uuid.UUID `gorm:"type:varchar(36)" json:"meal_plan_id,omitempty"`
}

type UserProfile struct {
	ID              uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	DisplayName     string         `gorm:"size:100" json:"displayName"`
	City            string         `gorm:"size:100" json:"city"`
	MonthlyBudget   float64        `json:"monthlyBudget"`
	HouseholdSize   int            `gorm:"default:1" json:"householdSize"`
	PreferredStores JSONBStrings   `gorm:"type:jsonb;default:'[]'" json:"preferredStores"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
