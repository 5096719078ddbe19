package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wisewallet/backend/internal/models"
)

// ErrPlanExists is returned by Create when the user already has a plan.
var ErrPlanExists = errors.New("meal plan already exists for user")

// MealPlanStore is the persistence abstraction for meal-plan records, keyed
// by user. Create is a point create that fails if a plan already exists;
// Update replaces an existing record in place.
type MealPlanStore interface {
	Create(ctx context.Context, plan *models.MealPlan) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error)
	Update(ctx context.Context, plan *models.MealPlan) error
}

// GormMealPlanStore implements MealPlanStore on a gorm connection.
type GormMealPlanStore struct {
	db *gorm.DB
}

// NewMealPlanStore creates a gorm-backed meal-plan store.
func NewMealPlanStore(db *gorm.DB) *GormMealPlanStore {
	return &GormMealPlanStore{db: db}
}

// Create inserts a new plan. The unique index on user_id enforces the
// one-plan-per-user rule; a duplicate insert surfaces as ErrPlanExists.
func (s *GormMealPlanStore) Create(ctx context.Context, plan *models.MealPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.MealPlan{}).
		Where("user_id = ?", plan.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrPlanExists
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return err
	}

	// Back-reference on the owning user record.
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", plan.UserID).
		Update("meal_plan_id", plan.ID).Error
}

// GetByUser fetches the user's plan; (nil, nil) when none exists.
func (s *GormMealPlanStore) GetByUser(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := s.db.WithContext(ctx).First(&plan, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// Update persists the full plan record in place.
func (s *GormMealPlanStore) Update(ctx context.Context, plan *models.MealPlan) error {
	return s.db.WithContext(ctx).Save(plan).Error
}
