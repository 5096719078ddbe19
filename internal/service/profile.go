package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wisewallet/backend/internal/models"
)

// ProfileService handles user profile reads and writes.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError("profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates the profile on first write and updates it afterwards.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, updates *models.UserProfile) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		profile = models.UserProfile{ID: uuid.New(), UserID: userID}
	case err != nil:
		return nil, err
	}

	profile.DisplayName = updates.DisplayName
	profile.City = updates.City
	profile.MonthlyBudget = updates.MonthlyBudget
	if updates.HouseholdSize > 0 {
		profile.HouseholdSize = updates.HouseholdSize
	}
	if updates.PreferredStores != nil {
		profile.PreferredStores = updates.PreferredStores
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
