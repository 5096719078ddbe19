package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wisewallet/backend/config"
	"github.com/wisewallet/backend/internal/models"
)

// ExportService uploads a plan's shopping list to object storage and hands
// back a time-limited download link.
type ExportService struct {
	s3    *config.S3Config
	store MealPlanStore
}

func NewExportService(s3 *config.S3Config, store MealPlanStore) *ExportService {
	return &ExportService{s3: s3, store: store}
}

// ExportShoppingList writes the user's current shopping list as JSON to S3
// and returns a presigned URL valid for 24 hours.
func (s *ExportService) ExportShoppingList(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.s3 == nil {
		return "", NewUnavailableError("shopping-list export is not configured")
	}

	plan, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch plan: %w", err)
	}
	if plan == nil {
		return "", NewNotFoundError("no meal plan exists for this user")
	}

	payload, err := json.MarshalIndent(models.ShoppingList(plan.ShoppingList), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	key := fmt.Sprintf("shopping-lists/%s/%d.json", userID, time.Now().UTC().Unix())
	if err := s.s3.PutObject(ctx, key, "application/json", payload); err != nil {
		return "", fmt.Errorf("failed to upload shopping list: %w", err)
	}

	url, err := s.s3.GeneratePresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to presign export URL: %w", err)
	}
	return url, nil
}
