package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/wisewallet/backend/internal/models"
)

// LookupService serves the filtered event and fuel-station read paths, with a
// TTL cache in front of each query.
type LookupService struct {
	db    *gorm.DB
	cache *Cache
}

func NewLookupService(db *gorm.DB, cache *Cache) *LookupService {
	return &LookupService{db: db, cache: cache}
}

// ListEvents returns upcoming events, optionally filtered by city and category.
func (s *LookupService) ListEvents(ctx context.Context, city, category string) ([]models.Event, error) {
	cacheKey := fmt.Sprintf("events:%s:%s", strings.ToLower(city), strings.ToLower(category))
	var cached []models.Event
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	query := s.db.WithContext(ctx)
	if city != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(category))
	}

	var events []models.Event
	if err := query.Order("starts_at").Find(&events).Error; err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, events)
	return events, nil
}

// ListFuelStations returns stations, optionally filtered by city and fuel
// type, cheapest first.
func (s *LookupService) ListFuelStations(ctx context.Context, city, fuelType string) ([]models.FuelStation, error) {
	cacheKey := fmt.Sprintf("fuel:%s:%s", strings.ToLower(city), strings.ToLower(fuelType))
	var cached []models.FuelStation
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	query := s.db.WithContext(ctx)
	if city != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if fuelType != "" {
		query = query.Where("LOWER(fuel_type) = ?", strings.ToLower(fuelType))
	}

	var stations []models.FuelStation
	if err := query.Order("price_per_l").Find(&stations).Error; err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, stations)
	return stations, nil
}
