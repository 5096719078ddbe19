package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a local happening surfaced on the assistant's dashboard.
type Event struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Category  string         `gorm:"size:50;index" json:"category"`
	City      string         `gorm:"size:100;index" json:"city"`
	Venue     string         `gorm:"size:255" json:"venue"`
	StartsAt  time.Time      `json:"startsAt"`
	Price     float64        `json:"price"`
	IsFree    bool           `json:"isFree"`
}

// FuelStation carries the latest observed prices for a station.
type FuelStation struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Brand       string         `gorm:"size:100" json:"brand"`
	City        string         `gorm:"size:100;index" json:"city"`
	Address     string         `gorm:"size:255" json:"address"`
	FuelType    string         `gorm:"size:20;index" json:"fuelType"`
	PricePerL   float64        `json:"pricePerL"`
	LastUpdated time.Time      `json:"lastUpdated"`
}
