package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/wisewallet/backend/config"
	"github.com/wisewallet/backend/internal/database"
	"github.com/wisewallet/backend/internal/models"
)

// Seeds the recipe catalog plus a handful of events and fuel stations so a
// fresh environment has data behind every read path.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	recipes := []models.Recipe{
		{
			ID:          "oatmeal-banana",
			Name:        "Banana Peanut Oatmeal",
			Description: "Rolled oats with banana, peanut butter and cinnamon.",
			Ingredients: models.JSONBIngredients{
				{Name: "rolled oats", Quantity: 80, Unit: "g", Price: 0.45, Source: "Aldi"},
				{Name: "banana", Quantity: 1, Unit: "pc", Price: 0.30, Source: "Aldi"},
				{Name: "peanut butter", Quantity: 30, Unit: "g", Price: 0.55, Source: "Walmart"},
			},
			TotalCost:         1.30,
			EstimatedCalories: 420,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"vegetarian", "high-fiber"},
		},
		{
			ID:          "chicken-rice-bowl",
			Name:        "Chicken and Rice Bowl",
			Description: "Pan-seared chicken thighs over rice with steamed broccoli.",
			Ingredients: models.JSONBIngredients{
				{Name: "chicken thighs", Quantity: 250, Unit: "g", Price: 2.10, Source: "Costco"},
				{Name: "white rice", Quantity: 90, Unit: "g", Price: 0.25, Source: "Aldi"},
				{Name: "broccoli", Quantity: 150, Unit: "g", Price: 0.80, Source: "Walmart"},
				{Name: "soy sauce", Quantity: 15, Unit: "ml", Price: 0.10, Source: "Walmart"},
			},
			TotalCost:         3.25,
			EstimatedCalories: 650,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"high-protein", "dairy-free"},
		},
		{
			ID:          "lentil-soup",
			Name:        "Red Lentil Soup",
			Description: "Red lentils simmered with carrots, onion and cumin.",
			Ingredients: models.JSONBIngredients{
				{Name: "red lentils", Quantity: 100, Unit: "g", Price: 0.60, Source: "Aldi"},
				{Name: "carrot", Quantity: 2, Unit: "pc", Price: 0.30, Source: "Aldi"},
				{Name: "onion", Quantity: 1, Unit: "pc", Price: 0.25, Source: "Aldi"},
				{Name: "cumin", Quantity: 5, Unit: "g", Price: 0.15, Source: "Walmart"},
			},
			TotalCost:         1.30,
			EstimatedCalories: 380,
			Servings:          2,
			DietaryTags:       models.JSONBStrings{"vegan", "gluten-free"},
		},
		{
			ID:          "veggie-stirfry",
			Name:        "Tofu Vegetable Stir-Fry",
			Description: "Crispy tofu with mixed vegetables and soy-ginger sauce.",
			Ingredients: models.JSONBIngredients{
				{Name: "firm tofu", Quantity: 200, Unit: "g", Price: 1.40, Source: "Walmart"},
				{Name: "mixed vegetables", Quantity: 250, Unit: "g", Price: 1.10, Source: "Costco"},
				{Name: "soy sauce", Quantity: 20, Unit: "ml", Price: 0.12, Source: "Walmart"},
				{Name: "ginger", Quantity: 10, Unit: "g", Price: 0.20, Source: "Aldi"},
			},
			TotalCost:         2.82,
			EstimatedCalories: 480,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"vegan", "high-protein"},
		},
		{
			ID:          "greek-yogurt-snack",
			Name:        "Greek Yogurt with Honey",
			Description: "Plain Greek yogurt topped with honey and walnuts.",
			Ingredients: models.JSONBIngredients{
				{Name: "greek yogurt", Quantity: 170, Unit: "g", Price: 0.95, Source: "Costco"},
				{Name: "honey", Quantity: 15, Unit: "g", Price: 0.20, Source: "Aldi"},
				{Name: "walnuts", Quantity: 20, Unit: "g", Price: 0.50, Source: "Costco"},
			},
			TotalCost:         1.65,
			EstimatedCalories: 280,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"vegetarian", "high-protein"},
		},
		{
			ID:          "pasta-marinara",
			Name:        "Spaghetti Marinara",
			Description: "Spaghetti in a garlicky tomato sauce with basil.",
			Ingredients: models.JSONBIngredients{
				{Name: "spaghetti", Quantity: 100, Unit: "g", Price: 0.40, Source: "Aldi"},
				{Name: "crushed tomatoes", Quantity: 200, Unit: "g", Price: 0.65, Source: "Aldi"},
				{Name: "garlic", Quantity: 2, Unit: "pc", Price: 0.10, Source: "Walmart"},
				{Name: "olive oil", Quantity: 15, Unit: "ml", Price: 0.25, Source: "Costco"},
			},
			TotalCost:         1.40,
			EstimatedCalories: 520,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"vegan"},
		},
		{
			ID:          "egg-scramble",
			Name:        "Veggie Egg Scramble",
			Description: "Eggs scrambled with spinach, tomato and feta.",
			Ingredients: models.JSONBIngredients{
				{Name: "eggs", Quantity: 3, Unit: "pc", Price: 0.75, Source: "Costco"},
				{Name: "spinach", Quantity: 60, Unit: "g", Price: 0.45, Source: "Walmart"},
				{Name: "tomato", Quantity: 1, Unit: "pc", Price: 0.35, Source: "Aldi"},
				{Name: "feta", Quantity: 30, Unit: "g", Price: 0.60, Source: "Walmart"},
			},
			TotalCost:         2.15,
			EstimatedCalories: 390,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"vegetarian", "gluten-free", "high-protein"},
		},
		{
			ID:          "tuna-sandwich",
			Name:        "Tuna Salad Sandwich",
			Description: "Canned tuna with mayo and celery on whole-wheat bread.",
			Ingredients: models.JSONBIngredients{
				{Name: "canned tuna", Quantity: 1, Unit: "can", Price: 1.10, Source: "Walmart"},
				{Name: "whole-wheat bread", Quantity: 2, Unit: "slice", Price: 0.30, Source: "Aldi"},
				{Name: "mayonnaise", Quantity: 20, Unit: "g", Price: 0.15, Source: "Aldi"},
				{Name: "celery", Quantity: 1, Unit: "pc", Price: 0.20, Source: "Walmart"},
			},
			TotalCost:         1.75,
			EstimatedCalories: 430,
			Servings:          1,
			DietaryTags:       models.JSONBStrings{"high-protein", "dairy-free"},
		},
	}

	for _, recipe := range recipes {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&recipe).Error; err != nil {
			log.Fatalf("failed to seed recipe %s: %v", recipe.ID, err)
		}
	}
	log.Printf("seeded %d recipes", len(recipes))

	events := []models.Event{
		{ID: uuid.New(), Title: "Downtown Farmers Market", Category: "market", City: "Springfield", Venue: "Main Square", StartsAt: time.Now().AddDate(0, 0, 2), IsFree: true},
		{ID: uuid.New(), Title: "Community Budget Workshop", Category: "workshop", City: "Springfield", Venue: "Public Library", StartsAt: time.Now().AddDate(0, 0, 5), IsFree: true},
		{ID: uuid.New(), Title: "Food Truck Friday", Category: "food", City: "Riverton", Venue: "Harbor Park", StartsAt: time.Now().AddDate(0, 0, 3), Price: 5},
	}
	for _, event := range events {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&event).Error; err != nil {
			log.Fatalf("failed to seed event %q: %v", event.Title, err)
		}
	}

	stations := []models.FuelStation{
		{ID: uuid.New(), Name: "QuickFuel Main St", Brand: "QuickFuel", City: "Springfield", Address: "12 Main St", FuelType: "regular", PricePerL: 1.42, LastUpdated: time.Now()},
		{ID: uuid.New(), Name: "QuickFuel Main St", Brand: "QuickFuel", City: "Springfield", Address: "12 Main St", FuelType: "diesel", PricePerL: 1.55, LastUpdated: time.Now()},
		{ID: uuid.New(), Name: "Harbor Gas", Brand: "Petromax", City: "Riverton", Address: "3 Harbor Rd", FuelType: "regular", PricePerL: 1.38, LastUpdated: time.Now()},
	}
	for _, station := range stations {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&station).Error; err != nil {
			log.Fatalf("failed to seed station %q: %v", station.Name, err)
		}
	}

	log.Printf("seeded %d events and %d fuel stations", len(events), len(stations))
}
