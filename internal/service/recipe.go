package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/wisewallet/backend/internal/logger"
	"github.com/wisewallet/backend/internal/models"
)

// RecipeService reads the recipe catalog. The catalog is read-only from the
// meal-plan engine's perspective.
type RecipeService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB, log *logger.Logger) *RecipeService {
	return &RecipeService{db: db, log: log}
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError("recipe %q not found", id)
		}
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns the full catalog.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SearchRecipes performs a keyword search over name, description and tags.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	dbQuery := s.db.WithContext(ctx)
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		tagsCol := "dietary_tags"
		if s.db.Dialector.Name() == "postgres" {
			tagsCol = "dietary_tags::text"
		}
		dbQuery = dbQuery.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER("+tagsCol+") LIKE ?",
			like, like, like,
		)
	}
	if err := dbQuery.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// RecipeResolution is the per-id outcome of a catalog lookup. Missing ids are
// an expected, tolerated condition: the affected meals stay in the plan as
// custom entries contributing only their flat estimated cost.
type RecipeResolution struct {
	Found   map[string]*models.Recipe
	Missing []string
}

// Resolve fetches every referenced recipe and reports found and missing ids
// separately so callers can decide whether partial resolution matters.
func (s *RecipeService) Resolve(ctx context.Context, ids []string) (*RecipeResolution, error) {
	res := &RecipeResolution{Found: make(map[string]*models.Recipe)}

	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return res, nil
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", unique).Find(&recipes).Error; err != nil {
		return nil, err
	}
	for i := range recipes {
		res.Found[recipes[i].ID] = &recipes[i]
	}
	for _, id := range unique {
		if _, ok := res.Found[id]; !ok {
			res.Missing = append(res.Missing, id)
		}
	}
	if len(res.Missing) > 0 {
		s.log.Warn("skipping unresolved recipe ids", "missing", res.Missing)
	}
	return res, nil
}
