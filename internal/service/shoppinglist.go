package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wisewallet/backend/internal/models"
)

// SynthesizeShoppingList derives a store-grouped shopping list from a plan's
// day structure and its resolved recipes. Pure function: identical input
// always yields identical output, which is what keeps the plan and the list
// consistent when it is re-run on every mutation.
//
// Ingredients aggregate on (normalized name, unit, source store); a recipe
// used in two slots contributes its ingredients twice. Meals with a nil or
// unresolved recipeId contribute only their flat estimated cost. All money
// arithmetic runs in decimals rounded to cents, so the grand total equals the
// sum of the store subtotals plus the custom-meal costs exactly.
func SynthesizeShoppingList(days []models.Day, recipes map[string]*models.Recipe) models.ShoppingList {
	type lineKey struct {
		name   string
		unit   string
		source string
	}
	type lineAgg struct {
		quantity decimal.Decimal
		price    decimal.Decimal
	}

	lines := make(map[lineKey]*lineAgg)
	customTotal := decimal.Zero

	for _, day := range days {
		for _, meal := range day.Meals {
			if meal.RecipeID == nil {
				customTotal = customTotal.Add(decimal.NewFromFloat(meal.EstimatedCost))
				continue
			}
			recipe, ok := recipes[*meal.RecipeID]
			if !ok {
				// Unresolved reference: treated as a custom entry.
				customTotal = customTotal.Add(decimal.NewFromFloat(meal.EstimatedCost))
				continue
			}
			for _, ing := range recipe.Ingredients {
				key := lineKey{
					name:   normalizeIngredientName(ing.Name),
					unit:   ing.Unit,
					source: ing.Source,
				}
				agg, ok := lines[key]
				if !ok {
					agg = &lineAgg{quantity: decimal.Zero, price: decimal.Zero}
					lines[key] = agg
				}
				agg.quantity = agg.quantity.Add(decimal.NewFromFloat(ing.Quantity))
				agg.price = agg.price.Add(decimal.NewFromFloat(ing.Price))
			}
		}
	}

	grouped := make(map[string][]models.ShoppingItem)
	for key, agg := range lines {
		grouped[key.source] = append(grouped[key.source], models.ShoppingItem{
			Name:     key.name,
			Quantity: agg.quantity.InexactFloat64(),
			Unit:     key.unit,
			Price:    agg.price.Round(2).InexactFloat64(),
		})
	}

	storeNames := make([]string, 0, len(grouped))
	for name := range grouped {
		storeNames = append(storeNames, name)
	}
	sort.Strings(storeNames)

	list := models.ShoppingList{Stores: []models.StoreGroup{}}
	total := customTotal.Round(2)
	for _, name := range storeNames {
		items := grouped[name]
		sort.Slice(items, func(i, j int) bool {
			if items[i].Name != items[j].Name {
				return items[i].Name < items[j].Name
			}
			return items[i].Unit < items[j].Unit
		})

		subtotal := decimal.Zero
		for _, item := range items {
			subtotal = subtotal.Add(decimal.NewFromFloat(item.Price))
		}
		subtotal = subtotal.Round(2)

		list.Stores = append(list.Stores, models.StoreGroup{
			StoreName: name,
			Items:     items,
			Subtotal:  subtotal.InexactFloat64(),
		})
		total = total.Add(subtotal)
	}

	list.TotalCost = total.Round(2).InexactFloat64()
	return list
}

// normalizeIngredientName folds case and whitespace so "Olive  Oil" and
// "olive oil" aggregate onto one line.
func normalizeIngredientName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
