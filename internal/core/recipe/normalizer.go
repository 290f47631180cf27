package recipe

import (
	"strings"

	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/google/uuid"
)

// Normalize maps a decoded JSON value into canonical Recipe records.
// ModeByIngredients requires a top-level array, ModeByName a single object;
// any other top-level shape is an InvalidShape failure. Missing or empty
// leaf fields never fail, they are replaced with defaults. The input value
// is only read, never mutated.
func Normalize(decoded interface{}, mode Mode) ([]common.Recipe, error) {
	switch mode {
	case ModeByIngredients:
		list, ok := decoded.([]interface{})
		if !ok {
			return nil, newGenerationError(KindInvalidShape,
				"expected a JSON array of recipe objects", nil)
		}
		recipes := make([]common.Recipe, 0, len(list))
		for _, item := range list {
			obj, ok := item.(map[string]interface{})
			if !ok {
				return nil, newGenerationError(KindInvalidShape,
					"expected every array element to be a recipe object", nil)
			}
			recipes = append(recipes, normalizeObject(obj))
		}
		return recipes, nil

	case ModeByName:
		obj, ok := decoded.(map[string]interface{})
		if !ok {
			return nil, newGenerationError(KindInvalidShape,
				"expected a single JSON recipe object", nil)
		}
		return []common.Recipe{normalizeObject(obj)}, nil

	default:
		return nil, newGenerationError(KindInvalidShape,
			"unknown generation mode "+string(mode), nil)
	}
}

// normalizeObject builds one Recipe from an arbitrarily-shaped object,
// filling defaults for absent fields and flattening the ingredient list
// into contiguous 1-based positions.
func normalizeObject(obj map[string]interface{}) common.Recipe {
	r := common.Recipe{
		ID:           stringField(obj, "idMeal", ""),
		Name:         stringField(obj, "strMeal", common.DefaultName),
		Category:     stringField(obj, "strCategory", common.DefaultCategory),
		Cuisine:      stringField(obj, "strArea", common.DefaultCuisine),
		Instructions: stringField(obj, "strInstructions", common.DefaultInstructions),
		Ingredients:  []common.RecipeIngredient{},
	}

	// The model is not asked for an id; generate a fresh one unless it
	// volunteered a usable value.
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	entries, ok := obj["strIngredients"].([]interface{})
	if !ok {
		return r
	}

	for _, entry := range entries {
		item, ok := entry.(map[string]interface{})
		// A malformed entry still occupies its position, with empty fields.
		ingredient := common.RecipeIngredient{
			Index: len(r.Ingredients) + 1,
		}
		if ok {
			ingredient.Name = stringField(item, "name", "")
			ingredient.Measure = stringField(item, "measure", "")
		}
		r.Ingredients = append(r.Ingredients, ingredient)
	}

	return r
}

// stringField reads a string value from obj, returning fallback when the
// key is absent, not a string, or blank.
func stringField(obj map[string]interface{}, key, fallback string) string {
	v, ok := obj[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
