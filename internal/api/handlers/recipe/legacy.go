package recipe

import (
	"fmt"

	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"
)

// legacyIngredientSlots is how many strIngredientN/strMeasureN pairs the
// numbered view carries, matching the fixed-width schema older clients use.
const legacyIngredientSlots = 20

// RecipeView is the response shape for one recipe. LegacyFields is only
// populated when the client asked for the numbered strIngredient1..20 view;
// the canonical model never carries numbered fields.
type RecipeView struct {
	common.Recipe
	LegacyFields map[string]string `json:"legacy_fields,omitempty"`
}

// NewRecipeView wraps a recipe, optionally attaching the numbered view.
func NewRecipeView(r common.Recipe, legacy bool) RecipeView {
	view := RecipeView{Recipe: r}
	if legacy {
		view.LegacyFields = numberedFields(r)
	}
	return view
}

// numberedFields flattens the ordered ingredient list into the legacy
// strIngredientN/strMeasureN keys. Unused slots stay empty strings, as the
// legacy schema expects.
func numberedFields(r common.Recipe) map[string]string {
	fields := make(map[string]string, 2*legacyIngredientSlots)
	for i := 1; i <= legacyIngredientSlots; i++ {
		name := ""
		measure := ""
		if i <= len(r.Ingredients) {
			name = r.Ingredients[i-1].Name
			measure = r.Ingredients[i-1].Measure
		}
		fields[fmt.Sprintf("strIngredient%d", i)] = name
		fields[fmt.Sprintf("strMeasure%d", i)] = measure
	}
	return fields
}
