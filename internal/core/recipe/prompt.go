package recipe

import (
	"fmt"
	"strings"
)

// Mode selects the generation variant and with it the top-level JSON shape
// the model is asked for and the normalizer accepts.
type Mode string

const (
	// ModeByName requests a single recipe object for a dish name.
	ModeByName Mode = "by-name"
	// ModeByIngredients requests an array of recipes using given ingredients.
	ModeByIngredients Mode = "by-ingredients"
)

// recipeObjectShape is the exact per-recipe JSON shape requested from the
// model. The normalizer reads these keys; the two must stay in lock-step.
const recipeObjectShape = `{"strMeal":"dish name","strCategory":"category","strArea":"cuisine","strInstructions":"step by step cooking instructions","strIngredients":[{"name":"ingredient name","measure":"amount"}]}`

// BuildByNamePrompt builds the prompt for generating one recipe for a dish.
// The dish name must be non-empty, validated by the caller.
func BuildByNamePrompt(dishName string) string {
	return fmt.Sprintf(`You are a recipe assistant. Provide a complete recipe for the dish "%s".
Requirements:
1. Return ONLY a single JSON object, with no markdown fences and no commentary
2. Use double quotes around every key and every string value
3. Do not invent extra keys; the object must follow exactly this shape:
%s`, dishName, recipeObjectShape)
}

// BuildByIngredientsPrompt builds the prompt for generating recipes that use
// the given ingredients. At least one ingredient, validated by the caller.
func BuildByIngredientsPrompt(ingredients []string) string {
	return fmt.Sprintf(`You are a recipe assistant. Suggest recipes that can be cooked with these ingredients: %s.
Requirements:
1. Return ONLY a JSON array of recipe objects, with no markdown fences and no commentary
2. Use double quotes around every key and every string value
3. Prefer recipes that use the listed ingredients; do not require rare extras
4. Do not invent extra keys; every object in the array must follow exactly this shape:
%s`, strings.Join(ingredients, ", "), recipeObjectShape)
}

// BuildPrompt dispatches on mode: input holds the dish name for ModeByName
// and the ingredient list for ModeByIngredients. Callers that know the mode
// statically should prefer the two specific builders.
func BuildPrompt(mode Mode, input []string) string {
	if mode == ModeByName {
		name := ""
		if len(input) > 0 {
			name = input[0]
		}
		return BuildByNamePrompt(name)
	}
	return BuildByIngredientsPrompt(input)
}
