package recipe

import (
	"testing"

	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode mirrors the pipeline: payloads reach the normalizer as generic
// JSON values produced by the shared decoder.
func decode(t *testing.T, payload string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, common.ParseJSON(payload, &v))
	return v
}

func TestNormalizeByNameDefaults(t *testing.T) {
	recipes, err := Normalize(decode(t, `{"strMeal":"Tea"}`), ModeByName)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, "Tea", r.Name)
	assert.Equal(t, common.DefaultCategory, r.Category)
	assert.Equal(t, common.DefaultCuisine, r.Cuisine)
	assert.Equal(t, common.DefaultInstructions, r.Instructions)
	assert.NotEmpty(t, r.ID)
	assert.Empty(t, r.Ingredients)
	assert.NotNil(t, r.Ingredients)
}

func TestNormalizeByNameFullObject(t *testing.T) {
	payload := `{
		"strMeal": "Omelette",
		"strCategory": "Breakfast",
		"strArea": "French",
		"strInstructions": "Whisk the eggs and fry them.",
		"strIngredients": [
			{"name": "Eggs", "measure": "3"},
			{"name": "Butter", "measure": "1 tbsp"}
		]
	}`

	recipes, err := Normalize(decode(t, payload), ModeByName)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	r := recipes[0]
	assert.Equal(t, "Omelette", r.Name)
	assert.Equal(t, "Breakfast", r.Category)
	assert.Equal(t, "French", r.Cuisine)
	assert.Equal(t, "Whisk the eggs and fry them.", r.Instructions)
	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, common.RecipeIngredient{Index: 1, Name: "Eggs", Measure: "3"}, r.Ingredients[0])
	assert.Equal(t, common.RecipeIngredient{Index: 2, Name: "Butter", Measure: "1 tbsp"}, r.Ingredients[1])
}

func TestNormalizeEmptyArray(t *testing.T) {
	recipes, err := Normalize(decode(t, `[]`), ModeByIngredients)
	require.NoError(t, err)
	assert.Empty(t, recipes)
	assert.NotNil(t, recipes)
}

func TestNormalizeIngredientOrderPreserved(t *testing.T) {
	payload := `[{"strMeal":"Scramble","strIngredients":[
		{"name":"Salt","measure":"1tsp"},
		{"name":"Egg","measure":"2"}
	]}]`

	recipes, err := Normalize(decode(t, payload), ModeByIngredients)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	want := []common.RecipeIngredient{
		{Index: 1, Name: "Salt", Measure: "1tsp"},
		{Index: 2, Name: "Egg", Measure: "2"},
	}
	assert.Equal(t, want, recipes[0].Ingredients)
}

func TestNormalizeInvalidShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		mode    Mode
	}{
		{"object when array expected", `{"strMeal":"Tea"}`, ModeByIngredients},
		{"array when object expected", `[{"strMeal":"Tea"}]`, ModeByName},
		{"scalar when object expected", `"Tea"`, ModeByName},
		{"array of scalars", `["Tea"]`, ModeByIngredients},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(decode(t, tt.payload), tt.mode)
			genErr, ok := AsGenerationError(err)
			require.True(t, ok)
			assert.Equal(t, KindInvalidShape, genErr.Kind)
		})
	}
}

func TestNormalizeMalformedIngredientEntries(t *testing.T) {
	// A malformed entry never fails normalization; it keeps its position
	// with empty fields.
	payload := `{"strMeal":"Soup","strIngredients":[
		{"name":"Leek"},
		"not an object",
		{"measure":"2 cups"}
	]}`

	recipes, err := Normalize(decode(t, payload), ModeByName)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	want := []common.RecipeIngredient{
		{Index: 1, Name: "Leek", Measure: ""},
		{Index: 2, Name: "", Measure: ""},
		{Index: 3, Name: "", Measure: "2 cups"},
	}
	assert.Equal(t, want, recipes[0].Ingredients)
}

func TestNormalizeFreshIDsAreUnique(t *testing.T) {
	payload := `[{"strMeal":"A"},{"strMeal":"B"},{"strMeal":"C"}]`

	recipes, err := Normalize(decode(t, payload), ModeByIngredients)
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	seen := make(map[string]struct{})
	for _, r := range recipes {
		assert.NotEmpty(t, r.ID)
		_, dup := seen[r.ID]
		assert.False(t, dup, "duplicate id %s", r.ID)
		seen[r.ID] = struct{}{}
	}
}

func TestNormalizeHonorsSuppliedID(t *testing.T) {
	recipes, err := Normalize(decode(t, `{"idMeal":"52771","strMeal":"Arrabiata"}`), ModeByName)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "52771", recipes[0].ID)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	decoded := decode(t, `{"strIngredients":[{"name":"Egg","measure":"2"}]}`)
	obj := decoded.(map[string]interface{})

	_, err := Normalize(decoded, ModeByName)
	require.NoError(t, err)

	// The source object still has only its original key, untouched.
	require.Len(t, obj, 1)
	entries := obj["strIngredients"].([]interface{})
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "Egg", entry["name"])
	assert.Equal(t, "2", entry["measure"])
	assert.Len(t, entry, 2)
}
