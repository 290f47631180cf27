package common

// Field defaults applied during normalization. A Recipe that went through
// the normalizer never carries an empty field, only these placeholders.
const (
	DefaultName         = "Unknown"
	DefaultCategory     = "Unknown"
	DefaultCuisine      = "Unknown"
	DefaultInstructions = "No instructions."
)

// Recipe is the canonical recipe record. Every field is populated after
// normalization; absent source data is replaced with the defaults above.
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	Cuisine      string             `json:"cuisine"`
	Instructions string             `json:"instructions"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// RecipeIngredient is one entry of the flattened ingredient list. Index is
// positional, 1-based and contiguous in source order.
type RecipeIngredient struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Measure string `json:"measure"`
}
