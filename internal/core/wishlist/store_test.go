package wishlist

import (
	"context"
	"testing"

	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/storage"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecipe(id, name string) common.Recipe {
	return common.Recipe{
		ID:           id,
		Name:         name,
		Category:     "Breakfast",
		Cuisine:      "French",
		Instructions: "Cook it.",
		Ingredients: []common.RecipeIngredient{
			{Index: 1, Name: "Eggs", Measure: "3"},
		},
	}
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	store, err := NewStore(context.Background(), kv)
	require.NoError(t, err)
	return store, kv
}

func TestAddGetRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	recipe := sampleRecipe("r1", "Omelette")

	require.NoError(t, store.Add(ctx, recipe))
	assert.True(t, store.Contains("r1"))
	assert.Equal(t, []string{"r1"}, store.ListIDs())

	got, ok, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, recipe, got)

	require.NoError(t, store.Remove(ctx, "r1"))
	assert.False(t, store.Contains("r1"))
	assert.Empty(t, store.ListIDs())

	_, ok, err = store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Add(ctx, sampleRecipe("r1", "Omelette")))
	require.NoError(t, store.Add(ctx, sampleRecipe("r1", "Omelette")))

	assert.Equal(t, []string{"r1"}, store.ListIDs())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Remove(context.Background(), "ghost"))
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Add(ctx, sampleRecipe(id, id)))
	}
	assert.Equal(t, []string{"a", "b", "c"}, store.ListIDs())

	require.NoError(t, store.Remove(ctx, "b"))
	assert.Equal(t, []string{"a", "c"}, store.ListIDs())

	// Re-adding a removed id appends it at the end.
	require.NoError(t, store.Add(ctx, sampleRecipe("b", "b")))
	assert.Equal(t, []string{"a", "c", "b"}, store.ListIDs())
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	recipe := sampleRecipe("r1", "Omelette")

	favorited, err := store.Toggle(ctx, recipe)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.True(t, store.Contains("r1"))

	favorited, err = store.Toggle(ctx, recipe)
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.False(t, store.Contains("r1"))
}

func TestValidationRejectsEmptyID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	err := store.Add(ctx, common.Recipe{Name: "Nameless"})
	assert.True(t, common.IsValidationError(err))

	_, err = store.Toggle(ctx, common.Recipe{})
	assert.True(t, common.IsValidationError(err))
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Add(ctx, sampleRecipe("r1", "Omelette")))
	require.NoError(t, store.Add(ctx, sampleRecipe("r2", "Frittata")))

	recipes, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Omelette", recipes[0].Name)
	assert.Equal(t, "Frittata", recipes[1].Name)
}

func TestListAllSkipsUnreadableEntries(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)

	require.NoError(t, store.Add(ctx, sampleRecipe("r1", "Omelette")))
	require.NoError(t, store.Add(ctx, sampleRecipe("r2", "Frittata")))

	// Drop one record out from under the index.
	require.NoError(t, kv.Delete(ctx, "recipe_r1"))

	recipes, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Frittata", recipes[0].Name)

	// The index itself is untouched.
	assert.Equal(t, []string{"r1", "r2"}, store.ListIDs())
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore(t)

	require.NoError(t, store.Add(ctx, sampleRecipe("r1", "Omelette")))
	require.NoError(t, store.Add(ctx, sampleRecipe("r2", "Frittata")))

	reopened, err := NewStore(ctx, kv)
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2"}, reopened.ListIDs())
	assert.True(t, reopened.Contains("r1"))

	got, ok, err := reopened.Get(ctx, "r2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Frittata", got.Name)
}
