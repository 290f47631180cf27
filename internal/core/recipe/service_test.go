package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SujithaKC/AI-Recipes-maker/internal/core/ai/cache"
	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/config"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator returns a canned response and counts calls.
type fakeGenerator struct {
	status int
	body   []byte
	err    error
	calls  int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (int, []byte, error) {
	f.calls++
	return f.status, f.body, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			APIKey:    "test-key",
			Model:     "gemini-1.5-flash",
			MaxTokens: 2048,
		},
		Cache: config.CacheConfig{Enabled: false},
	}
}

// envelope wraps text in the generateContent response shape.
func envelope(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]string{"text": text},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return body
}

func TestGenerateByNameSuccess(t *testing.T) {
	gen := &fakeGenerator{
		status: http.StatusOK,
		body:   envelope(t, "```json\n{\"strMeal\":\"Omelette\",\"strCategory\":\"Breakfast\"}\n```"),
	}
	svc := NewService(testConfig(), gen, nil)

	recipes, err := svc.GenerateByName(context.Background(), "Omelette")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Omelette", recipes[0].Name)
	assert.Equal(t, "Breakfast", recipes[0].Category)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateByIngredientsSuccess(t *testing.T) {
	gen := &fakeGenerator{
		status: http.StatusOK,
		body:   envelope(t, `[{"strMeal":"Scramble"},{"strMeal":"Frittata"}]`),
	}
	svc := NewService(testConfig(), gen, nil)

	recipes, err := svc.GenerateByIngredients(context.Background(), []string{"eggs", " butter "})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Scramble", recipes[0].Name)
	assert.Equal(t, "Frittata", recipes[1].Name)
}

func TestGenerateMissingCredential(t *testing.T) {
	cfg := testConfig()
	cfg.Gemini.APIKey = ""
	gen := &fakeGenerator{status: http.StatusOK, body: envelope(t, "{}")}
	svc := NewService(cfg, gen, nil)

	_, err := svc.GenerateByName(context.Background(), "Tea")
	genErr, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, KindMissingCredential, genErr.Kind)
	assert.False(t, genErr.Soft())
	// The credential check happens before any external call.
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateHTTPError(t *testing.T) {
	gen := &fakeGenerator{
		status: http.StatusInternalServerError,
		body:   []byte("upstream exploded"),
	}
	svc := NewService(testConfig(), gen, nil)

	_, err := svc.GenerateByName(context.Background(), "Tea")
	genErr, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, KindHTTPError, genErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, genErr.Status)
	assert.Contains(t, genErr.Detail, "upstream exploded")
	assert.False(t, genErr.Soft())
}

func TestGenerateNetworkFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := NewService(testConfig(), gen, nil)

	_, err := svc.GenerateByName(context.Background(), "Tea")
	genErr, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetworkFailure, genErr.Kind)
	assert.False(t, genErr.Soft())
}

func TestGenerateEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"no candidates", []byte(`{}`)},
		{"empty text part", nil}, // filled below
		{"unparseable envelope", []byte("not json at all")},
	}
	tests[1].body = envelope(t, "")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{status: http.StatusOK, body: tt.body}
			svc := NewService(testConfig(), gen, nil)

			_, err := svc.GenerateByName(context.Background(), "Tea")
			genErr, ok := AsGenerationError(err)
			require.True(t, ok)
			assert.Equal(t, KindEmptyResponse, genErr.Kind)
			assert.True(t, genErr.Soft())
		})
	}
}

func TestGenerateParseFailure(t *testing.T) {
	gen := &fakeGenerator{
		status: http.StatusOK,
		body:   envelope(t, "Sure! Here is a recipe for tea."),
	}
	svc := NewService(testConfig(), gen, nil)

	_, err := svc.GenerateByName(context.Background(), "Tea")
	genErr, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, KindParseFailure, genErr.Kind)
	assert.True(t, genErr.Soft())
}

func TestGenerateRepairsBareKeys(t *testing.T) {
	gen := &fakeGenerator{
		status: http.StatusOK,
		body:   envelope(t, `{strMeal: "Tea", strCategory: "Drink"}`),
	}
	svc := NewService(testConfig(), gen, nil)

	recipes, err := svc.GenerateByName(context.Background(), "Tea")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Tea", recipes[0].Name)
	assert.Equal(t, "Drink", recipes[0].Category)
}

func TestGenerateInvalidShape(t *testing.T) {
	// By-ingredients expects an array; a single object is the wrong shape.
	gen := &fakeGenerator{
		status: http.StatusOK,
		body:   envelope(t, `{"strMeal":"Tea"}`),
	}
	svc := NewService(testConfig(), gen, nil)

	_, err := svc.GenerateByIngredients(context.Background(), []string{"tea leaves"})
	genErr, ok := AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidShape, genErr.Kind)
	assert.True(t, genErr.Soft())
}

func TestGenerateInputValidation(t *testing.T) {
	gen := &fakeGenerator{status: http.StatusOK, body: envelope(t, "{}")}
	svc := NewService(testConfig(), gen, nil)

	_, err := svc.GenerateByName(context.Background(), "   ")
	assert.True(t, common.IsValidationError(err))

	_, err = svc.GenerateByIngredients(context.Background(), nil)
	assert.True(t, common.IsValidationError(err))

	_, err = svc.GenerateByIngredients(context.Background(), []string{" ", ""})
	assert.True(t, common.IsValidationError(err))

	// Validation failures never reach the collaborator.
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateServesRepeatCallsFromCache(t *testing.T) {
	cfg := testConfig()
	cfg.Cache = config.CacheConfig{
		Enabled:         true,
		MaxSize:         10,
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	}
	manager := cache.NewManager(cfg)
	require.NotNil(t, manager)
	defer manager.Close()

	gen := &fakeGenerator{
		status: http.StatusOK,
		body:   envelope(t, `{"strMeal":"Omelette"}`),
	}
	svc := NewService(cfg, gen, manager)

	first, err := svc.GenerateByName(context.Background(), "Omelette")
	require.NoError(t, err)
	second, err := svc.GenerateByName(context.Background(), "Omelette")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, first[0].Name, second[0].Name)

	// A different dish is a different cache key.
	_, err = svc.GenerateByName(context.Background(), "Frittata")
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}
