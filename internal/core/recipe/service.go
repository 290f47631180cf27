package recipe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SujithaKC/AI-Recipes-maker/internal/core/ai/cache"
	"github.com/SujithaKC/AI-Recipes-maker/internal/core/ai/gemini"
	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/config"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"go.uber.org/zap"
)

// TextGenerator is the external text-generation collaborator. It returns
// the HTTP status and raw response body of a single call; it performs no
// retries and no interpretation of the body.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (status int, body []byte, err error)
}

// Service orchestrates recipe generation: prompt build, collaborator call,
// sanitization, decoding and normalization. One external call per
// invocation; retrying is the caller's decision.
type Service struct {
	config    *config.Config
	generator TextGenerator
	cache     *cache.Manager
}

// NewService creates a generation service. cacheManager may be nil.
func NewService(cfg *config.Config, generator TextGenerator, cacheManager *cache.Manager) *Service {
	return &Service{
		config:    cfg,
		generator: generator,
		cache:     cacheManager,
	}
}

// GenerateByName generates a single recipe for a dish name.
func (s *Service) GenerateByName(ctx context.Context, dishName string) ([]common.Recipe, error) {
	if strings.TrimSpace(dishName) == "" {
		return nil, common.NewValidationError("dish name is required")
	}
	return s.generate(ctx, ModeByName, BuildByNamePrompt(dishName))
}

// GenerateByIngredients generates recipes using the given ingredients.
func (s *Service) GenerateByIngredients(ctx context.Context, ingredients []string) ([]common.Recipe, error) {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if v := strings.TrimSpace(ing); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return nil, common.NewValidationError("at least one ingredient is required")
	}
	return s.generate(ctx, ModeByIngredients, BuildByIngredientsPrompt(cleaned))
}

func (s *Service) generate(ctx context.Context, mode Mode, prompt string) ([]common.Recipe, error) {
	if s.config.Gemini.APIKey == "" {
		return nil, newGenerationError(KindMissingCredential,
			"gemini api key is not configured", nil)
	}

	payload, cached := s.cache.Get(ctx, string(mode), prompt)
	if !cached {
		var err error
		payload, err = s.fetch(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, string(mode), prompt, payload); err != nil {
			common.LogWarn("failed to cache model payload", zap.Error(err))
		}
	}

	decoded, err := decodePayload(payload)
	if err != nil {
		common.LogWarn("model payload is not valid JSON",
			zap.String("mode", string(mode)),
			zap.Int("payload_length", len(payload)),
			zap.Error(err),
		)
		return nil, newGenerationError(KindParseFailure, err.Error(), err)
	}

	recipes, err := Normalize(decoded, mode)
	if err != nil {
		return nil, err
	}

	common.LogInfo("recipes generated",
		zap.String("mode", string(mode)),
		zap.Int("count", len(recipes)),
		zap.Bool("cache_hit", cached),
	)
	return recipes, nil
}

// fetch performs the single external call and reduces it to the sanitized
// text payload.
func (s *Service) fetch(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	status, body, err := s.generator.Generate(ctx, prompt)
	common.LogAICall(prompt, time.Since(start), err, "")

	if err != nil {
		return "", newGenerationError(KindNetworkFailure, err.Error(), err)
	}
	if status != http.StatusOK {
		return "", newHTTPError(status, truncate(string(body), 512))
	}

	text := ""
	if envelope, perr := gemini.ParseResponse(body); perr == nil {
		text = envelope.Text()
	}
	payload := Sanitize(text)
	if payload == "" {
		return "", newGenerationError(KindEmptyResponse,
			"response envelope carries no text payload", nil)
	}
	return payload, nil
}

// decodePayload decodes the sanitized payload into a generic JSON value,
// retrying once with quoted keys when the model emitted bare keys.
func decodePayload(payload string) (interface{}, error) {
	var decoded interface{}
	if err := common.ParseJSON(payload, &decoded); err != nil {
		repaired := common.QuoteJSONKeys(payload)
		if repaired == payload {
			return nil, err
		}
		var second interface{}
		if err2 := common.ParseJSON(repaired, &second); err2 != nil {
			return nil, err
		}
		return second, nil
	}
	return decoded, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return fmt.Sprintf("%s... (%d bytes total)", s[:max], len(s))
}
