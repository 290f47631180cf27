package recipe

import (
	"net/http"

	recipeService "github.com/SujithaKC/AI-Recipes-maker/internal/core/recipe"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateByNameRequest asks for a recipe for a single dish.
type GenerateByNameRequest struct {
	DishName string `json:"dish_name" binding:"required"`
}

// GenerateByIngredientsRequest asks for recipes using the given ingredients.
type GenerateByIngredientsRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

// GenerateResponse carries the normalized recipes. ErrorKind is set when
// generation soft-failed and the list is empty for that reason.
type GenerateResponse struct {
	Recipes   []RecipeView `json:"recipes"`
	ErrorKind string       `json:"error_kind,omitempty"`
}

// Handler serves the recipe generation endpoints.
type Handler struct {
	service *recipeService.Service
}

// NewHandler creates a recipe handler.
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleGenerateByName generates one recipe for a dish name.
func (h *Handler) HandleGenerateByName(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req GenerateByNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("invalid generate request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("generating recipe by name",
		zap.String("dish_name", req.DishName),
		zap.String("request_id", requestID),
	)

	recipes, err := h.service.GenerateByName(c.Request.Context(), req.DishName)
	h.respond(c, requestID, recipes, err)
}

// HandleGenerateByIngredients generates recipes for a set of ingredients.
func (h *Handler) HandleGenerateByIngredients(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req GenerateByIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("invalid suggest request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("generating recipes by ingredients",
		zap.Int("ingredient_count", len(req.Ingredients)),
		zap.String("request_id", requestID),
	)

	recipes, err := h.service.GenerateByIngredients(c.Request.Context(), req.Ingredients)
	h.respond(c, requestID, recipes, err)
}

// respond maps a generation outcome onto the HTTP surface. Soft failures
// become an empty recipe list with the kind echoed for diagnostics; hard
// failures become 5xx.
func (h *Handler) respond(c *gin.Context, requestID string, recipes []common.Recipe, err error) {
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}

		genErr, ok := recipeService.AsGenerationError(err)
		if !ok {
			common.LogError("recipe generation failed",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Recipe generation failed",
				"code":  common.ErrCodeInternalError,
			})
			return
		}

		if genErr.Soft() {
			common.LogWarn("generation produced no usable recipes",
				zap.String("kind", string(genErr.Kind)),
				zap.String("detail", genErr.Detail),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusOK, GenerateResponse{
				Recipes:   []RecipeView{},
				ErrorKind: string(genErr.Kind),
			})
			return
		}

		common.LogError("recipe generation failed",
			zap.String("kind", string(genErr.Kind)),
			zap.Int("status", genErr.Status),
			zap.String("detail", genErr.Detail),
			zap.String("request_id", requestID),
		)
		switch genErr.Kind {
		case recipeService.KindMissingCredential:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": common.ErrMissingAPICred.Message,
				"code":  common.ErrMissingAPICred.Code,
			})
		default: // NetworkFailure, HttpError
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "AI service request failed",
				"code":  common.ErrAIServiceError.Code,
			})
		}
		return
	}

	legacy := c.Query("legacy_fields") == "true"
	views := make([]RecipeView, len(recipes))
	for i, r := range recipes {
		views[i] = NewRecipeView(r, legacy)
	}

	c.JSON(http.StatusOK, GenerateResponse{Recipes: views})
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
