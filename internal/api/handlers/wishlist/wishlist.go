package wishlist

import (
	"net/http"

	wishlistStore "github.com/SujithaKC/AI-Recipes-maker/internal/core/wishlist"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the wishlist endpoints.
type Handler struct {
	store *wishlistStore.Store
}

// NewHandler creates a wishlist handler.
func NewHandler(store *wishlistStore.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// ToggleResponse reports the membership state after a toggle.
type ToggleResponse struct {
	ID        string `json:"id"`
	Favorited bool   `json:"favorited"`
}

// HandleList returns every favorited recipe, in insertion order.
func (h *Handler) HandleList(c *gin.Context) {
	recipes, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		common.LogError("failed to list wishlist", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": common.ErrStorageFailure.Message,
			"code":  common.ErrStorageFailure.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// HandleListIDs returns the favorited recipe ids, in insertion order.
func (h *Handler) HandleListIDs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ids": h.store.ListIDs()})
}

// HandleGet returns one favorited recipe by id.
func (h *Handler) HandleGet(c *gin.Context) {
	id := c.Param("id")

	recipe, ok, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		common.LogError("failed to read wishlist entry",
			zap.String("id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": common.ErrStorageFailure.Message,
			"code":  common.ErrStorageFailure.Code,
		})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": common.ErrNotFound.Message,
			"code":  common.ErrNotFound.Code,
		})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// HandleAdd favorites a recipe. Adding an already-favorited id is a no-op.
func (h *Handler) HandleAdd(c *gin.Context) {
	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if err := h.store.Add(c.Request.Context(), recipe); err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
		common.LogError("failed to add wishlist entry",
			zap.String("id", recipe.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": common.ErrStorageFailure.Message,
			"code":  common.ErrStorageFailure.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": recipe.ID, "favorited": true})
}

// HandleToggle flips the favorite state of a recipe.
func (h *Handler) HandleToggle(c *gin.Context) {
	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	favorited, err := h.store.Toggle(c.Request.Context(), recipe)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
		common.LogError("failed to toggle wishlist entry",
			zap.String("id", recipe.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": common.ErrStorageFailure.Message,
			"code":  common.ErrStorageFailure.Code,
		})
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{ID: recipe.ID, Favorited: favorited})
}

// HandleRemove unfavorites an id. Removing an absent id is a no-op.
func (h *Handler) HandleRemove(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		common.LogError("failed to remove wishlist entry",
			zap.String("id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": common.ErrStorageFailure.Message,
			"code":  common.ErrStorageFailure.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "favorited": false})
}
