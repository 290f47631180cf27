package api

import (
	"context"
	"time"

	"github.com/SujithaKC/AI-Recipes-maker/internal/api/handlers/health"
	recipeHandler "github.com/SujithaKC/AI-Recipes-maker/internal/api/handlers/recipe"
	wishlistHandler "github.com/SujithaKC/AI-Recipes-maker/internal/api/handlers/wishlist"
	"github.com/SujithaKC/AI-Recipes-maker/internal/api/middleware"
	recipeService "github.com/SujithaKC/AI-Recipes-maker/internal/core/recipe"
	wishlistStore "github.com/SujithaKC/AI-Recipes-maker/internal/core/wishlist"
	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/config"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// Generation calls can be slow; give them room.
	timeoutDuration = 120 * time.Second
	// Request body size limit (1MB); recipes are small.
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, generationSvc *recipeService.Service, store *wishlistStore.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// Request timeout and config injection.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Set("config", cfg)

		c.Next()
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	recipes := recipeHandler.NewHandler(generationSvc)
	wishlist := wishlistHandler.NewHandler(store)

	api := router.Group("/api/v1")
	{
		recipeGroup := api.Group("/recipe")
		recipeGroup.Use(middleware.Deduplication(cfg))
		{
			// Generate one recipe for a dish name.
			recipeGroup.POST("/generate", recipes.HandleGenerateByName)

			// Suggest recipes using available ingredients.
			recipeGroup.POST("/suggest", recipes.HandleGenerateByIngredients)
		}

		wishlistGroup := api.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlist.HandleList)
			wishlistGroup.GET("/ids", wishlist.HandleListIDs)
			wishlistGroup.GET("/:id", wishlist.HandleGet)
			wishlistGroup.POST("", wishlist.HandleAdd)
			wishlistGroup.POST("/toggle", wishlist.HandleToggle)
			wishlistGroup.DELETE("/:id", wishlist.HandleRemove)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
