package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SujithaKC/AI-Recipes-maker/internal/api"
	"github.com/SujithaKC/AI-Recipes-maker/internal/core/ai/cache"
	"github.com/SujithaKC/AI-Recipes-maker/internal/core/ai/gemini"
	recipeService "github.com/SujithaKC/AI-Recipes-maker/internal/core/recipe"
	"github.com/SujithaKC/AI-Recipes-maker/internal/core/wishlist"
	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/config"
	"github.com/SujithaKC/AI-Recipes-maker/internal/infrastructure/storage"
	"github.com/SujithaKC/AI-Recipes-maker/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.String("gemini_api_key", config.MaskAPIKey(cfg.Gemini.APIKey)),
		zap.String("gemini_model", cfg.Gemini.Model),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	cacheManager := cache.NewManager(cfg)
	if cfg.Cache.Enabled && cacheManager == nil {
		common.LogFatal("Failed to initialize cache manager")
	}
	defer cacheManager.Close()

	// Wishlist storage: redis when enabled, otherwise a non-durable
	// in-process fallback.
	var kv storage.KeyValue
	if cfg.Redis.Enabled {
		kv, err = storage.NewRedisStore(&cfg.Redis)
		if err != nil {
			common.LogError("Failed to connect wishlist storage", zap.Error(err))
			os.Exit(1)
		}
	} else {
		common.LogWarn("redis disabled, wishlist will not survive restarts")
		kv = storage.NewMemoryStore()
	}
	defer kv.Close()

	store, err := wishlist.NewStore(context.Background(), kv)
	if err != nil {
		common.LogError("Failed to open wishlist store", zap.Error(err))
		os.Exit(1)
	}

	generator := gemini.NewClient(cfg)
	defer generator.Close()

	generationSvc := recipeService.NewService(cfg, generator, cacheManager)

	router, err := api.SetupRouter(cfg, generationSvc, store)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting application",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
