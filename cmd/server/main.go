package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ai-app-builder-backend/internal/auth"
	"ai-app-builder-backend/internal/config"
	"ai-app-builder-backend/internal/generate"
	"ai-app-builder-backend/internal/handlers"
	"ai-app-builder-backend/internal/middleware"
	"ai-app-builder-backend/internal/openrouter"
	"ai-app-builder-backend/internal/store"
	"ai-app-builder-backend/web"
)

const maxBodyBytes = 2 << 20 // 2 MiB JSON body cap

func main() {
	// Load .env before the config layer reads the environment. A missing
	// file is the normal case in production.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Dependencies, leaves first.
	st := store.New(cfg.DataDir)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	var upstream generate.Completer
	if cfg.UpstreamEnabled() {
		upstream = openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBase, cfg.OpenRouterModel)
		sugar.Infow("openrouter upstream enabled", "base", cfg.OpenRouterBase, "model", cfg.OpenRouterModel)
	} else {
		sugar.Info("OPENROUTER_API_KEY not set, generation will use the template fallback")
	}
	genService := generate.NewService(upstream, sugar)

	authHandler := handlers.NewAuthHandler(st, tokens, sugar)
	generateHandler := handlers.NewGenerateHandler(genService, sugar)
	projectsHandler := handlers.NewProjectsHandler(st, sugar)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.BodyLimit(maxBodyBytes))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	api.GET("/health", handlers.HealthHandler)
	api.GET("/meta", handlers.MetaHandler)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/generate", generateHandler.Generate)
	api.POST("/preview", handlers.PreviewHandler)
	api.POST("/export", handlers.ExportHandler)

	projects := api.Group("/projects")
	projects.Use(middleware.Auth(tokens))
	projects.GET("", projectsHandler.List)
	projects.POST("", projectsHandler.Create)
	projects.GET("/:id", projectsHandler.Get)
	projects.PUT("/:id", projectsHandler.Update)
	projects.DELETE("/:id", projectsHandler.Delete)

	// Embedded single-page frontend at the root; API routes take precedence.
	router.NoRoute(gin.WrapH(http.FileServer(web.FS())))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server listen error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	sugar.Infow("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("forced shutdown", "error", err)
	}
}

func buildLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
