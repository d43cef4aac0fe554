package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ai-app-builder-backend/internal/auth"
	"ai-app-builder-backend/internal/generate"
	"ai-app-builder-backend/internal/handlers"
	"ai-app-builder-backend/internal/middleware"
	"ai-app-builder-backend/internal/models"
	"ai-app-builder-backend/internal/store"
)

// newTestRouter wires the full API surface against a throwaway store, the
// way cmd/server does. upstream may be nil to exercise the unconfigured
// path.
func newTestRouter(t *testing.T, upstream generate.Completer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sugar := zap.NewNop().Sugar()
	st := store.New(t.TempDir())
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	authHandler := handlers.NewAuthHandler(st, tokens, sugar)
	generateHandler := handlers.NewGenerateHandler(generate.NewService(upstream, sugar), sugar)
	projectsHandler := handlers.NewProjectsHandler(st, sugar)

	router := gin.New()
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

	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email, password string) models.AuthResponse {
	t.Helper()
	w := doJSON(router, "POST", "/api/auth/register", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}
