package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-app-builder-backend/internal/generate"
	"ai-app-builder-backend/internal/models"
)

type GenerateHandler struct {
	service *generate.Service
	log     *zap.SugaredLogger
}

func NewGenerateHandler(service *generate.Service, log *zap.SugaredLogger) *GenerateHandler {
	return &GenerateHandler{service: service, log: log}
}

// Generate runs the pipeline for one request. The upstream call is issued
// on a background context on purpose: a client disconnect does not cancel
// the completion, the result is simply discarded with the response.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	resp, err := h.service.Generate(context.Background(), req)
	if errors.Is(err, generate.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if err != nil {
		h.log.Errorw("generation failed", "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "generation failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
