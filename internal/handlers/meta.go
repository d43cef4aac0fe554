package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-app-builder-backend/internal/models"
)

// MetaHandler exposes the closed app-type and template sets so the frontend
// validates against the same values the server does.
func MetaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.MetaResponse{
		AppTypes:  models.AppTypes,
		Templates: models.Templates,
	})
}
