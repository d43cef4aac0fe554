package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-app-builder-backend/internal/models"
	"ai-app-builder-backend/internal/preview"
)

// PreviewHandler composes a bundle into one standalone HTML document for
// in-frame rendering.
func PreviewHandler(c *gin.Context) {
	var req models.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(preview.Compose(req.Files)))
}
