package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-app-builder-backend/internal/archive"
	"ai-app-builder-backend/internal/models"
)

// ExportHandler streams a bundle as a ZIP download named {name}.zip.
func ExportHandler(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "generated-app"
	}
	// Keep the attachment name safe for the Content-Disposition header.
	name = strings.NewReplacer(`"`, "", "\\", "", "\r", "", "\n", "").Replace(name)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.zip"`, name))
	c.Header("Content-Type", "application/zip")
	c.Status(http.StatusOK)

	if err := archive.WriteZip(c.Writer, req.Files); err != nil {
		// Headers are already out; nothing to do but drop the connection.
		c.Abort()
	}
}
