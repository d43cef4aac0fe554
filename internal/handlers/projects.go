package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai-app-builder-backend/internal/middleware"
	"ai-app-builder-backend/internal/models"
	"ai-app-builder-backend/internal/store"
)

var errProjectNotFound = errors.New("project not found")

// ProjectsHandler serves the per-user project collection. Every operation
// is scoped to the authenticated owner; a project belonging to someone else
// is indistinguishable from one that does not exist.
type ProjectsHandler struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewProjectsHandler(st *store.Store, log *zap.SugaredLogger) *ProjectsHandler {
	return &ProjectsHandler{store: st, log: log}
}

func callerID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}
	return v.(string), true
}

func (h *ProjectsHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	doc, err := h.store.Projects()
	if err != nil {
		h.log.Errorw("failed to read projects", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list projects"})
		return
	}

	mine := make([]models.Project, 0)
	for _, p := range doc.Projects {
		if p.UserID == userID {
			mine = append(mine, p)
		}
	}

	c.JSON(http.StatusOK, mine)
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Files:     req.Files,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := h.store.UpdateProjects(func(doc *store.ProjectsDoc) error {
		doc.Projects = append(doc.Projects, project)
		return nil
	})
	if err != nil {
		h.log.Errorw("failed to persist project", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectsHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	doc, err := h.store.Projects()
	if err != nil {
		h.log.Errorw("failed to read projects", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read project"})
		return
	}

	for _, p := range doc.Projects {
		if p.ID == c.Param("id") && p.UserID == userID {
			c.JSON(http.StatusOK, p)
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
}

// Update replaces name and files and re-stamps updatedAt; id, userId and
// createdAt survive the rewrite.
func (h *ProjectsHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	var updated models.Project
	err := h.store.UpdateProjects(func(doc *store.ProjectsDoc) error {
		for i := range doc.Projects {
			if doc.Projects[i].ID == c.Param("id") && doc.Projects[i].UserID == userID {
				doc.Projects[i].Name = req.Name
				doc.Projects[i].Files = req.Files
				doc.Projects[i].UpdatedAt = time.Now().UTC()
				updated = doc.Projects[i]
				return nil
			}
		}
		return errProjectNotFound
	})
	if errors.Is(err, errProjectNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to update project", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update project"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProjectsHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	err := h.store.UpdateProjects(func(doc *store.ProjectsDoc) error {
		kept := doc.Projects[:0]
		found := false
		for _, p := range doc.Projects {
			if p.ID == c.Param("id") && p.UserID == userID {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		if !found {
			return errProjectNotFound
		}
		doc.Projects = kept
		return nil
	})
	if errors.Is(err, errProjectNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to delete project", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
