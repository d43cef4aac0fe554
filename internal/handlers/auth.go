package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai-app-builder-backend/internal/auth"
	"ai-app-builder-backend/internal/models"
	"ai-app-builder-backend/internal/store"
)

var errDuplicateEmail = errors.New("email already registered")

type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenManager
	log    *zap.SugaredLogger
}

func NewAuthHandler(st *store.Store, tokens *auth.TokenManager, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{store: st, tokens: tokens, log: log}
}

// Register creates a user, rejecting duplicate emails under case-folded
// comparison, and issues a bearer token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	// The duplicate check runs inside the store's writer lock so two
	// concurrent registrations of the same email cannot both slip through.
	err = h.store.UpdateUsers(func(doc *store.UsersDoc) error {
		for _, existing := range doc.Users {
			if strings.EqualFold(existing.Email, req.Email) {
				return errDuplicateEmail
			}
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if errors.Is(err, errDuplicateEmail) {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already registered"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to persist user", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to register"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Errorw("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to register"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user.Public()})
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password produce the identical response so accounts cannot be
// enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	doc, err := h.store.Users()
	if err != nil {
		h.log.Errorw("failed to read users", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to log in"})
		return
	}

	var user *models.User
	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Email, req.Email) {
			user = &doc.Users[i]
			break
		}
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		h.log.Errorw("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user.Public()})
}
