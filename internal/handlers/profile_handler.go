package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wordpath/backend/internal/auth"
	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps the profile aggregation logic
type ProfileService interface {
	// GetProfileStats assembles the profile dashboard snapshot for one user.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetProfileStats(ctx context.Context, userID int) (*models.ProfileStats, error)
}

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router, optionalAuthMiddleware func(http.Handler) http.Handler) {
	r.Route("/profile", func(r chi.Router) {
		r.With(optionalAuthMiddleware).Get("/stats", h.GetProfileStats)
	})
}

// GetProfileStats handles GET /api/v1/profile/stats
// @Summary Get profile dashboard statistics
// @Description Aggregates learning progress, quiz history and streak into one dashboard snapshot. Anonymous callers get null.
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ProfileStats "Profile statistics, or null when anonymous"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/profile/stats [get]
func (h *ProfileHandler) GetProfileStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondJSON(w, http.StatusOK, nil)
		return
	}

	stats, err := h.service.GetProfileStats(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get profile stats", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}
