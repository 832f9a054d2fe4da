package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wordpath/backend/internal/auth"
	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for progress ledger business logic
type ProgressService interface {
	// RecordAction applies one learning action (known/unknown/master) to the
	// user's mastery state and touches the daily streak.
	//
	// "contentNumber" parameter is the content's ordering key, denormalized for cursor resumption.
	// If wrong parameters will be used or some error occurs during the write, the error will be returned.
	RecordAction(ctx context.Context, userID, contentID int, contentType models.ContentType, contentNumber int, action models.Action) error
	// GetProgress lists the user's progress records, optionally filtered by content type.
	//
	// An empty contentType returns records for all catalogs.
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetProgress(ctx context.Context, userID int, contentType models.ContentType) ([]models.ProgressRecord, error)
}

// ProgressHandler handles progress ledger HTTP requests
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(service ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router, authMiddleware, optionalAuthMiddleware func(http.Handler) http.Handler) {
	r.Route("/progress", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", h.RecordAction)
		})
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMiddleware)
			r.Get("/", h.GetProgress)
		})
	})
}

// RecordActionRequest represents a learning action submission
type RecordActionRequest struct {
	ContentID     int                `json:"contentId"`
	ContentType   models.ContentType `json:"contentType"`
	ContentNumber int                `json:"contentNumber"`
	Action        models.Action      `json:"action"`
}

// RecordAction handles POST /api/v1/progress
// @Summary Record a learning action
// @Description Upserts the user's mastery state for one content item and updates the daily streak. Requires authentication.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param action body RecordActionRequest true "Learning action"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad request - invalid body, content type or action"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/progress [post]
func (h *ProgressHandler) RecordAction(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		h.respondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req RecordActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.RecordAction(r.Context(), userID, req.ContentID, req.ContentType, req.ContentNumber, req.Action); err != nil {
		h.logger.Error("failed to record action", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid content type") || strings.Contains(err.Error(), "invalid action") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProgress handles GET /api/v1/progress
// @Summary Get progress records
// @Description Lists the user's mastery records. Anonymous callers get an empty list instead of an error.
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Content type filter: word, phrasal or idiom"
// @Success 200 {array} models.ProgressRecord "Progress records"
// @Failure 400 {object} map[string]string "Bad request - invalid content type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		// Anonymous reads degrade to an empty list
		h.respondJSON(w, http.StatusOK, []models.ProgressRecord{})
		return
	}

	contentType := models.ContentType(r.URL.Query().Get("type"))

	records, err := h.service.GetProgress(r.Context(), userID, contentType)
	if err != nil {
		h.logger.Error("failed to get progress", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid content type") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}
