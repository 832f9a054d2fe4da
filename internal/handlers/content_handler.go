package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wordpath/backend/internal/auth"
	"github.com/wordpath/backend/internal/models"
	"github.com/wordpath/backend/internal/services"
	"go.uber.org/zap"
)

// ContentService is the interface that wraps methods for content catalog business logic
type ContentService interface {
	// NextBatch returns the next batch of words for the user to learn.
	//
	// "userID" parameter identifies the user; 0 means anonymous and starts at step 1.
	// "batchSize" parameter caps the number of items returned; values <= 0 use the default.
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	NextBatch(ctx context.Context, userID, batchSize int) ([]models.ContentItem, error)
	// Seed inserts catalog items that are not present yet and returns the number inserted.
	//
	// Items whose (type, step) already exists are skipped, so seeding is idempotent per catalog.
	// If some error occurs during data insert, the error will be returned together with the partial count.
	Seed(ctx context.Context, items []models.ContentItem) (int, error)
	// AddContribution appends new hindi meanings or synonyms to a catalog item.
	//
	// "kind" parameter selects the list to extend; please reference ContributionKind constants.
	// Returns services.ErrContentNotFound when the content does not exist.
	AddContribution(ctx context.Context, contentID int, kind models.ContributionKind, items []string) (*models.ContributionResult, error)
}

// ContentHandler handles content catalog HTTP requests
type ContentHandler struct {
	BaseHandler
	service ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(service ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all content handler routes
func (h *ContentHandler) RegisterRoutes(r chi.Router, authMiddleware, optionalAuthMiddleware, apiKeyMiddleware func(http.Handler) http.Handler) {
	r.Route("/contents", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMiddleware)
			r.Get("/next", h.GetNextBatch)
		})
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware)
			r.Post("/seed", h.SeedCatalog)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/{id}/contributions", h.AddContribution)
		})
	})
}

// GetNextBatch handles GET /api/v1/contents/next
// @Summary Get the next batch of words to learn
// @Description Resumes word presentation at max(contentNumber touched)+1 for the authenticated user; anonymous callers start at step 1.
// @Tags contents
// @Produce json
// @Security ApiKeyAuth
// @Param count query int false "Batch size, default: 10"
// @Success 200 {array} models.ContentItem "Ordered batch of content items"
// @Failure 400 {object} map[string]string "Bad request - invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/contents/next [get]
func (h *ContentHandler) GetNextBatch(w http.ResponseWriter, r *http.Request) {
	// Anonymous callers resolve to userID 0
	userID, _ := auth.GetUserID(r.Context())

	count := 0
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil {
			h.logger.Error("failed to parse count parameter", zap.Error(err))
			h.respondError(w, http.StatusBadRequest, "invalid count parameter")
			return
		}
		count = parsed
	}

	items, err := h.service.NextBatch(r.Context(), userID, count)
	if err != nil {
		h.logger.Error("failed to get next batch", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// SeedRequest represents a catalog seed request
type SeedRequest struct {
	Items []models.ContentItem `json:"items"`
}

// SeedResponse represents a catalog seed result
type SeedResponse struct {
	InsertedCount int `json:"insertedCount"`
}

// SeedCatalog handles POST /api/v1/contents/seed
// @Summary Seed the content catalog
// @Description Bulk-inserts catalog items, skipping any (type, step) that already exists. Requires the service API key.
// @Tags contents
// @Accept json
// @Produce json
// @Param items body SeedRequest true "Catalog items"
// @Success 200 {object} SeedResponse "Number of items actually inserted"
// @Failure 400 {object} map[string]string "Bad request - invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized - invalid API key"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/contents/seed [post]
func (h *ContentHandler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Items) == 0 {
		h.respondError(w, http.StatusBadRequest, "items array cannot be empty")
		return
	}

	inserted, err := h.service.Seed(r.Context(), req.Items)
	if err != nil {
		h.logger.Error("failed to seed catalog", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "step must be positive") || strings.Contains(err.Error(), "invalid content type") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, SeedResponse{InsertedCount: inserted})
}

// ContributionRequest represents a contribution submission
type ContributionRequest struct {
	Kind  models.ContributionKind `json:"kind"`
	Items []string                `json:"items"`
}

// AddContribution handles POST /api/v1/contents/{id}/contributions
// @Summary Contribute hindi meanings or synonyms to a catalog item
// @Description Appends entries not already present, preserving existing order. Requires authentication.
// @Tags contents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Content ID"
// @Param contribution body ContributionRequest true "Contribution"
// @Success 200 {object} models.ContributionResult "Number of entries actually added"
// @Failure 400 {object} map[string]string "Bad request - invalid body or kind"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 404 {object} map[string]string "Content not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/contents/{id}/contributions [post]
func (h *ContentHandler) AddContribution(w http.ResponseWriter, r *http.Request) {
	contentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid content id")
		return
	}

	var req ContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.AddContribution(r.Context(), contentID, req.Kind, req.Items)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to add contribution", zap.Error(err))
		statusCode := http.StatusInternalServerError
		errMsg := err.Error()
		if strings.Contains(errMsg, "invalid contribution kind") || errMsg == "items list cannot be empty" {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, errMsg)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
