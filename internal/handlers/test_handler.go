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

// TestService is the interface that wraps methods for quiz attempt and session business logic
type TestService interface {
	// RecordAttempt appends one answered question and reports whether the answer was correct.
	//
	// If wrong parameters will be used or some error occurs during the write, the error will be returned.
	RecordAttempt(ctx context.Context, userID int, questionID string, testType models.TestType, selectedAnswer, correctAnswer, testSessionID string) (bool, error)
	// ListAttempted returns the de-duplicated question IDs the user has attempted for a test type.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	ListAttempted(ctx context.Context, userID int, testType models.TestType) ([]string, error)
	// ResetAttempts deletes all attempts for one user and test type and returns the removed count.
	//
	// Historical session scores are untouched.
	ResetAttempts(ctx context.Context, userID int, testType models.TestType) (int, error)
	// CompleteSession records one finished quiz run as a single score row.
	//
	// Returns services.ErrInvalidTotal when totalQuestions is not positive.
	CompleteSession(ctx context.Context, userID int, testType models.TestType, totalQuestions, correctAnswers int, testSessionID string) error
	// GetHistory retrieves the user's completed sessions, newest first.
	//
	// "limit" parameter caps the result; values <= 0 use the default of 20.
	GetHistory(ctx context.Context, userID, limit int) ([]models.TestSessionRecord, error)
	// GetSessionDetail joins one session with its attempts, or returns (nil, nil) when absent.
	GetSessionDetail(ctx context.Context, userID int, testSessionID string) (*models.SessionDetail, error)
	// StatsByType reports attempted/correct/accuracy for every supported test type.
	StatsByType(ctx context.Context, userID int) (map[models.TestType]models.TypeStat, error)
}

// TestHandler handles quiz attempt and session HTTP requests
type TestHandler struct {
	BaseHandler
	service TestService
}

// NewTestHandler creates a new test handler
func NewTestHandler(service TestService, logger *zap.Logger) *TestHandler {
	return &TestHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all test handler routes
func (h *TestHandler) RegisterRoutes(r chi.Router, authMiddleware, optionalAuthMiddleware func(http.Handler) http.Handler) {
	r.Route("/tests", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/attempts", h.RecordAttempt)
			r.Delete("/attempts", h.ResetAttempts)
			r.Post("/sessions", h.CompleteSession)
		})
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMiddleware)
			r.Get("/attempts", h.ListAttempted)
			r.Get("/sessions", h.GetHistory)
			r.Get("/sessions/{testSessionId}", h.GetSessionDetail)
			r.Get("/stats", h.GetStats)
		})
	})
}

// RecordAttemptRequest represents one answered quiz question
type RecordAttemptRequest struct {
	QuestionID     string          `json:"questionId"`
	TestType       models.TestType `json:"testType"`
	SelectedAnswer string          `json:"selectedAnswer"`
	CorrectAnswer  string          `json:"correctAnswer"`
	TestSessionID  string          `json:"testSessionId"`
}

// RecordAttemptResponse carries the immediate correctness feedback
type RecordAttemptResponse struct {
	IsCorrect bool `json:"isCorrect"`
}

// RecordAttempt handles POST /api/v1/tests/attempts
// @Summary Record a quiz attempt
// @Description Appends one answered question and returns whether the answer was correct. Requires authentication.
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param attempt body RecordAttemptRequest true "Attempt"
// @Success 200 {object} RecordAttemptResponse "Correctness feedback"
// @Failure 400 {object} map[string]string "Bad request - invalid body or test type"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/attempts [post]
func (h *TestHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		h.respondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req RecordAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	isCorrect, err := h.service.RecordAttempt(r.Context(), userID, req.QuestionID, req.TestType, req.SelectedAnswer, req.CorrectAnswer, req.TestSessionID)
	if err != nil {
		h.logger.Error("failed to record attempt", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid test type") || strings.Contains(err.Error(), "cannot be empty") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, RecordAttemptResponse{IsCorrect: isCorrect})
}

// ListAttempted handles GET /api/v1/tests/attempts
// @Summary List attempted question IDs
// @Description Returns the de-duplicated question IDs the user has attempted for a test type. Anonymous callers get an empty list.
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param testType query string true "Test type"
// @Success 200 {array} string "Question IDs"
// @Failure 400 {object} map[string]string "Bad request - invalid test type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/attempts [get]
func (h *TestHandler) ListAttempted(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		// Anonymous reads degrade to "nothing attempted" so callers show everything
		h.respondJSON(w, http.StatusOK, []string{})
		return
	}

	testType := models.TestType(r.URL.Query().Get("testType"))

	questionIDs, err := h.service.ListAttempted(r.Context(), userID, testType)
	if err != nil {
		h.logger.Error("failed to list attempted questions", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid test type") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, questionIDs)
}

// ResetAttemptsResponse carries the number of removed attempt records
type ResetAttemptsResponse struct {
	Deleted int `json:"deleted"`
}

// ResetAttempts handles DELETE /api/v1/tests/attempts
// @Summary Reset attempts for one test type
// @Description Deletes all of the user's attempts for a test type so the question bank can be replayed. Session history is untouched. Requires authentication.
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param testType query string true "Test type"
// @Success 200 {object} ResetAttemptsResponse "Number of deleted attempts"
// @Failure 400 {object} map[string]string "Bad request - invalid test type"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/attempts [delete]
func (h *TestHandler) ResetAttempts(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		h.respondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	testType := models.TestType(r.URL.Query().Get("testType"))

	deleted, err := h.service.ResetAttempts(r.Context(), userID, testType)
	if err != nil {
		h.logger.Error("failed to reset attempts", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid test type") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, ResetAttemptsResponse{Deleted: deleted})
}

// CompleteSessionRequest represents a finished quiz run
type CompleteSessionRequest struct {
	TestType       models.TestType `json:"testType"`
	TotalQuestions int             `json:"totalQuestions"`
	CorrectAnswers int             `json:"correctAnswers"`
	TestSessionID  string          `json:"testSessionId"`
}

// CompleteSession handles POST /api/v1/tests/sessions
// @Summary Complete a quiz session
// @Description Records one finished quiz run as a single rounded-percentage score. Requires authentication.
// @Tags tests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body CompleteSessionRequest true "Completed session"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad request - invalid body, test type or question counts"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/sessions [post]
func (h *TestHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.logger.Error("user ID not found in context")
		h.respondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.service.CompleteSession(r.Context(), userID, req.TestType, req.TotalQuestions, req.CorrectAnswers, req.TestSessionID)
	if err != nil {
		h.logger.Error("failed to complete session", zap.Error(err))
		statusCode := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidTotal) ||
			strings.Contains(err.Error(), "invalid test type") ||
			strings.Contains(err.Error(), "correctAnswers must be between") {
			statusCode = http.StatusBadRequest
		}
		h.respondError(w, statusCode, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetHistory handles GET /api/v1/tests/sessions
// @Summary Get quiz session history
// @Description Returns completed sessions newest first. Anonymous callers get an empty list.
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum sessions to return, default: 20"
// @Success 200 {array} models.TestSessionRecord "Session history"
// @Failure 400 {object} map[string]string "Bad request - invalid limit"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/sessions [get]
func (h *TestHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondJSON(w, http.StatusOK, []models.TestSessionRecord{})
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	sessions, err := h.service.GetHistory(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("failed to get session history", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, sessions)
}

// GetSessionDetail handles GET /api/v1/tests/sessions/{testSessionId}
// @Summary Get one quiz session with its attempts
// @Description Joins the session record with every attempt sharing its session ID. Returns null when no such session exists for this user.
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Param testSessionId path string true "Test session ID"
// @Success 200 {object} models.SessionDetail "Session detail, or null when absent"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/sessions/{testSessionId} [get]
func (h *TestHandler) GetSessionDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondJSON(w, http.StatusOK, nil)
		return
	}

	testSessionID := chi.URLParam(r, "testSessionId")

	detail, err := h.service.GetSessionDetail(r.Context(), userID, testSessionID)
	if err != nil {
		h.logger.Error("failed to get session detail", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// detail is nil for an unknown session; render as JSON null, not 404
	h.respondJSON(w, http.StatusOK, detail)
}

// GetStats handles GET /api/v1/tests/stats
// @Summary Get per-type attempt statistics
// @Description Returns attempted/correct/accuracy for each test type. Anonymous callers get zeroed entries.
// @Tags tests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]models.TypeStat "Stats keyed by test type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/v1/tests/stats [get]
func (h *TestHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		zeroed := make(map[models.TestType]models.TypeStat, len(models.TestTypes))
		for _, testType := range models.TestTypes {
			zeroed[testType] = models.TypeStat{}
		}
		h.respondJSON(w, http.StatusOK, zeroed)
		return
	}

	stats, err := h.service.StatsByType(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get attempt stats", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}
