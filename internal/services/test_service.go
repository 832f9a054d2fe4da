package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidTotal is returned when a session is completed with a non-positive question count
var ErrInvalidTotal = errors.New("totalQuestions must be positive")

const defaultHistoryLimit = 20

// AttemptRepository is the interface that wraps methods for Attempts table data access
type AttemptRepository interface {
	// Method Create appends one attempt record and fills its ID.
	//
	// If some error occurs during data insert, the error will be returned.
	Create(ctx context.Context, record *models.AttemptRecord) error
	// Method DistinctQuestionIDs returns the de-duplicated set of question IDs
	// the user has ever attempted for a test type.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	DistinctQuestionIDs(ctx context.Context, userID int, testType models.TestType) ([]string, error)
	// Method DeleteByUserAndType deletes all attempts for one user and test type.
	//
	// The number of rows removed will be returned.
	// If some error occurs during the delete, the error will be returned together with "0" value.
	DeleteByUserAndType(ctx context.Context, userID int, testType models.TestType) (int, error)
	// Method GetBySessionID retrieves all attempts belonging to one test session.
	//
	// Please reference DistinctQuestionIDs method for more information about error values.
	GetBySessionID(ctx context.Context, userID int, testSessionID string) ([]models.AttemptRecord, error)
	// Method CountsByType returns attempted and correct counts grouped by test type.
	//
	// Types the user never attempted are absent from the map.
	// Please reference DistinctQuestionIDs method for more information about error values.
	CountsByType(ctx context.Context, userID int) (map[models.TestType]models.TypeStat, error)
}

// SessionRepository is the interface that wraps methods for TestSessions table data access
type SessionRepository interface {
	// Method Create inserts one completed test session record and fills its ID.
	//
	// If some error occurs during data insert, the error will be returned.
	Create(ctx context.Context, record *models.TestSessionRecord) error
	// Method GetRecent retrieves up to "limit" test sessions for a user, newest first.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	GetRecent(ctx context.Context, userID, limit int) ([]models.TestSessionRecord, error)
	// Method GetBySessionID retrieves the test session with the given session ID.
	//
	// If no session exists for this user, (nil, nil) will be returned.
	// Please reference GetRecent method for more information about error values.
	GetBySessionID(ctx context.Context, userID int, testSessionID string) (*models.TestSessionRecord, error)
}

// testService implements TestService
type testService struct {
	attemptRepo AttemptRepository
	sessionRepo SessionRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewTestService creates a new quiz test service
func NewTestService(attemptRepo AttemptRepository, sessionRepo SessionRepository, logger *zap.Logger) *testService {
	return &testService{
		attemptRepo: attemptRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// RecordAttempt appends one answered question and reports whether the answer
// was correct (exact string equality). Mastery tracking is not touched.
func (s *testService) RecordAttempt(ctx context.Context, userID int, questionID string, testType models.TestType, selectedAnswer, correctAnswer, testSessionID string) (bool, error) {
	if !testType.Valid() {
		return false, fmt.Errorf("invalid test type: %s", testType)
	}
	if questionID == "" {
		return false, fmt.Errorf("questionId cannot be empty")
	}

	record := &models.AttemptRecord{
		UserID:         userID,
		QuestionID:     questionID,
		TestType:       testType,
		SelectedAnswer: selectedAnswer,
		CorrectAnswer:  correctAnswer,
		IsCorrect:      selectedAnswer == correctAnswer,
		AttemptDate:    s.now(),
		TestSessionID:  testSessionID,
	}

	if err := s.attemptRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to record attempt", zap.Error(err))
		return false, fmt.Errorf("failed to record attempt: %w", err)
	}

	return record.IsCorrect, nil
}

// ListAttempted returns the de-duplicated question IDs the user has attempted
// for a test type, used to filter already-seen questions from the bank
func (s *testService) ListAttempted(ctx context.Context, userID int, testType models.TestType) ([]string, error) {
	if !testType.Valid() {
		return nil, fmt.Errorf("invalid test type: %s", testType)
	}

	questionIDs, err := s.attemptRepo.DistinctQuestionIDs(ctx, userID, testType)
	if err != nil {
		s.logger.Error("failed to list attempted questions", zap.Error(err))
		return nil, fmt.Errorf("failed to list attempted questions: %w", err)
	}

	if questionIDs == nil {
		questionIDs = []string{}
	}
	return questionIDs, nil
}

// ResetAttempts deletes all attempts for one user and test type and returns
// the removed count. Historical session scores are untouched.
func (s *testService) ResetAttempts(ctx context.Context, userID int, testType models.TestType) (int, error) {
	if !testType.Valid() {
		return 0, fmt.Errorf("invalid test type: %s", testType)
	}

	deleted, err := s.attemptRepo.DeleteByUserAndType(ctx, userID, testType)
	if err != nil {
		s.logger.Error("failed to reset attempts", zap.Error(err))
		return 0, fmt.Errorf("failed to reset attempts: %w", err)
	}

	s.logger.Info("attempts reset", zap.Int("userId", userID), zap.String("testType", string(testType)), zap.Int("deleted", deleted))
	return deleted, nil
}

// CompleteSession records one finished quiz run as a single score row.
//
// Score is the rounded percentage of correct answers. A non-positive
// totalQuestions is rejected with ErrInvalidTotal. When no session ID is
// supplied, one is generated.
func (s *testService) CompleteSession(ctx context.Context, userID int, testType models.TestType, totalQuestions, correctAnswers int, testSessionID string) error {
	if !testType.Valid() {
		return fmt.Errorf("invalid test type: %s", testType)
	}
	if totalQuestions <= 0 {
		return ErrInvalidTotal
	}
	if correctAnswers < 0 || correctAnswers > totalQuestions {
		return fmt.Errorf("correctAnswers must be between 0 and %d, got: %d", totalQuestions, correctAnswers)
	}

	if testSessionID == "" {
		testSessionID = uuid.New().String()
	}

	record := &models.TestSessionRecord{
		UserID:         userID,
		TestType:       testType,
		Score:          roundPercent(correctAnswers, totalQuestions),
		TotalQuestions: totalQuestions,
		CorrectAnswers: correctAnswers,
		Date:           s.now(),
		TestSessionID:  testSessionID,
	}

	if err := s.sessionRepo.Create(ctx, record); err != nil {
		s.logger.Error("failed to complete session", zap.Error(err))
		return fmt.Errorf("failed to complete session: %w", err)
	}

	return nil
}

// GetHistory retrieves the user's completed sessions, newest first
func (s *testService) GetHistory(ctx context.Context, userID, limit int) ([]models.TestSessionRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.sessionRepo.GetRecent(ctx, userID, limit)
	if err != nil {
		s.logger.Error("failed to get session history", zap.Error(err))
		return nil, fmt.Errorf("failed to get session history: %w", err)
	}

	if records == nil {
		records = []models.TestSessionRecord{}
	}
	return records, nil
}

// GetSessionDetail joins one session with its attempts.
//
// Returns (nil, nil) when no session exists for this user.
func (s *testService) GetSessionDetail(ctx context.Context, userID int, testSessionID string) (*models.SessionDetail, error) {
	session, err := s.sessionRepo.GetBySessionID(ctx, userID, testSessionID)
	if err != nil {
		s.logger.Error("failed to get session", zap.Error(err))
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	attempts, err := s.attemptRepo.GetBySessionID(ctx, userID, testSessionID)
	if err != nil {
		s.logger.Error("failed to get session attempts", zap.Error(err))
		return nil, fmt.Errorf("failed to get session attempts: %w", err)
	}
	if attempts == nil {
		attempts = []models.AttemptRecord{}
	}

	return &models.SessionDetail{
		TestSessionRecord: *session,
		Attempts:          attempts,
	}, nil
}

// StatsByType reports attempted/correct/accuracy for every supported test
// type, including zeroed entries for types the user never attempted
func (s *testService) StatsByType(ctx context.Context, userID int) (map[models.TestType]models.TypeStat, error) {
	counts, err := s.attemptRepo.CountsByType(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get attempt counts", zap.Error(err))
		return nil, fmt.Errorf("failed to get attempt counts: %w", err)
	}

	stats := make(map[models.TestType]models.TypeStat, len(models.TestTypes))
	for _, testType := range models.TestTypes {
		stat := counts[testType]
		if stat.Attempted > 0 {
			stat.Accuracy = roundPercent(stat.Correct, stat.Attempted)
		}
		stats[testType] = stat
	}

	return stats, nil
}

// roundPercent computes round(100*part/total)
func roundPercent(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}
