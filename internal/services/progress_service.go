package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressRepository is the interface that wraps methods for Progress table data access
type ProgressRepository interface {
	// Method Get retrieves the progress record for one (user, content, type) key.
	//
	// "userID", "contentID" and "contentType" parameters together identify the record.
	// If no record exists, (nil, nil) will be returned.
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	Get(ctx context.Context, userID, contentID int, contentType models.ContentType) (*models.ProgressRecord, error)
	// Method Upsert inserts or updates a progress record keyed by (user, content, type).
	//
	// The write is a single conditional statement, so it can never create a second
	// record for the same key.
	// If some error occurs during data upsert, the error will be returned.
	Upsert(ctx context.Context, record *models.ProgressRecord) error
	// Method GetByUser lists all progress records for a user.
	//
	// "contentType" parameter filters by catalog when non-empty.
	// Please reference Get method for more information about other parameters and error values.
	GetByUser(ctx context.Context, userID int, contentType models.ContentType) ([]models.ProgressRecord, error)
}

// StreakRepository is the interface that wraps methods for Streak table data access
type StreakRepository interface {
	// Method Get retrieves the streak record for a user.
	//
	// If the user has no record yet, (nil, nil) will be returned.
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	Get(ctx context.Context, userID int) (*models.StreakRecord, error)
	// Method Upsert inserts or updates the streak record keyed by user ID.
	//
	// If some error occurs during data upsert, the error will be returned.
	Upsert(ctx context.Context, record *models.StreakRecord) error
}

// progressService implements ProgressService
type progressService struct {
	progressRepo ProgressRepository
	streakRepo   StreakRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo ProgressRepository, streakRepo StreakRepository, logger *zap.Logger) *progressService {
	return &progressService{
		progressRepo: progressRepo,
		streakRepo:   streakRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// RecordAction applies one learning action to the user's mastery state and
// touches the daily streak as part of the same logical action.
//
// Mastery transitions:
//
// - "known" raises the level by one, capped at 5
//
// - "master" sets the level to 5 unconditionally
//
// - "unknown" drops any previously-touched item to level 1; an item never
// learned stays at 0
//
// Exactly one progress upsert and one streak upsert happen per call.
func (s *progressService) RecordAction(ctx context.Context, userID, contentID int, contentType models.ContentType, contentNumber int, action models.Action) error {
	if !contentType.Valid() {
		return fmt.Errorf("invalid content type: %s", contentType)
	}
	if !action.Valid() {
		return fmt.Errorf("invalid action: %s", action)
	}

	now := s.now()

	existing, err := s.progressRepo.Get(ctx, userID, contentID, contentType)
	if err != nil {
		s.logger.Error("failed to get progress record", zap.Error(err))
		return fmt.Errorf("failed to get progress record: %w", err)
	}

	current := 0
	if existing != nil {
		current = existing.MasteryLevel
	}

	record := &models.ProgressRecord{
		UserID:        userID,
		ContentID:     contentID,
		ContentType:   contentType,
		MasteryLevel:  nextMasteryLevel(current, action),
		ContentNumber: contentNumber,
		LastReviewed:  now,
	}

	if err := s.progressRepo.Upsert(ctx, record); err != nil {
		s.logger.Error("failed to upsert progress record", zap.Error(err))
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}

	if err := s.touchStreak(ctx, userID, now); err != nil {
		s.logger.Error("failed to touch streak", zap.Error(err))
		return fmt.Errorf("failed to touch streak: %w", err)
	}

	return nil
}

// GetProgress lists the user's progress records, optionally filtered by content type
func (s *progressService) GetProgress(ctx context.Context, userID int, contentType models.ContentType) ([]models.ProgressRecord, error) {
	if contentType != "" && !contentType.Valid() {
		return nil, fmt.Errorf("invalid content type: %s", contentType)
	}

	records, err := s.progressRepo.GetByUser(ctx, userID, contentType)
	if err != nil {
		s.logger.Error("failed to get progress records", zap.Error(err))
		return nil, fmt.Errorf("failed to get progress records: %w", err)
	}

	if records == nil {
		records = []models.ProgressRecord{}
	}
	return records, nil
}

// nextMasteryLevel computes the mastery level after one learning action
func nextMasteryLevel(current int, action models.Action) int {
	switch action {
	case models.ActionKnown:
		if current >= models.MasteryMax {
			return models.MasteryMax
		}
		return current + 1
	case models.ActionMaster:
		return models.MasteryMax
	default: // models.ActionUnknown
		if current > 0 {
			return 1
		}
		return 0
	}
}

// touchStreak updates the user's daily streak for activity at "now".
//
// Days are compared by calendar-date identity and adjacency, not by a
// time-delta, so same-day touches only refresh the timestamp and a streak
// increments only on an exactly-one-day gap.
func (s *progressService) touchStreak(ctx context.Context, userID int, now time.Time) error {
	existing, err := s.streakRepo.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get streak record: %w", err)
	}

	streak := 1
	if existing != nil {
		// Compare both instants in the same location so day boundaries line up
		lastDay := dayOf(existing.LastLoginDate.In(now.Location()))
		nowDay := dayOf(now)
		switch {
		case nowDay.Equal(lastDay):
			streak = existing.Streak
		case nowDay.Equal(lastDay.AddDate(0, 0, 1)):
			streak = existing.Streak + 1
		default:
			streak = 1
		}
	}

	record := &models.StreakRecord{
		UserID:        userID,
		Streak:        streak,
		LastLoginDate: now,
	}
	if err := s.streakRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert streak record: %w", err)
	}

	return nil
}

// dayOf truncates an instant to the start of its calendar day
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
