package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

const weeklyActivityDays = 7

// ProfileProgressRepository is the interface for progress aggregates (needed for profile stats)
type ProfileProgressRepository interface {
	// Method CountKnownByType counts known-level progress records grouped by content type.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	CountKnownByType(ctx context.Context, userID int) (map[models.ContentType]int, error)
	// Method MaxContentNumber returns the highest content number the user has
	// touched for the given content type, or 0 when no record exists.
	//
	// Please reference CountKnownByType method for more information about error values.
	MaxContentNumber(ctx context.Context, userID int, contentType models.ContentType) (int, error)
	// Method CountNeedsReview counts progress records at needs-review mastery.
	//
	// Please reference CountKnownByType method for more information about error values.
	CountNeedsReview(ctx context.Context, userID int) (int, error)
}

// ProfileSessionRepository is the interface for session aggregates (needed for profile stats)
type ProfileSessionRepository interface {
	// Method Totals returns whole-history aggregates over the user's test sessions.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	Totals(ctx context.Context, userID int) (*models.SessionTotals, error)
	// Method ScoresSince retrieves (date, score) pairs for sessions recorded at
	// or after the given instant, ordered oldest first.
	//
	// Please reference Totals method for more information about error values.
	ScoresSince(ctx context.Context, userID int, from time.Time) ([]models.SessionScore, error)
}

// ProfileStreakRepository is the interface for the streak lookup (needed for profile stats)
type ProfileStreakRepository interface {
	// Method Get retrieves the streak record for a user, or (nil, nil) when none exists.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	Get(ctx context.Context, userID int) (*models.StreakRecord, error)
}

// profileService implements ProfileService
type profileService struct {
	progressRepo ProfileProgressRepository
	sessionRepo  ProfileSessionRepository
	streakRepo   ProfileStreakRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewProfileService creates a new profile statistics service
func NewProfileService(progressRepo ProfileProgressRepository, sessionRepo ProfileSessionRepository, streakRepo ProfileStreakRepository, logger *zap.Logger) *profileService {
	return &profileService{
		progressRepo: progressRepo,
		sessionRepo:  sessionRepo,
		streakRepo:   streakRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// GetProfileStats recomputes the denormalized profile statistics view from the
// ledgers. Pure reads only; nothing here writes or materializes state.
func (s *profileService) GetProfileStats(ctx context.Context, userID int) (*models.ProfileStats, error) {
	totals, err := s.sessionRepo.Totals(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get session totals", zap.Error(err))
		return nil, fmt.Errorf("failed to get session totals: %w", err)
	}

	knownCounts, err := s.progressRepo.CountKnownByType(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get known counts", zap.Error(err))
		return nil, fmt.Errorf("failed to get known counts: %w", err)
	}

	maxWordNumber, err := s.progressRepo.MaxContentNumber(ctx, userID, models.ContentTypeWord)
	if err != nil {
		s.logger.Error("failed to get word cursor", zap.Error(err))
		return nil, fmt.Errorf("failed to get word cursor: %w", err)
	}

	needsReview, err := s.progressRepo.CountNeedsReview(ctx, userID)
	if err != nil {
		s.logger.Error("failed to count needs-review records", zap.Error(err))
		return nil, fmt.Errorf("failed to count needs-review records: %w", err)
	}

	currentStreak := 0
	streakRecord, err := s.streakRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get streak record", zap.Error(err))
		return nil, fmt.Errorf("failed to get streak record: %w", err)
	}
	if streakRecord != nil {
		currentStreak = streakRecord.Streak
	}

	weekly, err := s.weeklyActivity(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileStats{
		TotalTestsCovered:       totals.Count,
		WordsKnown:              knownCounts[models.ContentTypeWord],
		PhrasalKnown:            knownCounts[models.ContentTypePhrasal],
		IdiomsKnown:             knownCounts[models.ContentTypeIdiom],
		NextWordNumber:          maxWordNumber + 1,
		WeeklyActivity:          weekly,
		AverageAccuracy:         totals.AverageScore,
		TotalQuestionsAttempted: totals.QuestionsAttempted,
		CurrentStreak:           currentStreak,
		NeedsReviewCount:        needsReview,
	}, nil
}

// weeklyActivity sums session scores per calendar day over the trailing seven
// days, oldest to newest and inclusive of today, labeled by weekday
func (s *profileService) weeklyActivity(ctx context.Context, userID int) ([]models.DayActivity, error) {
	now := s.now()
	start := dayOf(now).AddDate(0, 0, -(weeklyActivityDays - 1))

	scores, err := s.sessionRepo.ScoresSince(ctx, userID, start)
	if err != nil {
		s.logger.Error("failed to get weekly session scores", zap.Error(err))
		return nil, fmt.Errorf("failed to get weekly session scores: %w", err)
	}

	sums := make(map[string]int, weeklyActivityDays)
	for _, score := range scores {
		day := dayOf(score.Date.In(now.Location()))
		sums[day.Format("2006-01-02")] += score.Score
	}

	activity := make([]models.DayActivity, 0, weeklyActivityDays)
	for i := 0; i < weeklyActivityDays; i++ {
		day := start.AddDate(0, 0, i)
		activity = append(activity, models.DayActivity{
			Label: day.Format("Mon"),
			Score: sums[day.Format("2006-01-02")],
		})
	}

	return activity, nil
}
