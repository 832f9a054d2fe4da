package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wordpath/backend/internal/models"
)

// streakRepository implements StreakRepository
type streakRepository struct {
	db *sql.DB
}

// NewStreakRepository creates a new streak tracker repository
func NewStreakRepository(db *sql.DB) *streakRepository {
	return &streakRepository{
		db: db,
	}
}

// Get retrieves the streak record for a user
//
// Returns (nil, nil) when the user has no activity yet.
func (r *streakRepository) Get(ctx context.Context, userID int) (*models.StreakRecord, error) {
	query := `
		SELECT user_id, streak, last_login_date
		FROM streaks
		WHERE user_id = ?
		LIMIT 1
	`

	record := &models.StreakRecord{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&record.UserID,
		&record.Streak,
		&record.LastLoginDate,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get streak record: %w", err)
	}

	return record, nil
}

// Upsert inserts or updates the streak record in a single conditional write
// keyed on the user_id primary key
func (r *streakRepository) Upsert(ctx context.Context, record *models.StreakRecord) error {
	query := `
		INSERT INTO streaks (user_id, streak, last_login_date)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			streak = VALUES(streak),
			last_login_date = VALUES(last_login_date)
	`

	if _, err := r.db.ExecContext(ctx, query,
		record.UserID,
		record.Streak,
		record.LastLoginDate,
	); err != nil {
		return fmt.Errorf("failed to upsert streak record: %w", err)
	}

	return nil
}
