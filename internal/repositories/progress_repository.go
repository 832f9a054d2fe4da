package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wordpath/backend/internal/models"
)

// progressRepository implements ProgressRepository
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress ledger repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// Get retrieves the progress record for one (user, content, type) key
//
// Returns (nil, nil) when the user has never touched the item.
func (r *progressRepository) Get(ctx context.Context, userID, contentID int, contentType models.ContentType) (*models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed
		FROM progress
		WHERE user_id = ? AND content_id = ? AND content_type = ?
		LIMIT 1
	`

	record := &models.ProgressRecord{}
	var typeStr string
	err := r.db.QueryRowContext(ctx, query, userID, contentID, string(contentType)).Scan(
		&record.ID,
		&record.UserID,
		&record.ContentID,
		&typeStr,
		&record.MasteryLevel,
		&record.ContentNumber,
		&record.LastReviewed,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress record: %w", err)
	}

	record.ContentType = models.ContentType(typeStr)
	return record, nil
}

// Upsert inserts or updates a progress record in a single conditional write.
//
// The progress table carries UNIQUE(user_id, content_id, content_type), so
// concurrent calls for the same key can never produce two rows.
func (r *progressRepository) Upsert(ctx context.Context, record *models.ProgressRecord) error {
	query := `
		INSERT INTO progress (user_id, content_id, content_type, mastery_level, content_number, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			mastery_level = VALUES(mastery_level),
			content_number = VALUES(content_number),
			last_reviewed = VALUES(last_reviewed)
	`

	if _, err := r.db.ExecContext(ctx, query,
		record.UserID,
		record.ContentID,
		string(record.ContentType),
		record.MasteryLevel,
		record.ContentNumber,
		record.LastReviewed,
	); err != nil {
		return fmt.Errorf("failed to upsert progress record: %w", err)
	}

	return nil
}

// GetByUser lists progress records for a user, optionally filtered by content type
//
// An empty contentType returns records for all catalogs.
func (r *progressRepository) GetByUser(ctx context.Context, userID int, contentType models.ContentType) ([]models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed
		FROM progress
		WHERE user_id = ?
	`
	args := []any{userID}

	if contentType != "" {
		query += ` AND content_type = ?`
		args = append(args, string(contentType))
	}
	query += ` ORDER BY content_number ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress records: %w", err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		var record models.ProgressRecord
		var typeStr string
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.ContentID,
			&typeStr,
			&record.MasteryLevel,
			&record.ContentNumber,
			&record.LastReviewed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		record.ContentType = models.ContentType(typeStr)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// MaxContentNumber returns the highest content_number the user has touched
// for the given content type, or 0 when no record exists
func (r *progressRepository) MaxContentNumber(ctx context.Context, userID int, contentType models.ContentType) (int, error) {
	query := `
		SELECT COALESCE(MAX(content_number), 0)
		FROM progress
		WHERE user_id = ? AND content_type = ?
	`

	var maxNumber int
	err := r.db.QueryRowContext(ctx, query, userID, string(contentType)).Scan(&maxNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to get max content number: %w", err)
	}

	return maxNumber, nil
}

// CountKnownByType counts records at known mastery (level >= 3) grouped by content type
func (r *progressRepository) CountKnownByType(ctx context.Context, userID int) (map[models.ContentType]int, error) {
	query := `
		SELECT content_type, COUNT(*)
		FROM progress
		WHERE user_id = ? AND mastery_level >= ?
		GROUP BY content_type
	`

	rows, err := r.db.QueryContext(ctx, query, userID, models.MasteryKnownFloor)
	if err != nil {
		return nil, fmt.Errorf("failed to query known counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ContentType]int)
	for rows.Next() {
		var typeStr string
		var count int
		if err := rows.Scan(&typeStr, &count); err != nil {
			return nil, fmt.Errorf("failed to scan known count: %w", err)
		}
		counts[models.ContentType(typeStr)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

// CountNeedsReview counts records at needs-review mastery (0 < level < 3)
func (r *progressRepository) CountNeedsReview(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM progress
		WHERE user_id = ? AND mastery_level > 0 AND mastery_level < ?
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID, models.MasteryKnownFloor).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count needs-review records: %w", err)
	}

	return count, nil
}
