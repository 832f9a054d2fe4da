package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wordpath/backend/internal/models"
)

// sessionRepository implements SessionRepository
type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new test session ledger repository
func NewSessionRepository(db *sql.DB) *sessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create inserts one completed test session record
func (r *sessionRepository) Create(ctx context.Context, record *models.TestSessionRecord) error {
	query := `
		INSERT INTO test_sessions (user_id, test_type, score, total_questions, correct_answers, date, test_session_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		record.UserID,
		string(record.TestType),
		record.Score,
		record.TotalQuestions,
		record.CorrectAnswers,
		record.Date,
		record.TestSessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to create test session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = int(id)
	return nil
}

// GetRecent retrieves up to "limit" test sessions for a user, newest first
func (r *sessionRepository) GetRecent(ctx context.Context, userID, limit int) ([]models.TestSessionRecord, error) {
	query := `
		SELECT id, user_id, test_type, score, total_questions, correct_answers, date, test_session_id
		FROM test_sessions
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query test sessions: %w", err)
	}
	defer rows.Close()

	var records []models.TestSessionRecord
	for rows.Next() {
		record, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// GetBySessionID retrieves the test session record with the given session ID
//
// Returns (nil, nil) when no session exists for this user.
func (r *sessionRepository) GetBySessionID(ctx context.Context, userID int, testSessionID string) (*models.TestSessionRecord, error) {
	query := `
		SELECT id, user_id, test_type, score, total_questions, correct_answers, date, test_session_id
		FROM test_sessions
		WHERE user_id = ? AND test_session_id = ?
		LIMIT 1
	`

	record := &models.TestSessionRecord{}
	var typeStr string
	err := r.db.QueryRowContext(ctx, query, userID, testSessionID).Scan(
		&record.ID,
		&record.UserID,
		&typeStr,
		&record.Score,
		&record.TotalQuestions,
		&record.CorrectAnswers,
		&record.Date,
		&record.TestSessionID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get test session: %w", err)
	}

	record.TestType = models.TestType(typeStr)
	return record, nil
}

// Totals returns whole-history aggregates over the user's test sessions
func (r *sessionRepository) Totals(ctx context.Context, userID int) (*models.SessionTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_questions), 0), COALESCE(ROUND(AVG(score)), 0)
		FROM test_sessions
		WHERE user_id = ?
	`

	totals := &models.SessionTotals{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&totals.Count,
		&totals.QuestionsAttempted,
		&totals.AverageScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get session totals: %w", err)
	}

	return totals, nil
}

// ScoresSince retrieves (date, score) pairs for sessions recorded at or after
// the given instant, ordered oldest first
func (r *sessionRepository) ScoresSince(ctx context.Context, userID int, from time.Time) ([]models.SessionScore, error) {
	query := `
		SELECT date, score
		FROM test_sessions
		WHERE user_id = ? AND date >= ?
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query session scores: %w", err)
	}
	defer rows.Close()

	var scores []models.SessionScore
	for rows.Next() {
		var score models.SessionScore
		if err := rows.Scan(&score.Date, &score.Score); err != nil {
			return nil, fmt.Errorf("failed to scan session score: %w", err)
		}
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return scores, nil
}

// scanSession scans one test_sessions row from a *sql.Rows cursor
func scanSession(rows *sql.Rows) (*models.TestSessionRecord, error) {
	record := &models.TestSessionRecord{}
	var typeStr string

	err := rows.Scan(
		&record.ID,
		&record.UserID,
		&typeStr,
		&record.Score,
		&record.TotalQuestions,
		&record.CorrectAnswers,
		&record.Date,
		&record.TestSessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan test session: %w", err)
	}

	record.TestType = models.TestType(typeStr)
	return record, nil
}
