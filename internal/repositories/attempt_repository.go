package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wordpath/backend/internal/models"
)

// attemptRepository implements AttemptRepository
type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new attempt log repository
func NewAttemptRepository(db *sql.DB) *attemptRepository {
	return &attemptRepository{
		db: db,
	}
}

// Create appends one attempt record
func (r *attemptRepository) Create(ctx context.Context, record *models.AttemptRecord) error {
	query := `
		INSERT INTO attempts (user_id, question_id, test_type, selected_answer, correct_answer, is_correct, attempt_date, test_session_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		record.UserID,
		record.QuestionID,
		string(record.TestType),
		record.SelectedAnswer,
		record.CorrectAnswer,
		record.IsCorrect,
		record.AttemptDate,
		record.TestSessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = int(id)
	return nil
}

// DistinctQuestionIDs returns the de-duplicated set of question IDs the user
// has ever attempted for a test type
func (r *attemptRepository) DistinctQuestionIDs(ctx context.Context, userID int, testType models.TestType) ([]string, error) {
	query := `
		SELECT DISTINCT question_id
		FROM attempts
		WHERE user_id = ? AND test_type = ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, string(testType))
	if err != nil {
		return nil, fmt.Errorf("failed to query attempted question IDs: %w", err)
	}
	defer rows.Close()

	var questionIDs []string
	for rows.Next() {
		var questionID string
		if err := rows.Scan(&questionID); err != nil {
			return nil, fmt.Errorf("failed to scan question ID: %w", err)
		}
		questionIDs = append(questionIDs, questionID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return questionIDs, nil
}

// DeleteByUserAndType deletes all attempts for one user and test type,
// returning the number of rows removed
func (r *attemptRepository) DeleteByUserAndType(ctx context.Context, userID int, testType models.TestType) (int, error) {
	query := `DELETE FROM attempts WHERE user_id = ? AND test_type = ?`

	result, err := r.db.ExecContext(ctx, query, userID, string(testType))
	if err != nil {
		return 0, fmt.Errorf("failed to delete attempts: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// GetBySessionID retrieves all attempts belonging to one test session
func (r *attemptRepository) GetBySessionID(ctx context.Context, userID int, testSessionID string) ([]models.AttemptRecord, error) {
	query := `
		SELECT id, user_id, question_id, test_type, selected_answer, correct_answer, is_correct, attempt_date, test_session_id
		FROM attempts
		WHERE user_id = ? AND test_session_id = ?
		ORDER BY attempt_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, testSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session attempts: %w", err)
	}
	defer rows.Close()

	var records []models.AttemptRecord
	for rows.Next() {
		var record models.AttemptRecord
		var typeStr string
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.QuestionID,
			&typeStr,
			&record.SelectedAnswer,
			&record.CorrectAnswer,
			&record.IsCorrect,
			&record.AttemptDate,
			&record.TestSessionID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		record.TestType = models.TestType(typeStr)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// CountsByType returns attempted and correct counts grouped by test type.
// Types the user never attempted are absent from the map.
func (r *attemptRepository) CountsByType(ctx context.Context, userID int) (map[models.TestType]models.TypeStat, error) {
	query := `
		SELECT test_type, COUNT(*), COALESCE(SUM(is_correct), 0)
		FROM attempts
		WHERE user_id = ?
		GROUP BY test_type
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempt counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.TestType]models.TypeStat)
	for rows.Next() {
		var typeStr string
		var stat models.TypeStat
		if err := rows.Scan(&typeStr, &stat.Attempted, &stat.Correct); err != nil {
			return nil, fmt.Errorf("failed to scan attempt counts: %w", err)
		}
		counts[models.TestType(typeStr)] = stat
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}
