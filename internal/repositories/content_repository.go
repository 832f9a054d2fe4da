package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/wordpath/backend/internal/models"
)

// contentRepository implements ContentRepository
type contentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new content catalog repository
func NewContentRepository(db *sql.DB) *contentRepository {
	return &contentRepository{
		db: db,
	}
}

// ExistsByStep checks if a catalog item with the given type and step already exists
func (r *contentRepository) ExistsByStep(ctx context.Context, contentType models.ContentType, step int) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM contents WHERE type = ? AND step = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, contentType, step).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check step existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new catalog item
func (r *contentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	hindiJSON, err := json.Marshal(item.HindiMeanings)
	if err != nil {
		return fmt.Errorf("failed to marshal hindi meanings: %w", err)
	}
	synonymsJSON, err := json.Marshal(item.Synonyms)
	if err != nil {
		return fmt.Errorf("failed to marshal synonyms: %w", err)
	}

	query := `
		INSERT INTO contents (step, word, meaning, hindi_meanings, synonyms, sentence, level, type, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Step,
		item.Word,
		item.Meaning,
		hindiJSON,
		synonymsJSON,
		item.Sentence,
		item.Level,
		string(item.Type),
		item.IsFavorite,
	)
	if err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	item.ID = int(id)
	return nil
}

// GetFromStep retrieves up to "limit" word-type items with step >= startStep, ordered by step
func (r *contentRepository) GetFromStep(ctx context.Context, startStep, limit int) ([]models.ContentItem, error) {
	query := `
		SELECT id, step, word, meaning, hindi_meanings, synonyms, sentence, level, type, is_favorite
		FROM contents
		WHERE type = ? AND step >= ?
		ORDER BY step ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, string(models.ContentTypeWord), startStep, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contents: %w", err)
	}
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// GetByID retrieves a catalog item by ID
//
// Returns (nil, nil) when no item exists with that ID.
func (r *contentRepository) GetByID(ctx context.Context, id int) (*models.ContentItem, error) {
	query := `
		SELECT id, step, word, meaning, hindi_meanings, synonyms, sentence, level, type, is_favorite
		FROM contents
		WHERE id = ?
		LIMIT 1
	`

	item := &models.ContentItem{}
	var typeStr string
	var hindiRaw, synonymsRaw []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Step,
		&item.Word,
		&item.Meaning,
		&hindiRaw,
		&synonymsRaw,
		&item.Sentence,
		&item.Level,
		&typeStr,
		&item.IsFavorite,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content by ID: %w", err)
	}

	item.Type = models.ContentType(typeStr)
	if err := unmarshalList(hindiRaw, &item.HindiMeanings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hindi meanings: %w", err)
	}
	if err := unmarshalList(synonymsRaw, &item.Synonyms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal synonyms: %w", err)
	}

	return item, nil
}

// UpdateLists replaces the hindi_meanings and synonyms columns of a catalog item
func (r *contentRepository) UpdateLists(ctx context.Context, id int, hindiMeanings, synonyms []string) error {
	hindiJSON, err := json.Marshal(hindiMeanings)
	if err != nil {
		return fmt.Errorf("failed to marshal hindi meanings: %w", err)
	}
	synonymsJSON, err := json.Marshal(synonyms)
	if err != nil {
		return fmt.Errorf("failed to marshal synonyms: %w", err)
	}

	query := `
		UPDATE contents
		SET hindi_meanings = ?, synonyms = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, hindiJSON, synonymsJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update content lists: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("content not found")
	}

	return nil
}

// scanContentItem scans one contents row from a *sql.Rows cursor
func scanContentItem(rows *sql.Rows) (*models.ContentItem, error) {
	item := &models.ContentItem{}
	var typeStr string
	var hindiRaw, synonymsRaw []byte

	err := rows.Scan(
		&item.ID,
		&item.Step,
		&item.Word,
		&item.Meaning,
		&hindiRaw,
		&synonymsRaw,
		&item.Sentence,
		&item.Level,
		&typeStr,
		&item.IsFavorite,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan content: %w", err)
	}

	item.Type = models.ContentType(typeStr)
	if err := unmarshalList(hindiRaw, &item.HindiMeanings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hindi meanings: %w", err)
	}
	if err := unmarshalList(synonymsRaw, &item.Synonyms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal synonyms: %w", err)
	}

	return item, nil
}

// unmarshalList decodes a JSON column into a string slice, treating NULL as empty
func unmarshalList(raw []byte, dest *[]string) error {
	if len(raw) == 0 {
		*dest = []string{}
		return nil
	}
	return json.Unmarshal(raw, dest)
}
