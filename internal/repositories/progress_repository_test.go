package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wordpath/backend/internal/models"
)

func TestNewProgressRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewProgressRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestProgressRepository_Get(t *testing.T) {
	columns := []string{"id", "user_id", "content_id", "content_type", "mastery_level", "content_number", "last_reviewed"}
	now := time.Now()

	tests := []struct {
		name          string
		userID        int
		contentID     int
		contentType   models.ContentType
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedNil   bool
		expectedLevel int
	}{
		{
			name:        "success",
			userID:      1,
			contentID:   10,
			contentType: models.ContentTypeWord,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(5, 1, 10, "word", 3, 10, now)
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1, 10, "word").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedNil:   false,
			expectedLevel: 3,
		},
		{
			name:        "not found returns nil without error",
			userID:      1,
			contentID:   999,
			contentType: models.ContentTypeWord,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1, 999, "word").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: false,
			expectedNil:   true,
		},
		{
			name:        "database error",
			userID:      1,
			contentID:   10,
			contentType: models.ContentTypeIdiom,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1, 10, "idiom").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewProgressRepository(db)

			tt.setupMock(mock)

			result, err := repo.Get(context.Background(), tt.userID, tt.contentID, tt.contentType)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectedNil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.expectedLevel, result.MasteryLevel)
				assert.Equal(t, tt.contentType, result.ContentType)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_Upsert(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		record        *models.ProgressRecord
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "insert new record",
			record: &models.ProgressRecord{
				UserID:        1,
				ContentID:     10,
				ContentType:   models.ContentTypeWord,
				MasteryLevel:  1,
				ContentNumber: 10,
				LastReviewed:  now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO progress \(user_id, content_id, content_type, mastery_level, content_number, last_reviewed\)`).
					WithArgs(1, 10, "word", 1, 10, now).
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			expectedError: false,
		},
		{
			name: "update existing record",
			record: &models.ProgressRecord{
				UserID:        1,
				ContentID:     10,
				ContentType:   models.ContentTypeWord,
				MasteryLevel:  4,
				ContentNumber: 10,
				LastReviewed:  now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				// MySQL reports 2 affected rows for an ON DUPLICATE KEY update
				mock.ExpectExec(`INSERT INTO progress \(user_id, content_id, content_type, mastery_level, content_number, last_reviewed\)`).
					WithArgs(1, 10, "word", 4, 10, now).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
			expectedError: false,
		},
		{
			name: "database error",
			record: &models.ProgressRecord{
				UserID:       1,
				ContentID:    10,
				ContentType:  models.ContentTypeWord,
				LastReviewed: now,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO progress \(user_id, content_id, content_type, mastery_level, content_number, last_reviewed\)`).
					WithArgs(1, 10, "word", 0, 0, now).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewProgressRepository(db)

			tt.setupMock(mock)

			err := repo.Upsert(context.Background(), tt.record)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_GetByUser(t *testing.T) {
	columns := []string{"id", "user_id", "content_id", "content_type", "mastery_level", "content_number", "last_reviewed"}
	now := time.Now()

	tests := []struct {
		name          string
		userID        int
		contentType   models.ContentType
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:        "all types",
			userID:      1,
			contentType: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, 1, 10, "word", 3, 10, now).
					AddRow(2, 1, 11, "idiom", 1, 11, now)
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name:        "filtered by type",
			userID:      1,
			contentType: models.ContentTypeWord,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, 1, 10, "word", 3, 10, now)
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1, "word").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 1,
		},
		{
			name:        "empty result",
			userID:      2,
			contentType: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns)
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name:        "database error",
			userID:      1,
			contentType: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
		{
			name:        "scan error",
			userID:      1,
			contentType: "",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("invalid", 1, 10, "word", 3, 10, now)
				mock.ExpectQuery(`SELECT id, user_id, content_id, content_type, mastery_level, content_number, last_reviewed`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewProgressRepository(db)

			tt.setupMock(mock)

			result, err := repo.GetByUser(context.Background(), tt.userID, tt.contentType)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_MaxContentNumber(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		contentType   models.ContentType
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedMax   int
	}{
		{
			name:        "with records",
			userID:      1,
			contentType: models.ContentTypeWord,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"max"}).AddRow(37)
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(content_number\), 0\)`).
					WithArgs(1, "word").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedMax:   37,
		},
		{
			name:        "no records yields zero",
			userID:      2,
			contentType: models.ContentTypeWord,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"max"}).AddRow(0)
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(content_number\), 0\)`).
					WithArgs(2, "word").
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedMax:   0,
		},
		{
			name:        "database error",
			userID:      1,
			contentType: models.ContentTypeWord,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(content_number\), 0\)`).
					WithArgs(1, "word").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedMax:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewProgressRepository(db)

			tt.setupMock(mock)

			maxNumber, err := repo.MaxContentNumber(context.Background(), tt.userID, tt.contentType)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedMax, maxNumber)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_CountKnownByType(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expected      map[models.ContentType]int
	}{
		{
			name:   "success",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"content_type", "count"}).
					AddRow("word", 25).
					AddRow("idiom", 3)
				mock.ExpectQuery(`SELECT content_type, COUNT\(\*\)`).
					WithArgs(1, models.MasteryKnownFloor).
					WillReturnRows(rows)
			},
			expectedError: false,
			expected: map[models.ContentType]int{
				models.ContentTypeWord:  25,
				models.ContentTypeIdiom: 3,
			},
		},
		{
			name:   "empty result",
			userID: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"content_type", "count"})
				mock.ExpectQuery(`SELECT content_type, COUNT\(\*\)`).
					WithArgs(2, models.MasteryKnownFloor).
					WillReturnRows(rows)
			},
			expectedError: false,
			expected:      map[models.ContentType]int{},
		},
		{
			name:   "database error",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT content_type, COUNT\(\*\)`).
					WithArgs(1, models.MasteryKnownFloor).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewProgressRepository(db)

			tt.setupMock(mock)

			counts, err := repo.CountKnownByType(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, counts)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, counts)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_CountNeedsReview(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:   "success",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"count"}).AddRow(8)
				mock.ExpectQuery(`SELECT COUNT\(\*\)`).
					WithArgs(1, models.MasteryKnownFloor).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 8,
		},
		{
			name:   "database error",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\)`).
					WithArgs(1, models.MasteryKnownFloor).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupMockDB(t)
			defer cleanup()
			repo := NewProgressRepository(db)

			tt.setupMock(mock)

			count, err := repo.CountNeedsReview(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedCount, count)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
