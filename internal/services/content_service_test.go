package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

// stepKey identifies a catalog slot the way the contents unique key does
type stepKey struct {
	contentType models.ContentType
	step        int
}

// mockContentRepo is a mock implementation of ContentRepository
type mockContentRepo struct {
	existingSteps map[stepKey]bool
	existsErr     error
	createErr     error
	items         []models.ContentItem
	getFromErr    error
	item          *models.ContentItem
	getByIDErr    error
	updateErr     error
	created       []models.ContentItem
	updatedHindi  []string
	updatedSyns   []string
	updateHits    int
}

func (m *mockContentRepo) ExistsByStep(ctx context.Context, contentType models.ContentType, step int) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existingSteps[stepKey{contentType, step}], nil
}

func (m *mockContentRepo) Create(ctx context.Context, item *models.ContentItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	item.ID = len(m.created) + 1
	m.created = append(m.created, *item)
	return nil
}

func (m *mockContentRepo) GetFromStep(ctx context.Context, startStep, limit int) ([]models.ContentItem, error) {
	if m.getFromErr != nil {
		return nil, m.getFromErr
	}
	var result []models.ContentItem
	for _, item := range m.items {
		if item.Step >= startStep && len(result) < limit {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockContentRepo) GetByID(ctx context.Context, id int) (*models.ContentItem, error) {
	if m.getByIDErr != nil {
		return nil, m.getByIDErr
	}
	return m.item, nil
}

func (m *mockContentRepo) UpdateLists(ctx context.Context, id int, hindiMeanings, synonyms []string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedHindi = hindiMeanings
	m.updatedSyns = synonyms
	m.updateHits++
	return nil
}

// mockCursorRepo is a mock implementation of ProgressCursorRepository
type mockCursorRepo struct {
	maxNumber int
	err       error
}

func (m *mockCursorRepo) MaxContentNumber(ctx context.Context, userID int, contentType models.ContentType) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.maxNumber, nil
}

func TestNewContentService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	contentRepo := &mockContentRepo{}
	cursorRepo := &mockCursorRepo{}

	svc := NewContentService(contentRepo, cursorRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, contentRepo, svc.contentRepo)
	assert.Equal(t, cursorRepo, svc.cursorRepo)
	assert.Equal(t, logger, svc.logger)
}

func TestContentService_NextBatch(t *testing.T) {
	catalog := []models.ContentItem{
		{ID: 1, Step: 1, Word: "abandon", Type: models.ContentTypeWord},
		{ID: 2, Step: 2, Word: "benevolent", Type: models.ContentTypeWord},
		{ID: 3, Step: 3, Word: "candid", Type: models.ContentTypeWord},
	}

	tests := []struct {
		name          string
		userID        int
		batchSize     int
		contentRepo   *mockContentRepo
		cursorRepo    *mockCursorRepo
		expectedError bool
		expectedFirst int
		expectedCount int
	}{
		{
			name:          "anonymous starts from step one",
			userID:        0,
			batchSize:     2,
			contentRepo:   &mockContentRepo{items: catalog},
			cursorRepo:    &mockCursorRepo{},
			expectedError: false,
			expectedFirst: 1,
			expectedCount: 2,
		},
		{
			name:          "resumes after highest touched number",
			userID:        1,
			batchSize:     2,
			contentRepo:   &mockContentRepo{items: catalog},
			cursorRepo:    &mockCursorRepo{maxNumber: 1},
			expectedError: false,
			expectedFirst: 2,
			expectedCount: 2,
		},
		{
			name:          "no progress resumes from step one",
			userID:        1,
			batchSize:     3,
			contentRepo:   &mockContentRepo{items: catalog},
			cursorRepo:    &mockCursorRepo{maxNumber: 0},
			expectedError: false,
			expectedFirst: 1,
			expectedCount: 3,
		},
		{
			name:          "zero batch size uses default",
			userID:        0,
			batchSize:     0,
			contentRepo:   &mockContentRepo{items: catalog},
			cursorRepo:    &mockCursorRepo{},
			expectedError: false,
			expectedFirst: 1,
			expectedCount: 3,
		},
		{
			name:          "catalog exhausted returns empty slice",
			userID:        1,
			batchSize:     5,
			contentRepo:   &mockContentRepo{items: catalog},
			cursorRepo:    &mockCursorRepo{maxNumber: 3},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name:          "cursor error",
			userID:        1,
			batchSize:     2,
			contentRepo:   &mockContentRepo{items: catalog},
			cursorRepo:    &mockCursorRepo{err: errors.New("database error")},
			expectedError: true,
		},
		{
			name:          "catalog error",
			userID:        0,
			batchSize:     2,
			contentRepo:   &mockContentRepo{getFromErr: errors.New("database error")},
			cursorRepo:    &mockCursorRepo{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			svc := NewContentService(tt.contentRepo, tt.cursorRepo, logger)

			result, err := svc.NextBatch(context.Background(), tt.userID, tt.batchSize)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedCount)
				if tt.expectedCount > 0 {
					assert.Equal(t, tt.expectedFirst, result[0].Step)
				}
			}
		})
	}
}

func TestContentService_Seed(t *testing.T) {
	tests := []struct {
		name             string
		items            []models.ContentItem
		contentRepo      *mockContentRepo
		expectedError    bool
		expectedInserted int
	}{
		{
			name: "inserts new items",
			items: []models.ContentItem{
				{Step: 1, Word: "abandon", Type: models.ContentTypeWord},
				{Step: 2, Word: "benevolent", Type: models.ContentTypeWord},
			},
			contentRepo:      &mockContentRepo{existingSteps: map[stepKey]bool{}},
			expectedError:    false,
			expectedInserted: 2,
		},
		{
			name: "skips existing steps",
			items: []models.ContentItem{
				{Step: 1, Word: "abandon", Type: models.ContentTypeWord},
				{Step: 2, Word: "benevolent", Type: models.ContentTypeWord},
			},
			contentRepo:      &mockContentRepo{existingSteps: map[stepKey]bool{{models.ContentTypeWord, 1}: true}},
			expectedError:    false,
			expectedInserted: 1,
		},
		{
			name: "same step in another catalog is inserted",
			items: []models.ContentItem{
				{Step: 1, Word: "break the ice", Type: models.ContentTypeIdiom},
				{Step: 2, Word: "hit the books", Type: models.ContentTypeIdiom},
			},
			contentRepo: &mockContentRepo{existingSteps: map[stepKey]bool{
				{models.ContentTypeWord, 1}: true,
				{models.ContentTypeWord, 2}: true,
			}},
			expectedError:    false,
			expectedInserted: 2,
		},
		{
			name: "re-run inserts nothing",
			items: []models.ContentItem{
				{Step: 1, Word: "abandon", Type: models.ContentTypeWord},
				{Step: 2, Word: "benevolent", Type: models.ContentTypeWord},
			},
			contentRepo: &mockContentRepo{existingSteps: map[stepKey]bool{
				{models.ContentTypeWord, 1}: true,
				{models.ContentTypeWord, 2}: true,
			}},
			expectedError:    false,
			expectedInserted: 0,
		},
		{
			name:             "empty input",
			items:            []models.ContentItem{},
			contentRepo:      &mockContentRepo{existingSteps: map[stepKey]bool{}},
			expectedError:    false,
			expectedInserted: 0,
		},
		{
			name: "non-positive step rejected",
			items: []models.ContentItem{
				{Step: 0, Word: "abandon", Type: models.ContentTypeWord},
			},
			contentRepo:      &mockContentRepo{existingSteps: map[stepKey]bool{}},
			expectedError:    true,
			expectedInserted: 0,
		},
		{
			name: "invalid content type rejected",
			items: []models.ContentItem{
				{Step: 1, Word: "abandon", Type: "proverb"},
			},
			contentRepo:      &mockContentRepo{existingSteps: map[stepKey]bool{}},
			expectedError:    true,
			expectedInserted: 0,
		},
		{
			name: "exists check error",
			items: []models.ContentItem{
				{Step: 1, Word: "abandon", Type: models.ContentTypeWord},
			},
			contentRepo:      &mockContentRepo{existsErr: errors.New("database error")},
			expectedError:    true,
			expectedInserted: 0,
		},
		{
			name: "create error",
			items: []models.ContentItem{
				{Step: 1, Word: "abandon", Type: models.ContentTypeWord},
			},
			contentRepo:      &mockContentRepo{existingSteps: map[stepKey]bool{}, createErr: errors.New("database error")},
			expectedError:    true,
			expectedInserted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			svc := NewContentService(tt.contentRepo, &mockCursorRepo{}, logger)

			inserted, err := svc.Seed(context.Background(), tt.items)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedInserted, inserted)
			assert.Len(t, tt.contentRepo.created, tt.expectedInserted)
		})
	}
}

func TestContentService_Seed_Defaults(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	contentRepo := &mockContentRepo{existingSteps: map[stepKey]bool{}}
	svc := NewContentService(contentRepo, &mockCursorRepo{}, logger)

	items := []models.ContentItem{
		{Step: 1, Word: "abandon", IsFavorite: true},
	}

	inserted, err := svc.Seed(context.Background(), items)

	assert.NoError(t, err)
	assert.Equal(t, 1, inserted)
	require.Len(t, contentRepo.created, 1)
	// Seeded items always start unmarked, with non-nil lists and the word catalog by default
	assert.False(t, contentRepo.created[0].IsFavorite)
	assert.NotNil(t, contentRepo.created[0].HindiMeanings)
	assert.NotNil(t, contentRepo.created[0].Synonyms)
	assert.Equal(t, models.ContentTypeWord, contentRepo.created[0].Type)
}

func TestContentService_AddContribution(t *testing.T) {
	tests := []struct {
		name           string
		kind           models.ContributionKind
		items          []string
		contentRepo    *mockContentRepo
		expectedError  bool
		expectedAdded  int
		expectedHindi  []string
		expectedSyns   []string
		expectNotFound bool
	}{
		{
			name:  "adds new hindi meanings",
			kind:  models.ContributionHindi,
			items: []string{"छोड़ना", "त्यागना"},
			contentRepo: &mockContentRepo{
				item: &models.ContentItem{ID: 7, HindiMeanings: []string{"छोड़ना"}, Synonyms: []string{"desert"}},
			},
			expectedError: false,
			expectedAdded: 1,
			expectedHindi: []string{"छोड़ना", "त्यागना"},
			expectedSyns:  []string{"desert"},
		},
		{
			name:  "adds new synonyms",
			kind:  models.ContributionSynonym,
			items: []string{"forsake"},
			contentRepo: &mockContentRepo{
				item: &models.ContentItem{ID: 7, HindiMeanings: []string{"छोड़ना"}, Synonyms: []string{"desert"}},
			},
			expectedError: false,
			expectedAdded: 1,
			expectedHindi: []string{"छोड़ना"},
			expectedSyns:  []string{"desert", "forsake"},
		},
		{
			name:  "duplicates are dropped",
			kind:  models.ContributionSynonym,
			items: []string{"desert", "desert", "forsake"},
			contentRepo: &mockContentRepo{
				item: &models.ContentItem{ID: 7, Synonyms: []string{"desert"}},
			},
			expectedError: false,
			expectedAdded: 1,
			expectedSyns:  []string{"desert", "forsake"},
		},
		{
			name:  "all duplicates writes nothing",
			kind:  models.ContributionSynonym,
			items: []string{"desert"},
			contentRepo: &mockContentRepo{
				item: &models.ContentItem{ID: 7, Synonyms: []string{"desert"}},
			},
			expectedError: false,
			expectedAdded: 0,
		},
		{
			name:          "invalid kind",
			kind:          "invalid",
			items:         []string{"x"},
			contentRepo:   &mockContentRepo{},
			expectedError: true,
		},
		{
			name:          "empty items",
			kind:          models.ContributionHindi,
			items:         []string{},
			contentRepo:   &mockContentRepo{},
			expectedError: true,
		},
		{
			name:           "content not found",
			kind:           models.ContributionHindi,
			items:          []string{"x"},
			contentRepo:    &mockContentRepo{item: nil},
			expectedError:  true,
			expectNotFound: true,
		},
		{
			name:          "get error",
			kind:          models.ContributionHindi,
			items:         []string{"x"},
			contentRepo:   &mockContentRepo{getByIDErr: errors.New("database error")},
			expectedError: true,
		},
		{
			name:  "update error",
			kind:  models.ContributionHindi,
			items: []string{"x"},
			contentRepo: &mockContentRepo{
				item:      &models.ContentItem{ID: 7, HindiMeanings: []string{}},
				updateErr: errors.New("database error"),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := zap.NewDevelopment()
			svc := NewContentService(tt.contentRepo, &mockCursorRepo{}, logger)

			result, err := svc.AddContribution(context.Background(), 7, tt.kind, tt.items)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.expectNotFound {
					assert.ErrorIs(t, err, ErrContentNotFound)
				}
				return
			}

			assert.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedAdded, result.Added)
			assert.Equal(t, string(tt.kind), result.Type)

			if tt.expectedAdded == 0 {
				assert.Equal(t, 0, tt.contentRepo.updateHits)
			} else {
				assert.Equal(t, 1, tt.contentRepo.updateHits)
				if tt.expectedHindi != nil {
					assert.Equal(t, tt.expectedHindi, tt.contentRepo.updatedHindi)
				}
				if tt.expectedSyns != nil {
					assert.Equal(t, tt.expectedSyns, tt.contentRepo.updatedSyns)
				}
			}
		})
	}
}
