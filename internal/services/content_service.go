package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wordpath/backend/internal/models"
	"go.uber.org/zap"
)

// ErrContentNotFound is returned when a contribution references a missing catalog item
var ErrContentNotFound = errors.New("content not found")

const defaultBatchSize = 10

// ContentRepository is the interface that wraps methods for Contents table data access
type ContentRepository interface {
	// Method ExistsByStep checks if a catalog item with the given type and step already exists.
	//
	// Steps are unique per catalog type, so the same step may exist in another catalog.
	// If some error occurs during the check, the error will be returned together with "false" value.
	ExistsByStep(ctx context.Context, contentType models.ContentType, step int) (bool, error)
	// Method Create inserts a new catalog item and fills its ID.
	//
	// If some error occurs during data insert, the error will be returned.
	Create(ctx context.Context, item *models.ContentItem) error
	// Method GetFromStep retrieves up to "limit" word-type items with step >= startStep, ordered by step.
	//
	// If some error occurs during data retrieval, the error will be returned together with "nil" value.
	GetFromStep(ctx context.Context, startStep, limit int) ([]models.ContentItem, error)
	// Method GetByID retrieves a catalog item by ID.
	//
	// If no item exists with that ID, (nil, nil) will be returned.
	// Please reference GetFromStep method for more information about error values.
	GetByID(ctx context.Context, id int) (*models.ContentItem, error)
	// Method UpdateLists replaces the hindi meanings and synonyms of a catalog item.
	//
	// If some error occurs during the update, the error will be returned.
	UpdateLists(ctx context.Context, id int, hindiMeanings, synonyms []string) error
}

// ProgressCursorRepository is the interface for the progress cursor lookup (needed for smart resume)
type ProgressCursorRepository interface {
	// Method MaxContentNumber returns the highest content number the user has
	// touched for the given content type, or 0 when no record exists.
	//
	// If some error occurs during data retrieval, the error will be returned together with "0" value.
	MaxContentNumber(ctx context.Context, userID int, contentType models.ContentType) (int, error)
}

// contentService implements ContentService
type contentService struct {
	contentRepo ContentRepository
	cursorRepo  ProgressCursorRepository
	logger      *zap.Logger
}

// NewContentService creates a new content catalog service
func NewContentService(contentRepo ContentRepository, cursorRepo ProgressCursorRepository, logger *zap.Logger) *contentService {
	return &contentService{
		contentRepo: contentRepo,
		cursorRepo:  cursorRepo,
		logger:      logger,
	}
}

// NextBatch returns the next batch of words for the user to learn.
//
// The resume cursor is max(contentNumber touched)+1, so repeated calls without
// intervening progress return the same batch, and marking an earlier item
// never rewinds the cursor. Anonymous callers (userID 0) start at step 1.
func (s *contentService) NextBatch(ctx context.Context, userID, batchSize int) ([]models.ContentItem, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	startStep := 1
	if userID > 0 {
		maxNumber, err := s.cursorRepo.MaxContentNumber(ctx, userID, models.ContentTypeWord)
		if err != nil {
			s.logger.Error("failed to get resume cursor", zap.Error(err))
			return nil, fmt.Errorf("failed to get resume cursor: %w", err)
		}
		startStep = maxNumber + 1
	}

	items, err := s.contentRepo.GetFromStep(ctx, startStep, batchSize)
	if err != nil {
		s.logger.Error("failed to get content batch", zap.Error(err))
		return nil, fmt.Errorf("failed to get content batch: %w", err)
	}

	if items == nil {
		items = []models.ContentItem{}
	}
	return items, nil
}

// Seed inserts catalog items that are not present yet and returns the number inserted.
//
// An item is skipped when its catalog type already holds that step, so
// re-running the seed with the same input inserts zero new rows. The same
// step may still be seeded into a different catalog type.
func (s *contentService) Seed(ctx context.Context, items []models.ContentItem) (int, error) {
	inserted := 0
	for i := range items {
		item := items[i]
		if item.Step <= 0 {
			return inserted, fmt.Errorf("step must be positive, got: %d", item.Step)
		}
		if item.Type == "" {
			item.Type = models.ContentTypeWord
		}
		if !item.Type.Valid() {
			return inserted, fmt.Errorf("invalid content type: %s", item.Type)
		}

		exists, err := s.contentRepo.ExistsByStep(ctx, item.Type, item.Step)
		if err != nil {
			s.logger.Error("failed to check step existence", zap.Error(err), zap.Int("step", item.Step))
			return inserted, fmt.Errorf("failed to check step existence: %w", err)
		}
		if exists {
			continue
		}

		item.IsFavorite = false
		if item.HindiMeanings == nil {
			item.HindiMeanings = []string{}
		}
		if item.Synonyms == nil {
			item.Synonyms = []string{}
		}

		if err := s.contentRepo.Create(ctx, &item); err != nil {
			s.logger.Error("failed to create content item", zap.Error(err), zap.Int("step", item.Step))
			return inserted, fmt.Errorf("failed to create content item: %w", err)
		}
		inserted++
	}

	s.logger.Info("content seed completed", zap.Int("inserted", inserted), zap.Int("total", len(items)))
	return inserted, nil
}

// AddContribution appends new hindi meanings or synonyms to a catalog item.
//
// Entries already present are dropped, existing order is preserved, and the
// returned count covers only the entries actually appended.
func (s *contentService) AddContribution(ctx context.Context, contentID int, kind models.ContributionKind, items []string) (*models.ContributionResult, error) {
	if kind != models.ContributionHindi && kind != models.ContributionSynonym {
		return nil, fmt.Errorf("invalid contribution kind: %s", kind)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("items list cannot be empty")
	}

	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		s.logger.Error("failed to get content item", zap.Error(err), zap.Int("contentId", contentID))
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}
	if content == nil {
		return nil, ErrContentNotFound
	}

	target := content.HindiMeanings
	if kind == models.ContributionSynonym {
		target = content.Synonyms
	}

	existing := make(map[string]struct{}, len(target))
	for _, entry := range target {
		existing[entry] = struct{}{}
	}

	added := 0
	for _, entry := range items {
		if _, ok := existing[entry]; ok {
			continue
		}
		existing[entry] = struct{}{}
		target = append(target, entry)
		added++
	}

	if added > 0 {
		hindiMeanings, synonyms := content.HindiMeanings, content.Synonyms
		if kind == models.ContributionHindi {
			hindiMeanings = target
		} else {
			synonyms = target
		}
		if err := s.contentRepo.UpdateLists(ctx, contentID, hindiMeanings, synonyms); err != nil {
			s.logger.Error("failed to update content lists", zap.Error(err), zap.Int("contentId", contentID))
			return nil, fmt.Errorf("failed to update content lists: %w", err)
		}
	}

	return &models.ContributionResult{
		Added: added,
		Type:  string(kind),
	}, nil
}
