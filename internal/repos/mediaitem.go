package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/types"
)

type MediaItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.MediaItem) (*types.MediaItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MediaItem, error)
	GetAll(ctx context.Context, tx *gorm.DB, userID string) ([]types.MediaItem, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.MediaItem, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
	Search(ctx context.Context, tx *gorm.DB, query string, userID string) ([]types.MediaItem, error)
}

type mediaItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaItemRepo(db *gorm.DB, baseLog *logger.Logger) MediaItemRepo {
	repoLog := baseLog.With("repo", "MediaItemRepo")
	return &mediaItemRepo{db: db, log: repoLog}
}

func (mr *mediaItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.MediaItem) (*types.MediaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (mr *mediaItemRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.MediaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var result types.MediaItem
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (mr *mediaItemRepo) GetAll(ctx context.Context, tx *gorm.DB, userID string) ([]types.MediaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	results := []types.MediaItem{}
	query := transaction.WithContext(ctx).Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *mediaItemRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) (*types.MediaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(updates) == 0 {
		return mr.GetByID(ctx, transaction, id)
	}

	result := transaction.WithContext(ctx).
		Model(&types.MediaItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return mr.GetByID(ctx, transaction, id)
}

func (mr *mediaItemRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	result := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.MediaItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Search matches title, creator and genre case-insensitively. LOWER/LIKE is
// used instead of ILIKE so the same query runs on Postgres and SQLite.
func (mr *mediaItemRepo) Search(ctx context.Context, tx *gorm.DB, query string, userID string) ([]types.MediaItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	pattern := "%" + strings.ToLower(query) + "%"
	results := []types.MediaItem{}
	dbQuery := transaction.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(creator) LIKE ? OR LOWER(genre) LIKE ?", pattern, pattern, pattern)
	if userID != "" {
		dbQuery = dbQuery.Where("user_id = ?", userID)
	}
	if err := dbQuery.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
