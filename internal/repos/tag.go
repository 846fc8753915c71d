package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/types"
)

type TagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) (*types.Tag, error)
	GetAll(ctx context.Context, tx *gorm.DB, userID string) ([]types.Tag, error)
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	repoLog := baseLog.With("repo", "TagRepo")
	return &tagRepo{db: db, log: repoLog}
}

func (tr *tagRepo) Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) (*types.Tag, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if err := transaction.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (tr *tagRepo) GetAll(ctx context.Context, tx *gorm.DB, userID string) ([]types.Tag, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	results := []types.Tag{}
	query := transaction.WithContext(ctx).Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
