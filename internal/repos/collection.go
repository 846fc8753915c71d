package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/types"
)

type CollectionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, collection *types.Collection) (*types.Collection, error)
	GetAll(ctx context.Context, tx *gorm.DB, userID string) ([]types.Collection, error)
}

type collectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
	repoLog := baseLog.With("repo", "CollectionRepo")
	return &collectionRepo{db: db, log: repoLog}
}

func (cr *collectionRepo) Create(ctx context.Context, tx *gorm.DB, collection *types.Collection) (*types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if err := transaction.WithContext(ctx).Create(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

func (cr *collectionRepo) GetAll(ctx context.Context, tx *gorm.DB, userID string) ([]types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	results := []types.Collection{}
	query := transaction.WithContext(ctx).Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
