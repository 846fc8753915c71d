package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/repos"
	"github.com/mediavault/backend/internal/types"
)

type CollectionService interface {
	Create(ctx context.Context, req types.CollectionCreate) (*types.Collection, error)
	List(ctx context.Context, userID string) ([]types.Collection, error)
}

type collectionService struct {
	db             *gorm.DB
	log            *logger.Logger
	collectionRepo repos.CollectionRepo
}

func NewCollectionService(db *gorm.DB, log *logger.Logger, collectionRepo repos.CollectionRepo) CollectionService {
	serviceLog := log.With("service", "CollectionService")
	return &collectionService{db: db, log: serviceLog, collectionRepo: collectionRepo}
}

func (cs *collectionService) Create(ctx context.Context, req types.CollectionCreate) (*types.Collection, error) {
	collection := &types.Collection{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		UserID:      req.UserID,
	}
	created, err := cs.collectionRepo.Create(ctx, nil, collection)
	if err != nil {
		cs.log.Error("Failed to create collection", "name", req.Name, "error", err)
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return created, nil
}

func (cs *collectionService) List(ctx context.Context, userID string) ([]types.Collection, error) {
	collections, err := cs.collectionRepo.GetAll(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

type TagService interface {
	Create(ctx context.Context, req types.TagCreate) (*types.Tag, error)
	List(ctx context.Context, userID string) ([]types.Tag, error)
}

type tagService struct {
	db      *gorm.DB
	log     *logger.Logger
	tagRepo repos.TagRepo
}

func NewTagService(db *gorm.DB, log *logger.Logger, tagRepo repos.TagRepo) TagService {
	serviceLog := log.With("service", "TagService")
	return &tagService{db: db, log: serviceLog, tagRepo: tagRepo}
}

func (ts *tagService) Create(ctx context.Context, req types.TagCreate) (*types.Tag, error) {
	tag := &types.Tag{
		Name:   req.Name,
		Color:  req.Color,
		UserID: req.UserID,
	}
	created, err := ts.tagRepo.Create(ctx, nil, tag)
	if err != nil {
		ts.log.Error("Failed to create tag", "name", req.Name, "error", err)
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return created, nil
}

func (ts *tagService) List(ctx context.Context, userID string) ([]types.Tag, error) {
	tags, err := ts.tagRepo.GetAll(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
