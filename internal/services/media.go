package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/repos"
	"github.com/mediavault/backend/internal/types"
)

type MediaService interface {
	Create(ctx context.Context, req types.MediaItemCreate) (*types.MediaItem, error)
	Get(ctx context.Context, id uuid.UUID) (*types.MediaItem, error)
	List(ctx context.Context, userID string) ([]types.MediaItem, error)
	Update(ctx context.Context, id uuid.UUID, req types.MediaItemUpdate) (*types.MediaItem, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Search(ctx context.Context, query string, userID string) ([]types.MediaItem, error)
}

type mediaService struct {
	db        *gorm.DB
	log       *logger.Logger
	mediaRepo repos.MediaItemRepo
}

func NewMediaService(db *gorm.DB, log *logger.Logger, mediaRepo repos.MediaItemRepo) MediaService {
	serviceLog := log.With("service", "MediaService")
	return &mediaService{db: db, log: serviceLog, mediaRepo: mediaRepo}
}

func (ms *mediaService) Create(ctx context.Context, req types.MediaItemCreate) (*types.MediaItem, error) {
	if !req.MediaType.Valid() {
		return nil, fmt.Errorf("invalid media_type: %s", req.MediaType)
	}
	status := req.Status
	if status == "" {
		status = types.MediaStatusWishlist
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	item := &types.MediaItem{
		Title:       req.Title,
		Creator:     req.Creator,
		MediaType:   req.MediaType,
		Status:      status,
		ReleaseDate: req.ReleaseDate,
		Genre:       req.Genre,
		Description: req.Description,
		Metadata:    datatypes.JSONMap(req.Metadata),
		UserID:      req.UserID,
	}
	created, err := ms.mediaRepo.Create(ctx, nil, item)
	if err != nil {
		ms.log.Error("Failed to create media item", "title", req.Title, "error", err)
		return nil, fmt.Errorf("create media item: %w", err)
	}
	return created, nil
}

func (ms *mediaService) Get(ctx context.Context, id uuid.UUID) (*types.MediaItem, error) {
	item, err := ms.mediaRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("fetch media item: %w", err)
	}
	return item, nil
}

func (ms *mediaService) List(ctx context.Context, userID string) ([]types.MediaItem, error) {
	items, err := ms.mediaRepo.GetAll(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list media items: %w", err)
	}
	return items, nil
}

func (ms *mediaService) Update(ctx context.Context, id uuid.UUID, req types.MediaItemUpdate) (*types.MediaItem, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Creator != nil {
		updates["creator"] = *req.Creator
	}
	if req.MediaType != nil {
		if !req.MediaType.Valid() {
			return nil, fmt.Errorf("invalid media_type: %s", *req.MediaType)
		}
		updates["media_type"] = *req.MediaType
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("invalid status: %s", *req.Status)
		}
		updates["status"] = *req.Status
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Metadata != nil {
		updates["metadata"] = datatypes.JSONMap(req.Metadata)
	}

	updated, err := ms.mediaRepo.Update(ctx, nil, id, updates)
	if err != nil {
		ms.log.Error("Failed to update media item", "id", id, "error", err)
		return nil, fmt.Errorf("update media item: %w", err)
	}
	return updated, nil
}

func (ms *mediaService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := ms.mediaRepo.Delete(ctx, nil, id)
	if err != nil {
		ms.log.Error("Failed to delete media item", "id", id, "error", err)
		return false, fmt.Errorf("delete media item: %w", err)
	}
	return deleted, nil
}

func (ms *mediaService) Search(ctx context.Context, query string, userID string) ([]types.MediaItem, error) {
	items, err := ms.mediaRepo.Search(ctx, nil, query, userID)
	if err != nil {
		return nil, fmt.Errorf("search media items: %w", err)
	}
	return items, nil
}
