package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeMusic  MediaType = "music"
	MediaTypeGame   MediaType = "game"
	MediaTypeBook   MediaType = "book"
	MediaTypeTVShow MediaType = "tv_show"
)

func AllMediaTypes() []MediaType {
	return []MediaType{MediaTypeMovie, MediaTypeMusic, MediaTypeGame, MediaTypeBook, MediaTypeTVShow}
}

func (m MediaType) Valid() bool {
	switch m {
	case MediaTypeMovie, MediaTypeMusic, MediaTypeGame, MediaTypeBook, MediaTypeTVShow:
		return true
	}
	return false
}

type MediaStatus string

const (
	MediaStatusOwned          MediaStatus = "owned"
	MediaStatusWishlist       MediaStatus = "wishlist"
	MediaStatusCurrentlyInUse MediaStatus = "currently_in_use"
	MediaStatusCompleted      MediaStatus = "completed"
)

func AllMediaStatuses() []MediaStatus {
	return []MediaStatus{MediaStatusOwned, MediaStatusWishlist, MediaStatusCurrentlyInUse, MediaStatusCompleted}
}

func (s MediaStatus) Valid() bool {
	switch s {
	case MediaStatusOwned, MediaStatusWishlist, MediaStatusCurrentlyInUse, MediaStatusCompleted:
		return true
	}
	return false
}

type MediaItem struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string            `gorm:"not null;column:title" json:"title"`
	Creator     string            `gorm:"not null;column:creator" json:"creator"`
	MediaType   MediaType         `gorm:"not null;column:media_type" json:"media_type"`
	Status      MediaStatus       `gorm:"not null;column:status" json:"status"`
	ReleaseDate string            `gorm:"column:release_date" json:"release_date,omitempty"`
	Genre       string            `gorm:"column:genre" json:"genre,omitempty"`
	Description string            `gorm:"column:description" json:"description,omitempty"`
	Metadata    datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
	UserID      string            `gorm:"column:user_id;index" json:"user_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (MediaItem) TableName() string {
	return "media_items"
}

func (m *MediaItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type MediaItemCreate struct {
	Title       string                 `json:"title" binding:"required"`
	Creator     string                 `json:"creator" binding:"required"`
	MediaType   MediaType              `json:"media_type" binding:"required"`
	Status      MediaStatus            `json:"status"`
	ReleaseDate string                 `json:"release_date"`
	Genre       string                 `json:"genre"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
	UserID      string                 `json:"user_id"`
}

type MediaItemUpdate struct {
	Title       *string                `json:"title"`
	Creator     *string                `json:"creator"`
	MediaType   *MediaType             `json:"media_type"`
	Status      *MediaStatus           `json:"status"`
	ReleaseDate *string                `json:"release_date"`
	Genre       *string                `json:"genre"`
	Description *string                `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type Collection struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	IsPublic    bool      `gorm:"column:is_public" json:"is_public"`
	UserID      string    `gorm:"column:user_id;index" json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CollectionCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
	UserID      string `json:"user_id"`
}

type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Color     string    `gorm:"column:color" json:"color,omitempty"`
	UserID    string    `gorm:"column:user_id;index" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TagCreate struct {
	Name   string `json:"name" binding:"required"`
	Color  string `json:"color"`
	UserID string `json:"user_id"`
}
