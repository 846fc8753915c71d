package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediavault/backend/internal/handlers"
	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/server"
	"github.com/mediavault/backend/internal/types"
)

type stubMediaService struct {
	items   []types.MediaItem
	listErr error

	created   *types.MediaItem
	deletedID uuid.UUID
}

func (s *stubMediaService) Create(ctx context.Context, req types.MediaItemCreate) (*types.MediaItem, error) {
	if !req.MediaType.Valid() {
		return nil, errors.New("invalid media_type: " + string(req.MediaType))
	}
	item := &types.MediaItem{
		ID:        uuid.New(),
		Title:     req.Title,
		Creator:   req.Creator,
		MediaType: req.MediaType,
		Status:    types.MediaStatusWishlist,
		UserID:    req.UserID,
	}
	s.created = item
	return item, nil
}

func (s *stubMediaService) Get(ctx context.Context, id uuid.UUID) (*types.MediaItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, nil
}

func (s *stubMediaService) List(ctx context.Context, userID string) ([]types.MediaItem, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubMediaService) Update(ctx context.Context, id uuid.UUID, req types.MediaItemUpdate) (*types.MediaItem, error) {
	item, _ := s.Get(ctx, id)
	if item == nil {
		return nil, nil
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	return item, nil
}

func (s *stubMediaService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.deletedID = id
	item, _ := s.Get(context.Background(), id)
	return item != nil, nil
}

func (s *stubMediaService) Search(ctx context.Context, query string, userID string) ([]types.MediaItem, error) {
	var out []types.MediaItem
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Title), strings.ToLower(query)) {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubIntelligence struct {
	categorize      types.CategorizeResult
	recommendations types.RecommendationsResult
	insights        types.InsightsResult
	search          types.SearchResult

	gotItems []types.MediaItem
	gotQuery string
	gotLimit int
}

func (s *stubIntelligence) SmartCategorize(ctx context.Context, title, creator string, mediaType types.MediaType, description string) types.CategorizeResult {
	return s.categorize
}

func (s *stubIntelligence) GetRecommendations(ctx context.Context, items []types.MediaItem, limit int) types.RecommendationsResult {
	s.gotItems = items
	s.gotLimit = limit
	return s.recommendations
}

func (s *stubIntelligence) GenerateInsights(ctx context.Context, items []types.MediaItem) types.InsightsResult {
	s.gotItems = items
	return s.insights
}

func (s *stubIntelligence) SmartSearch(ctx context.Context, query string, items []types.MediaItem) types.SearchResult {
	s.gotQuery = query
	s.gotItems = items
	return s.search
}

type stubCollectionService struct {
	collections []types.Collection
}

func (s *stubCollectionService) Create(ctx context.Context, req types.CollectionCreate) (*types.Collection, error) {
	col := &types.Collection{ID: uuid.New(), Name: req.Name, Description: req.Description, UserID: req.UserID}
	s.collections = append(s.collections, *col)
	return col, nil
}

func (s *stubCollectionService) List(ctx context.Context, userID string) ([]types.Collection, error) {
	return s.collections, nil
}

type stubTagService struct {
	tags []types.Tag
}

func (s *stubTagService) Create(ctx context.Context, req types.TagCreate) (*types.Tag, error) {
	tag := &types.Tag{ID: uuid.New(), Name: req.Name, Color: req.Color, UserID: req.UserID}
	s.tags = append(s.tags, *tag)
	return tag, nil
}

func (s *stubTagService) List(ctx context.Context, userID string) ([]types.Tag, error) {
	return s.tags, nil
}

func newTestRouter(t *testing.T, media *stubMediaService, intel *stubIntelligence) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return server.NewRouter(server.RouterConfig{
		AllowOrigins:      []string{"http://localhost:3000"},
		SystemHandler:     handlers.NewSystemHandler(log, media),
		MediaHandler:      handlers.NewMediaHandler(log, media),
		CollectionHandler: handlers.NewCollectionHandler(log, &stubCollectionService{}, &stubTagService{}),
		AIHandler:         handlers.NewAIHandler(log, intel, media),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func TestRootAndHealthcheck(t *testing.T) {
	router := newTestRouter(t, &stubMediaService{}, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / code=%d", rec.Code)
	}
	var root map[string]string
	decodeBody(t, rec, &root)
	if root["message"] != "Media Vault API is running!" {
		t.Fatalf("root=%+v", root)
	}

	rec = doJSON(t, router, http.MethodGet, "/healthcheck", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthcheck code=%d", rec.Code)
	}
}

func TestMetaEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubMediaService{}, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodGet, "/media-types", nil)
	var typesBody struct {
		MediaTypes []string `json:"media_types"`
	}
	decodeBody(t, rec, &typesBody)
	if len(typesBody.MediaTypes) != 5 {
		t.Fatalf("media_types=%v", typesBody.MediaTypes)
	}

	rec = doJSON(t, router, http.MethodGet, "/media-statuses", nil)
	var statusBody struct {
		Statuses []string `json:"statuses"`
	}
	decodeBody(t, rec, &statusBody)
	if len(statusBody.Statuses) != 4 {
		t.Fatalf("statuses=%v", statusBody.Statuses)
	}
}

func TestDBTest(t *testing.T) {
	media := &stubMediaService{items: []types.MediaItem{
		{ID: uuid.New(), Title: "A"}, {ID: uuid.New(), Title: "B"},
		{ID: uuid.New(), Title: "C"}, {ID: uuid.New(), Title: "D"},
	}}
	router := newTestRouter(t, media, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodGet, "/db-test", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Status string            `json:"status"`
		Count  int               `json:"media_items_count"`
		Sample []types.MediaItem `json:"sample_items"`
	}
	decodeBody(t, rec, &body)
	if body.Status != "database connected" || body.Count != 4 {
		t.Fatalf("body=%+v", body)
	}
	if len(body.Sample) != 3 {
		t.Fatalf("len(sample)=%d, want 3", len(body.Sample))
	}
}

func TestMediaCreate(t *testing.T) {
	media := &stubMediaService{}
	router := newTestRouter(t, media, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodPost, "/api/media", map[string]any{
		"title":      "Dune",
		"creator":    "Frank Herbert",
		"media_type": "book",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var item types.MediaItem
	decodeBody(t, rec, &item)
	if item.Title != "Dune" || item.Status != types.MediaStatusWishlist {
		t.Fatalf("item=%+v", item)
	}

	// Missing required fields fail binding.
	rec = doJSON(t, router, http.MethodPost, "/api/media", map[string]any{"title": "No Creator"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400", rec.Code)
	}
}

func TestMediaGetNotFound(t *testing.T) {
	router := newTestRouter(t, &stubMediaService{}, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodGet, "/api/media/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d, want 404", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/media/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400 for bad id", rec.Code)
	}
}

func TestMediaUpdateAndDelete(t *testing.T) {
	existing := types.MediaItem{
		ID:        uuid.New(),
		Title:     "Blade Runner",
		Creator:   "Ridley Scott",
		MediaType: types.MediaTypeMovie,
		Status:    types.MediaStatusWishlist,
	}
	media := &stubMediaService{items: []types.MediaItem{existing}}
	router := newTestRouter(t, media, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodPut, "/api/media/"+existing.ID.String(), map[string]any{
		"status": "completed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var updated types.MediaItem
	decodeBody(t, rec, &updated)
	if updated.Status != types.MediaStatusCompleted {
		t.Fatalf("status=%s", updated.Status)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/media/"+existing.ID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	if media.deletedID != existing.ID {
		t.Fatalf("deletedID=%s", media.deletedID)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/media/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d, want 404", rec.Code)
	}
}

func TestMediaSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(t, &stubMediaService{}, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodGet, "/api/media/search", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/media/search?q=matrix", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
}

func TestCategorizeValidation(t *testing.T) {
	router := newTestRouter(t, &stubMediaService{}, &stubIntelligence{})

	// Missing creator fails binding.
	rec := doJSON(t, router, http.MethodPost, "/api/ai/categorize", map[string]any{
		"title":      "The Matrix",
		"media_type": "movie",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400", rec.Code)
	}

	// Unknown media type is rejected before reaching the model.
	rec = doJSON(t, router, http.MethodPost, "/api/ai/categorize", map[string]any{
		"title":      "The Matrix",
		"creator":    "The Wachowskis",
		"media_type": "podcast",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400", rec.Code)
	}
}

func TestCategorizePassesResultThrough(t *testing.T) {
	intel := &stubIntelligence{
		categorize: types.CategorizeResult{
			Success: true,
			Suggestions: &types.Suggestion{
				SuggestedGenre:    "Sci-Fi",
				AlternativeGenres: []string{"Action"},
				Tags:              []string{"classic"},
			},
		},
	}
	router := newTestRouter(t, &stubMediaService{}, intel)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/categorize", map[string]any{
		"title":      "The Matrix",
		"creator":    "The Wachowskis",
		"media_type": "movie",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}
	var result types.CategorizeResult
	decodeBody(t, rec, &result)
	if !result.Success || result.Suggestions == nil || result.Suggestions.SuggestedGenre != "Sci-Fi" {
		t.Fatalf("result=%+v", result)
	}
}

func TestRecommendationsFailureStaysHTTP200(t *testing.T) {
	intel := &stubIntelligence{
		recommendations: types.RecommendationsResult{
			Success: false,
			Error:   "No items in collection for recommendations",
		},
	}
	router := newTestRouter(t, &stubMediaService{}, intel)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/recommendations", map[string]any{
		"limit": 3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d, want 200 even on failure", rec.Code)
	}
	var result types.RecommendationsResult
	decodeBody(t, rec, &result)
	if result.Success || result.Error != "No items in collection for recommendations" {
		t.Fatalf("result=%+v", result)
	}
	if intel.gotLimit != 3 {
		t.Fatalf("limit=%d, want 3", intel.gotLimit)
	}
}

func TestInsightsPassesCollection(t *testing.T) {
	media := &stubMediaService{items: []types.MediaItem{
		{ID: uuid.New(), Title: "A", MediaType: types.MediaTypeMovie, Status: types.MediaStatusCompleted},
	}}
	intel := &stubIntelligence{insights: types.InsightsResult{Success: true}}
	router := newTestRouter(t, media, intel)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/insights", map[string]any{"user_id": "alice"})
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
	if len(intel.gotItems) != 1 {
		t.Fatalf("gotItems=%d, want 1", len(intel.gotItems))
	}
}

func TestAISearchRequiresQuery(t *testing.T) {
	intel := &stubIntelligence{search: types.SearchResult{Success: true, InterpretedQuery: "space opera"}}
	router := newTestRouter(t, &stubMediaService{}, intel)

	rec := doJSON(t, router, http.MethodPost, "/api/ai/search", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d, want 400 without query", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/ai/search", map[string]any{"query": "space opera"})
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
	if intel.gotQuery != "space opera" {
		t.Fatalf("gotQuery=%q", intel.gotQuery)
	}
}

func TestCollectionsAndTags(t *testing.T) {
	router := newTestRouter(t, &stubMediaService{}, &stubIntelligence{})

	rec := doJSON(t, router, http.MethodPost, "/api/collections", map[string]any{
		"name":    "Summer Reading",
		"user_id": "alice",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/collections", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/tags", map[string]any{"name": "favorites"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/tags", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d", rec.Code)
	}
}
