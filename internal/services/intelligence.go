package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mediavault/backend/internal/logger"
	"github.com/mediavault/backend/internal/types"
	"github.com/mediavault/backend/internal/utils"
)

// IntelligenceService is the model-backed layer over a collection snapshot.
// Every operation returns a well-formed result even on total model failure:
// SmartCategorize degrades silently to the static fallback, the other three
// report success=false with a reason. None of these methods return a Go error.
type IntelligenceService interface {
	SmartCategorize(ctx context.Context, title, creator string, mediaType types.MediaType, description string) types.CategorizeResult
	GetRecommendations(ctx context.Context, items []types.MediaItem, limit int) types.RecommendationsResult
	GenerateInsights(ctx context.Context, items []types.MediaItem) types.InsightsResult
	SmartSearch(ctx context.Context, query string, items []types.MediaItem) types.SearchResult
}

const defaultRecommendationLimit = 5

const (
	errNoItemsForRecommendations = "No items in collection for recommendations"
	errNoItemsForInsights        = "No items in collection"
	errParseRecommendations      = "Failed to parse AI recommendations"
	errParseInsights             = "Failed to parse AI insights"
	errMissingRecommendations    = "AI response missing recommendations"
	errMissingInsights           = "AI response missing insights"
	errQueryRequired             = "Query is required"
	explanationKeywordFallback   = "Basic keyword search"
)

type intelligenceService struct {
	log            *logger.Logger
	ai             OpenAIClient
	requestTimeout time.Duration
}

func NewIntelligenceService(log *logger.Logger, ai OpenAIClient) IntelligenceService {
	serviceLog := log.With("service", "IntelligenceService")
	timeoutSec := utils.GetEnvAsInt("AI_REQUEST_TIMEOUT", 30, log)
	return &intelligenceService{
		log:            serviceLog,
		ai:             ai,
		requestTimeout: time.Duration(timeoutSec) * time.Second,
	}
}

// complete bounds the model call; an expired deadline surfaces as an error and
// takes the same path as any other transport failure.
func (is *intelligenceService) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, is.requestTimeout)
	defer cancel()
	return is.ai.Complete(ctx, prompt)
}

func (is *intelligenceService) SmartCategorize(ctx context.Context, title, creator string, mediaType types.MediaType, description string) types.CategorizeResult {
	prompt := buildCategorizePrompt(title, creator, mediaType, description)

	raw, err := is.complete(ctx, prompt)
	if err != nil {
		is.log.Warn("Categorization model call failed, using fallback", "title", title, "error", err)
		return fallbackCategorization(creator, mediaType)
	}

	var suggestion types.Suggestion
	if err := decodeModelJSON(raw, &suggestion); err != nil {
		is.log.Warn("Categorization response unparseable, using fallback", "title", title, "error", err)
		return fallbackCategorization(creator, mediaType)
	}
	if suggestion.SuggestedGenre == "" {
		is.log.Warn("Categorization response missing suggested_genre, using fallback", "title", title)
		return fallbackCategorization(creator, mediaType)
	}

	if suggestion.AlternativeGenres == nil {
		suggestion.AlternativeGenres = []string{}
	}
	if suggestion.Tags == nil {
		suggestion.Tags = []string{}
	}
	if suggestion.SimilarTitles == nil {
		suggestion.SimilarTitles = []string{}
	}
	if suggestion.Metadata.Themes == nil {
		suggestion.Metadata.Themes = []string{}
	}

	return types.CategorizeResult{Success: true, Suggestions: &suggestion}
}

func (is *intelligenceService) GetRecommendations(ctx context.Context, items []types.MediaItem, limit int) types.RecommendationsResult {
	if len(items) == 0 {
		return types.RecommendationsResult{Success: false, Error: errNoItemsForRecommendations}
	}
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	analysis := AnalyzePreferences(items)
	prompt := buildRecommendationsPrompt(analysis, items, limit)

	raw, err := is.complete(ctx, prompt)
	if err != nil {
		is.log.Warn("Recommendations model call failed", "error", err)
		return types.RecommendationsResult{Success: false, Error: errParseRecommendations}
	}

	var payload struct {
		Recommendations []types.Recommendation `json:"recommendations"`
	}
	if err := decodeModelJSON(raw, &payload); err != nil {
		is.log.Warn("Recommendations response unparseable", "error", err)
		return types.RecommendationsResult{Success: false, Error: errParseRecommendations}
	}
	if len(payload.Recommendations) == 0 {
		is.log.Warn("Recommendations response parsed but empty")
		return types.RecommendationsResult{Success: false, Error: errMissingRecommendations}
	}

	recommendations := payload.Recommendations
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	return types.RecommendationsResult{
		Success:         true,
		Analysis:        &analysis,
		Recommendations: recommendations,
	}
}

func (is *intelligenceService) GenerateInsights(ctx context.Context, items []types.MediaItem) types.InsightsResult {
	if len(items) == 0 {
		return types.InsightsResult{Success: false, Error: errNoItemsForInsights}
	}

	analysis := AnalyzePreferences(items)
	prompt := buildInsightsPrompt(analysis, items)

	raw, err := is.complete(ctx, prompt)
	if err != nil {
		is.log.Warn("Insights model call failed", "error", err)
		return types.InsightsResult{Success: false, Error: errParseInsights}
	}

	var payload struct {
		Insights           []types.Insight           `json:"insights"`
		PersonalityProfile *types.PersonalityProfile `json:"personality_profile"`
		CollectionHealth   *types.CollectionHealth   `json:"collection_health"`
	}
	if err := decodeModelJSON(raw, &payload); err != nil {
		is.log.Warn("Insights response unparseable", "error", err)
		return types.InsightsResult{Success: false, Error: errParseInsights}
	}
	if len(payload.Insights) == 0 {
		is.log.Warn("Insights response parsed but empty")
		return types.InsightsResult{Success: false, Error: errMissingInsights}
	}

	return types.InsightsResult{
		Success:            true,
		CollectionAnalysis: &analysis,
		Insights:           payload.Insights,
		PersonalityProfile: payload.PersonalityProfile,
		CollectionHealth:   payload.CollectionHealth,
	}
}

func (is *intelligenceService) SmartSearch(ctx context.Context, query string, items []types.MediaItem) types.SearchResult {
	if strings.TrimSpace(query) == "" {
		return types.SearchResult{Success: false, Error: errQueryRequired}
	}

	prompt := buildSearchPrompt(query, items)

	raw, err := is.complete(ctx, prompt)
	if err != nil {
		is.log.Warn("Search model call failed", "query", query, "error", err)
		return keywordSearchFallback(query)
	}

	var payload struct {
		InterpretedQuery   string               `json:"interpreted_query"`
		SuggestedFilters   *types.SearchFilters `json:"suggested_filters"`
		SearchStrategy     string               `json:"search_strategy"`
		Explanation        string               `json:"explanation"`
		AlternativeQueries []string             `json:"alternative_queries"`
	}
	if err := decodeModelJSON(raw, &payload); err != nil {
		is.log.Warn("Search response unparseable", "query", query, "error", err)
		return keywordSearchFallback(query)
	}
	if payload.InterpretedQuery == "" {
		is.log.Warn("Search response missing interpreted_query", "query", query)
		return keywordSearchFallback(query)
	}

	if payload.AlternativeQueries == nil {
		payload.AlternativeQueries = []string{}
	}

	return types.SearchResult{
		Success:            true,
		InterpretedQuery:   payload.InterpretedQuery,
		SuggestedFilters:   payload.SuggestedFilters,
		SearchStrategy:     payload.SearchStrategy,
		Explanation:        payload.Explanation,
		AlternativeQueries: payload.AlternativeQueries,
	}
}

// keywordSearchFallback keeps the caller's query verbatim so a plain keyword
// search can still run against the store.
func keywordSearchFallback(query string) types.SearchResult {
	return types.SearchResult{
		Success:          false,
		InterpretedQuery: query,
		Explanation:      explanationKeywordFallback,
	}
}

var fallbackGenres = map[types.MediaType][]string{
	types.MediaTypeMovie:  {"Drama", "Action", "Comedy", "Thriller", "Sci-Fi"},
	types.MediaTypeMusic:  {"Pop", "Rock", "Hip-Hop", "Classical", "Electronic"},
	types.MediaTypeGame:   {"Action", "RPG", "Strategy", "Puzzle", "Adventure"},
	types.MediaTypeBook:   {"Fiction", "Non-Fiction", "Fantasy", "Mystery", "Biography"},
	types.MediaTypeTVShow: {"Drama", "Comedy", "Documentary", "Reality", "News"},
}

// fallbackCategorization is the static always-succeeding path. It never
// signals failure, regardless of why the model path was abandoned.
func fallbackCategorization(creator string, mediaType types.MediaType) types.CategorizeResult {
	genres, ok := fallbackGenres[mediaType]
	if !ok {
		genres = []string{"General"}
	}
	alternatives := genres
	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}

	return types.CategorizeResult{
		Success: true,
		Suggestions: &types.Suggestion{
			SuggestedGenre:      genres[0],
			AlternativeGenres:   alternatives,
			Tags:                []string{"popular", string(mediaType), "entertainment"},
			EnhancedDescription: fmt.Sprintf("A %s by %s", mediaType, creator),
			ReleaseYearEstimate: nil,
			SimilarTitles:       []string{},
			ContentRating:       nil,
			Metadata: types.SuggestionMetadata{
				Themes:         []string{"general"},
				Style:          "unknown",
				TargetAudience: "general",
			},
		},
	}
}

// decodeModelJSON parses model output that may arrive wrapped in markdown
// fences or surrounded by prose. Anything outside the outermost braces is
// discarded before unmarshalling.
func decodeModelJSON(raw string, out any) error {
	extracted := extractJSONObject(raw)
	if extracted == "" {
		return fmt.Errorf("no JSON object in model output")
	}
	if err := json.Unmarshal([]byte(extracted), out); err != nil {
		return fmt.Errorf("parse model JSON: %w", err)
	}
	return nil
}

func extractJSONObject(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
