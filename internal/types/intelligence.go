package types

// NameCount is one entry of an ordered frequency ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PreferenceProfile is the deterministic statistical summary of a collection
// snapshot. It is recomputed fresh on every call and never persisted.
type PreferenceProfile struct {
	TopGenres             []NameCount    `json:"top_genres"`
	TopCreators           []NameCount    `json:"top_creators"`
	MediaTypeDistribution map[string]int `json:"media_type_distribution"`
	StatusDistribution    map[string]int `json:"status_distribution"`
	CompletionRate        float64        `json:"completion_rate"`
	RecentTitles          []string       `json:"recent_titles"`
	TotalItems            int            `json:"total_items"`
}

type SuggestionMetadata struct {
	Themes         []string `json:"themes"`
	Style          string   `json:"style"`
	TargetAudience string   `json:"target_audience"`
}

type Suggestion struct {
	SuggestedGenre      string             `json:"suggested_genre"`
	AlternativeGenres   []string           `json:"alternative_genres"`
	Tags                []string           `json:"tags"`
	EnhancedDescription string             `json:"enhanced_description"`
	ReleaseYearEstimate *string            `json:"release_year_estimate"`
	SimilarTitles       []string           `json:"similar_titles"`
	ContentRating       *string            `json:"content_rating"`
	Metadata            SuggestionMetadata `json:"metadata"`
}

type CategorizeResult struct {
	Success     bool        `json:"success"`
	Suggestions *Suggestion `json:"suggestions,omitempty"`
}

type Recommendation struct {
	Title                string   `json:"title"`
	Creator              string   `json:"creator"`
	MediaType            string   `json:"media_type"`
	Genre                string   `json:"genre"`
	Description          string   `json:"description"`
	SimilarityScore      float64  `json:"similarity_score"`
	RecommendationReason string   `json:"recommendation_reason"`
	SimilarTo            []string `json:"similar_to"`
}

type RecommendationsResult struct {
	Success         bool               `json:"success"`
	Analysis        *PreferenceProfile `json:"analysis,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	Error           string             `json:"error,omitempty"`
}

type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Importance  string `json:"importance"`
}

type PersonalityProfile struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

type CollectionHealth struct {
	Score       float64  `json:"score"`
	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}

type InsightsResult struct {
	Success            bool                `json:"success"`
	CollectionAnalysis *PreferenceProfile  `json:"collection_analysis,omitempty"`
	Insights           []Insight           `json:"insights,omitempty"`
	PersonalityProfile *PersonalityProfile `json:"personality_profile,omitempty"`
	CollectionHealth   *CollectionHealth   `json:"collection_health,omitempty"`
	Error              string              `json:"error,omitempty"`
}

type SearchFilters struct {
	MediaType   *string `json:"media_type"`
	Status      *string `json:"status"`
	Genre       *string `json:"genre"`
	Creator     *string `json:"creator"`
	ReleaseYear *string `json:"release_year"`
}

type SearchResult struct {
	Success            bool           `json:"success"`
	InterpretedQuery   string         `json:"interpreted_query,omitempty"`
	SuggestedFilters   *SearchFilters `json:"suggested_filters,omitempty"`
	SearchStrategy     string         `json:"search_strategy,omitempty"`
	Explanation        string         `json:"explanation,omitempty"`
	AlternativeQueries []string       `json:"alternative_queries,omitempty"`
	Error              string         `json:"error,omitempty"`
}
