package services

import (
	"encoding/json"
	"fmt"

	"github.com/mediavault/backend/internal/types"
)

// Prompt builders are pure: they embed the caller's inputs verbatim, state the
// model's role and spell out the exact JSON shape the response must follow.
// They never fail; missing optional inputs get an explicit placeholder.

const noDescriptionPlaceholder = "No description provided"

const (
	recommendationSampleSize = 10
	insightsSampleSize       = 15
	searchSampleSize         = 5
)

const categorizePromptTemplate = `You are a media categorization expert. Analyze this %s and provide categorization suggestions.

Title: %s
Creator: %s
Description: %s
Media Type: %s

Please provide a JSON response with the following structure:
{
    "suggested_genre": "Most appropriate genre",
    "alternative_genres": ["alt1", "alt2", "alt3"],
    "tags": ["tag1", "tag2", "tag3", "tag4", "tag5"],
    "enhanced_description": "A brief, informative description if none provided or enhancement of existing",
    "release_year_estimate": "YYYY or null if unknown",
    "similar_titles": ["title1", "title2", "title3"],
    "content_rating": "G/PG/PG-13/R/M/E/T etc. or null",
    "metadata": {
        "themes": ["theme1", "theme2"],
        "style": "style description",
        "target_audience": "target audience description"
    }
}

Base your suggestions on factual knowledge about this media item if you recognize it.
For genre, choose the most specific and accurate primary genre.
For tags, include both factual descriptors and thematic elements.
Keep descriptions concise but informative.`

func buildCategorizePrompt(title, creator string, mediaType types.MediaType, description string) string {
	if description == "" {
		description = noDescriptionPlaceholder
	}
	return fmt.Sprintf(categorizePromptTemplate, mediaType, title, creator, description, mediaType)
}

const recommendationsPromptTemplate = `You are a media recommendation expert. Based on this user's collection analysis, suggest new media they might enjoy.

User's Collection Analysis:
- Favorite Genres: %s
- Favorite Creators: %s
- Media Type Distribution: %s
- Recent Interests: %s
- Completion Rate: %.1f%%

Sample items from their collection:
%s

Please provide %d personalized recommendations in JSON format:
{
    "recommendations": [
        {
            "title": "Recommended Title",
            "creator": "Creator Name",
            "media_type": "movie/music/game/book/tv_show",
            "genre": "Genre",
            "description": "Why this is recommended for the user",
            "similarity_score": 0.85,
            "recommendation_reason": "Specific reason based on their collection",
            "similar_to": ["item1", "item2"]
        }
    ]
}

Focus on quality recommendations that match their demonstrated preferences.
Ensure variety while staying within their interest patterns.`

func buildRecommendationsPrompt(profile types.PreferenceProfile, items []types.MediaItem, limit int) string {
	return fmt.Sprintf(recommendationsPromptTemplate,
		compactJSON(headNameCounts(profile.TopGenres, 5)),
		compactJSON(headNameCounts(profile.TopCreators, 3)),
		compactJSON(profile.MediaTypeDistribution),
		compactJSON(headStrings(profile.RecentTitles, 5)),
		profile.CompletionRate,
		sampleItemsJSON(items, recommendationSampleSize),
		limit,
	)
}

const insightsPromptTemplate = `You are a collection analyst. Provide interesting insights about this media collection.

Collection Statistics:
- Total Items: %d
- Media Types: %s
- Top Genres: %s
- Completion Rate: %.1f%%
- Status Distribution: %s

Sample items:
%s

Provide insights in JSON format:
{
    "insights": [
        {
            "title": "Insight Title",
            "description": "Detailed insight description",
            "type": "preference/trend/achievement/recommendation",
            "importance": "high/medium/low"
        }
    ],
    "personality_profile": {
        "type": "Explorer/Completionist/Casual/Enthusiast",
        "description": "Profile description based on collection patterns",
        "traits": ["trait1", "trait2", "trait3"]
    },
    "collection_health": {
        "score": 85,
        "strengths": ["strength1", "strength2"],
        "suggestions": ["suggestion1", "suggestion2"]
    }
}

Focus on interesting patterns, preferences, and actionable insights.`

func buildInsightsPrompt(profile types.PreferenceProfile, items []types.MediaItem) string {
	return fmt.Sprintf(insightsPromptTemplate,
		profile.TotalItems,
		compactJSON(profile.MediaTypeDistribution),
		compactJSON(headNameCounts(profile.TopGenres, 10)),
		profile.CompletionRate,
		compactJSON(profile.StatusDistribution),
		sampleItemsJSON(items, insightsSampleSize),
	)
}

const searchPromptTemplate = `You are a smart search assistant for a media collection. Interpret this natural language query and suggest search parameters.

User Query: "%s"

Available media types: movie, music, game, book, tv_show
Available statuses: owned, wishlist, currently_in_use, completed

Sample from user's collection:
%s

Provide search interpretation in JSON format:
{
    "interpreted_query": "Clean search terms",
    "suggested_filters": {
        "media_type": "type or null",
        "status": "status or null",
        "genre": "genre or null",
        "creator": "creator or null",
        "release_year": "year or null"
    },
    "search_strategy": "exact/fuzzy/related",
    "explanation": "How you interpreted the query",
    "alternative_queries": ["alt1", "alt2"]
}

Examples:
- "sci-fi movies I own" -> filters for owned movies with sci-fi genre
- "games I haven't finished" -> filters for owned games not completed
- "new music to listen to" -> filters for wishlist music`

func buildSearchPrompt(query string, items []types.MediaItem) string {
	return fmt.Sprintf(searchPromptTemplate, query, sampleItemsJSON(items, searchSampleSize))
}

func headNameCounts(list []types.NameCount, n int) []types.NameCount {
	if len(list) < n {
		n = len(list)
	}
	return list[:n]
}

func headStrings(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return list[:n]
}

func sampleItemsJSON(items []types.MediaItem, n int) string {
	if len(items) < n {
		n = len(items)
	}
	raw, err := json.MarshalIndent(items[:n], "", "  ")
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
