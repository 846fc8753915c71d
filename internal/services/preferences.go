package services

import (
	"math"
	"sort"

	"github.com/mediavault/backend/internal/types"
)

const recentTitleLimit = 10

const unknownBucket = "Unknown"

// AnalyzePreferences derives a preference profile from a collection snapshot.
// It is a pure function: same snapshot in, identical profile out. Records with
// a missing or "Unknown" genre/creator are skipped from the rankings; media
// type and status are always counted, with missing values landing in an
// "Unknown" bucket.
func AnalyzePreferences(items []types.MediaItem) types.PreferenceProfile {
	profile := types.PreferenceProfile{
		TopGenres:             []types.NameCount{},
		TopCreators:           []types.NameCount{},
		MediaTypeDistribution: map[string]int{},
		StatusDistribution:    map[string]int{},
		RecentTitles:          []string{},
		TotalItems:            len(items),
	}
	if len(items) == 0 {
		return profile
	}

	genreCounts := map[string]int{}
	genreOrder := []string{}
	creatorCounts := map[string]int{}
	creatorOrder := []string{}

	for _, item := range items {
		if item.Genre != "" && item.Genre != unknownBucket {
			if _, seen := genreCounts[item.Genre]; !seen {
				genreOrder = append(genreOrder, item.Genre)
			}
			genreCounts[item.Genre]++
		}
		if item.Creator != "" && item.Creator != unknownBucket {
			if _, seen := creatorCounts[item.Creator]; !seen {
				creatorOrder = append(creatorOrder, item.Creator)
			}
			creatorCounts[item.Creator]++
		}

		mediaType := string(item.MediaType)
		if mediaType == "" {
			mediaType = unknownBucket
		}
		profile.MediaTypeDistribution[mediaType]++

		status := string(item.Status)
		if status == "" {
			status = unknownBucket
		}
		profile.StatusDistribution[status]++
	}

	profile.TopGenres = rankCounts(genreOrder, genreCounts)
	profile.TopCreators = rankCounts(creatorOrder, creatorCounts)

	completed := profile.StatusDistribution[string(types.MediaStatusCompleted)]
	owned := profile.StatusDistribution[string(types.MediaStatusOwned)]
	if completed+owned > 0 {
		rate := float64(completed) / float64(completed+owned) * 100
		profile.CompletionRate = math.Round(rate*10) / 10
	}

	profile.RecentTitles = recentTitles(items)

	return profile
}

// rankCounts orders names by descending count; ties keep first-seen snapshot
// order (the sort is stable over that order).
func rankCounts(order []string, counts map[string]int) []types.NameCount {
	ranked := make([]types.NameCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, types.NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// recentTitles sorts by creation time descending. A zero CreatedAt sorts last,
// matching records that never got a timestamp.
func recentTitles(items []types.MediaItem) []string {
	sorted := make([]types.MediaItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].CreatedAt.Before(sorted[i].CreatedAt)
	})

	limit := recentTitleLimit
	if len(sorted) < limit {
		limit = len(sorted)
	}
	titles := make([]string, 0, limit)
	for _, item := range sorted[:limit] {
		title := item.Title
		if title == "" {
			title = unknownBucket
		}
		titles = append(titles, title)
	}
	return titles
}
