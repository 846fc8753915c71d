package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/mediavault/backend/internal/types"
)

func TestAnalyzePreferencesEmptySnapshot(t *testing.T) {
	profile := AnalyzePreferences([]types.MediaItem{})

	if profile.TotalItems != 0 {
		t.Fatalf("TotalItems=%d, want 0", profile.TotalItems)
	}
	if profile.CompletionRate != 0 {
		t.Fatalf("CompletionRate=%v, want 0", profile.CompletionRate)
	}
	if profile.TopGenres == nil || len(profile.TopGenres) != 0 {
		t.Fatalf("TopGenres=%v, want empty non-nil slice", profile.TopGenres)
	}
	if profile.RecentTitles == nil || len(profile.RecentTitles) != 0 {
		t.Fatalf("RecentTitles=%v, want empty non-nil slice", profile.RecentTitles)
	}
	if profile.MediaTypeDistribution == nil || profile.StatusDistribution == nil {
		t.Fatal("distributions must be non-nil maps")
	}
}

func TestAnalyzePreferencesCompletionRateAndTopGenres(t *testing.T) {
	items := []types.MediaItem{
		{Title: "Dune", Genre: "Sci-Fi", Status: types.MediaStatusCompleted},
		{Title: "Arrival", Genre: "Sci-Fi", Status: types.MediaStatusOwned},
		{Title: "Heat", Genre: "Drama", Status: types.MediaStatusOwned},
	}

	profile := AnalyzePreferences(items)

	if profile.CompletionRate != 50.0 {
		t.Fatalf("CompletionRate=%v, want 50.0", profile.CompletionRate)
	}
	wantGenres := []types.NameCount{
		{Name: "Sci-Fi", Count: 2},
		{Name: "Drama", Count: 1},
	}
	if !reflect.DeepEqual(profile.TopGenres, wantGenres) {
		t.Fatalf("TopGenres=%v, want %v", profile.TopGenres, wantGenres)
	}
	if profile.TotalItems != 3 {
		t.Fatalf("TotalItems=%d, want 3", profile.TotalItems)
	}
}

func TestAnalyzePreferencesCompletionRateRounding(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		owned     int
		want      float64
	}{
		{name: "one_of_three", completed: 1, owned: 2, want: 33.3},
		{name: "two_of_three", completed: 2, owned: 1, want: 66.7},
		{name: "all_completed", completed: 4, owned: 0, want: 100.0},
		{name: "none_completed", completed: 0, owned: 5, want: 0.0},
		{name: "no_denominator", completed: 0, owned: 0, want: 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []types.MediaItem{}
			for i := 0; i < tc.completed; i++ {
				items = append(items, types.MediaItem{Status: types.MediaStatusCompleted})
			}
			for i := 0; i < tc.owned; i++ {
				items = append(items, types.MediaItem{Status: types.MediaStatusOwned})
			}
			items = append(items, types.MediaItem{Status: types.MediaStatusWishlist})

			profile := AnalyzePreferences(items)
			if profile.CompletionRate != tc.want {
				t.Fatalf("CompletionRate=%v, want %v", profile.CompletionRate, tc.want)
			}
			if profile.CompletionRate < 0 || profile.CompletionRate > 100 {
				t.Fatalf("CompletionRate=%v outside [0,100]", profile.CompletionRate)
			}
		})
	}
}

func TestAnalyzePreferencesSkipsUnknownGenresAndCreators(t *testing.T) {
	items := []types.MediaItem{
		{Genre: "Jazz", Creator: "Miles Davis", MediaType: types.MediaTypeMusic, Status: types.MediaStatusOwned},
		{Genre: "Unknown", Creator: "Unknown", MediaType: types.MediaTypeMusic, Status: types.MediaStatusOwned},
		{Genre: "", Creator: "", Status: types.MediaStatusOwned},
	}

	profile := AnalyzePreferences(items)

	if len(profile.TopGenres) != 1 || profile.TopGenres[0].Name != "Jazz" {
		t.Fatalf("TopGenres=%v, want only Jazz", profile.TopGenres)
	}
	if len(profile.TopCreators) != 1 || profile.TopCreators[0].Name != "Miles Davis" {
		t.Fatalf("TopCreators=%v, want only Miles Davis", profile.TopCreators)
	}
	// media type and status are counted unconditionally
	if profile.MediaTypeDistribution["music"] != 2 {
		t.Fatalf("music count=%d, want 2", profile.MediaTypeDistribution["music"])
	}
	if profile.MediaTypeDistribution["Unknown"] != 1 {
		t.Fatalf("Unknown media type count=%d, want 1", profile.MediaTypeDistribution["Unknown"])
	}
	if profile.StatusDistribution["owned"] != 3 {
		t.Fatalf("owned count=%d, want 3", profile.StatusDistribution["owned"])
	}
}

func TestAnalyzePreferencesTiesKeepSnapshotOrder(t *testing.T) {
	items := []types.MediaItem{
		{Genre: "Horror"},
		{Genre: "Comedy"},
		{Genre: "Western"},
		{Genre: "Comedy"},
	}

	profile := AnalyzePreferences(items)

	want := []types.NameCount{
		{Name: "Comedy", Count: 2},
		{Name: "Horror", Count: 1},
		{Name: "Western", Count: 1},
	}
	if !reflect.DeepEqual(profile.TopGenres, want) {
		t.Fatalf("TopGenres=%v, want %v", profile.TopGenres, want)
	}
}

func TestAnalyzePreferencesRecentTitles(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	items := []types.MediaItem{
		{Title: "Oldest", CreatedAt: base},
		{Title: "Newest", CreatedAt: base.Add(48 * time.Hour)},
		{Title: "NoTimestamp"},
		{Title: "Middle", CreatedAt: base.Add(24 * time.Hour)},
		{Title: "", CreatedAt: base.Add(72 * time.Hour)},
	}

	profile := AnalyzePreferences(items)

	want := []string{"Unknown", "Newest", "Middle", "Oldest", "NoTimestamp"}
	if !reflect.DeepEqual(profile.RecentTitles, want) {
		t.Fatalf("RecentTitles=%v, want %v", profile.RecentTitles, want)
	}
}

func TestAnalyzePreferencesRecentTitlesCapped(t *testing.T) {
	items := make([]types.MediaItem, 25)
	for i := range items {
		items[i] = types.MediaItem{
			Title:     "Item",
			CreatedAt: time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}
	}

	profile := AnalyzePreferences(items)
	if len(profile.RecentTitles) != 10 {
		t.Fatalf("len(RecentTitles)=%d, want 10", len(profile.RecentTitles))
	}
}

func TestAnalyzePreferencesIsPure(t *testing.T) {
	items := []types.MediaItem{
		{Title: "A", Genre: "Sci-Fi", Creator: "X", MediaType: types.MediaTypeMovie, Status: types.MediaStatusCompleted, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "B", Genre: "Drama", Creator: "Y", MediaType: types.MediaTypeBook, Status: types.MediaStatusOwned},
		{Title: "C", Genre: "Sci-Fi", Creator: "X", MediaType: types.MediaTypeGame, Status: types.MediaStatusWishlist},
	}

	first := AnalyzePreferences(items)
	for i := 0; i < 5; i++ {
		again := AnalyzePreferences(items)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("profile changed across calls: %v vs %v", first, again)
		}
	}
}

func TestAnalyzePreferencesCountsSumToPresentRecords(t *testing.T) {
	items := []types.MediaItem{
		{Genre: "Jazz"},
		{Genre: "Jazz"},
		{Genre: "Rock"},
		{Genre: "Unknown"},
		{Genre: ""},
	}

	profile := AnalyzePreferences(items)

	sum := 0
	prev := -1
	for i, nc := range profile.TopGenres {
		sum += nc.Count
		if i > 0 && nc.Count > prev {
			t.Fatalf("TopGenres not non-increasing: %v", profile.TopGenres)
		}
		prev = nc.Count
	}
	if sum != 3 {
		t.Fatalf("genre counts sum=%d, want 3", sum)
	}
}
