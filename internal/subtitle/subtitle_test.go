package subtitle

import (
	"errors"
	"testing"

	"github.com/Bryyzxm/auto-short/internal/media"
)

func TestSelect(t *testing.T) {
	tracks := []media.CaptionTrack{
		{LanguageCode: "fr", BaseURL: "https://x/fr"},
		{LanguageCode: "en", BaseURL: "https://x/en"},
		{LanguageCode: "id", BaseURL: "https://x/id"},
		{LanguageCode: "en", BaseURL: "https://x/en2"},
	}

	tests := []struct {
		name      string
		preferred []string
		wantURL   string
	}{
		{
			name:      "first preference wins",
			preferred: []string{"en", "id"},
			wantURL:   "https://x/en",
		},
		{
			name:      "preference order dominates track order",
			preferred: []string{"id", "fr"},
			wantURL:   "https://x/id",
		},
		{
			name:      "duplicate codes resolve to earliest track",
			preferred: []string{"en"},
			wantURL:   "https://x/en",
		},
		{
			name:      "no match falls back to first track",
			preferred: []string{"de"},
			wantURL:   "https://x/fr",
		},
		{
			name:      "empty preference falls back to first track",
			preferred: nil,
			wantURL:   "https://x/fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tracks, tt.preferred)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got.BaseURL != tt.wantURL {
				t.Errorf("Select() = %q, want %q", got.BaseURL, tt.wantURL)
			}
		})
	}
}

func TestSelectEmptyTracks(t *testing.T) {
	_, err := Select(nil, []string{"en"})
	if !errors.Is(err, ErrNoTracks) {
		t.Fatalf("error = %v, want ErrNoTracks", err)
	}
}

func TestSelectDeterministic(t *testing.T) {
	tracks := []media.CaptionTrack{
		{LanguageCode: "es", BaseURL: "https://x/es"},
		{LanguageCode: "pt", BaseURL: "https://x/pt"},
	}

	first, err := Select(tracks, []string{"pt", "es"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got, err := Select(tracks, []string{"pt", "es"})
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("Select() not deterministic: %+v vs %+v", got, first)
		}
	}
}
