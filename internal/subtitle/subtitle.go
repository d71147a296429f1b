// Package subtitle implements the caption track selection policy.
package subtitle

import (
	"errors"

	"github.com/Bryyzxm/auto-short/internal/media"
)

// ErrNoTracks is returned when there are no tracks to select from.
var ErrNoTracks = errors.New("no caption tracks to select from")

// Select picks exactly one caption track. Preferred language codes are tried
// in priority order; for each code the tracks are scanned in their original
// page order and the first equal-code track wins. Preference order dominates
// track order.
//
// If no track matches any preferred code, the first track is returned — a
// transcript in any language beats none. An empty preference list therefore
// degenerates to first-track-wins.
func Select(tracks []media.CaptionTrack, preferred []string) (media.CaptionTrack, error) {
	if len(tracks) == 0 {
		return media.CaptionTrack{}, ErrNoTracks
	}

	for _, code := range preferred {
		for _, t := range tracks {
			if t.LanguageCode == code {
				return t, nil
			}
		}
	}

	return tracks[0], nil
}
