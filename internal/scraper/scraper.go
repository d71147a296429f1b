// Package scraper drives the per-video transcript pipeline: fetch the watch
// page, carve the embedded player configuration, select a caption track,
// fetch it, and assemble the normalized transcript.
//
// Each run is self-contained; runs for different videos share nothing and may
// execute concurrently. Within one run the two fetches are strictly
// sequential because the track URL is only known after the page is parsed.
package scraper

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/Bryyzxm/auto-short/internal/cookies"
	"github.com/Bryyzxm/auto-short/internal/extract"
	"github.com/Bryyzxm/auto-short/internal/httputil"
	"github.com/Bryyzxm/auto-short/internal/media"
	"github.com/Bryyzxm/auto-short/internal/subtitle"
	"github.com/Bryyzxm/auto-short/internal/transcript"
)

// ErrFetchFailed marks a transport error or non-success status on either of
// the two network fetches. Terminal for the video; retry policy is the
// caller's business.
var ErrFetchFailed = errors.New("fetch failed")

// watchURLBase is where bare video IDs are resolved.
const watchURLBase = "https://www.youtube.com/watch?v="

// videoIDPattern matches bare 11-character video IDs.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Scraper fetches transcripts for single videos.
type Scraper struct {
	client       *http.Client
	languages    []string
	cookieHeader string
}

// Result pairs the assembled record with the caption track it came from.
type Result struct {
	Record *media.TranscriptRecord
	Track  media.CaptionTrack
}

// New creates a Scraper with the hardened default client.
func New(languages []string, cs []cookies.Cookie) *Scraper {
	return NewWithClient(httputil.NewClient(), languages, cs)
}

// NewWithClient creates a Scraper using the given HTTP client.
func NewWithClient(client *http.Client, languages []string, cs []cookies.Cookie) *Scraper {
	return &Scraper{
		client:       client,
		languages:    languages,
		cookieHeader: cookies.Header(cs),
	}
}

// Fetch runs the full pipeline for one video. Any stage failure aborts the
// run with the stage's typed error; no partial result is returned.
func (s *Scraper) Fetch(videoURL string) (*Result, error) {
	watchURL, err := NormalizeWatchURL(videoURL)
	if err != nil {
		return nil, err
	}

	pageBody, err := s.fetch(watchURL, "watch page")
	if err != nil {
		return nil, err
	}

	cfg, err := extract.PlayerConfig(pageBody)
	if err != nil {
		return nil, fmt.Errorf("extracting player config: %w", err)
	}

	track, err := subtitle.Select(cfg.Tracks, s.languages)
	if err != nil {
		return nil, fmt.Errorf("selecting caption track: %w", err)
	}

	trackBody, err := s.fetch(track.BaseURL, "caption track")
	if err != nil {
		return nil, err
	}

	rec, err := transcript.Assemble(trackBody, watchURL)
	if err != nil {
		return nil, fmt.Errorf("assembling transcript: %w", err)
	}

	return &Result{Record: rec, Track: track}, nil
}

// fetch retrieves a document body, folding transport and status errors into
// ErrFetchFailed with the stage name for diagnosis.
func (s *Scraper) fetch(url, stage string) (string, error) {
	body, err := httputil.GetBody(s.client, url, s.cookieHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFetchFailed, stage, err)
	}
	return body, nil
}

// NormalizeWatchURL accepts either a full HTTPS watch URL or a bare
// 11-character video ID and returns the watch page URL to fetch.
func NormalizeWatchURL(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty video URL")
	}

	if videoIDPattern.MatchString(input) {
		return watchURLBase + input, nil
	}

	if err := httputil.ValidateURL(input); err != nil {
		return "", fmt.Errorf("invalid video URL %q: %w", input, err)
	}
	return input, nil
}
