// Package extract isolates the embedded player configuration from a video
// watch page and returns its ordered caption track list.
//
// Extraction is a two-step contract: Carve anchors on the well-known
// assignment marker and delimits the raw object literal (tolerating any
// surrounding script noise), then ParseTracks strictly parses that candidate.
// Keeping the steps separate distinguishes "feature absent" (ErrMarkerNotFound)
// from "feature present but broken" (ErrMalformedPayload).
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Bryyzxm/auto-short/internal/media"
)

// marker is the assignment statement that introduces the embedded player
// configuration inside a <script> element on watch pages.
const marker = "ytInitialPlayerResponse"

var (
	// ErrMarkerNotFound means the page carries no player configuration at all
	// (not a video page, or no captions UI).
	ErrMarkerNotFound = errors.New("player response marker not found")

	// ErrMalformedPayload means the marker was found but the delimited
	// substring is not a parseable configuration object.
	ErrMalformedPayload = errors.New("malformed player response payload")

	// ErrNoCaptionTracks means the configuration parsed but lists no usable
	// caption tracks.
	ErrNoCaptionTracks = errors.New("no caption tracks in player response")
)

// PlayerConfig extracts the caption track list from a watch page body.
func PlayerConfig(pageHTML string) (*media.PlayerConfig, error) {
	raw, err := Carve(pageHTML)
	if err != nil {
		return nil, err
	}

	tracks, err := ParseTracks(raw)
	if err != nil {
		return nil, err
	}

	return &media.PlayerConfig{Tracks: tracks}, nil
}

// Carve locates the player response assignment in the page body and returns
// the balanced object literal that follows it. The search anchors only on the
// marker itself, never on surrounding markup structure.
//
// Script element text is tried first (the configuration always ships inside a
// <script> tag); if the body does not parse as HTML or no script carries the
// marker, the whole body is scanned as a fallback.
func Carve(pageHTML string) (string, error) {
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML)); err == nil {
		var raw string
		doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := s.Text()
			if !strings.Contains(text, marker) {
				return true
			}
			if carved, err := carveFrom(text); err == nil {
				raw = carved
				return false
			}
			return true
		})
		if raw != "" {
			return raw, nil
		}
	}

	// No script element carried a carvable assignment; scan the whole body so
	// non-DOM input still works and error kinds come out right.
	return carveFrom(pageHTML)
}

// carveFrom finds the first marker occurrence that is followed by an
// assignment and delimits the object literal after it.
func carveFrom(body string) (string, error) {
	search := body
	found := false

	for {
		idx := strings.Index(search, marker)
		if idx < 0 {
			break
		}
		found = true

		rest := search[idx+len(marker):]
		obj, ok := assignedObject(rest)
		if ok {
			raw, ok := balancedObject(obj)
			if !ok {
				return "", fmt.Errorf("%w: object literal never closes", ErrMalformedPayload)
			}
			return raw, nil
		}

		// Marker occurrence without an assignment (e.g. a quoted mention);
		// keep scanning.
		search = search[idx+len(marker):]
	}

	if found {
		return "", fmt.Errorf("%w: marker present but no object literal follows", ErrMalformedPayload)
	}
	return "", ErrMarkerNotFound
}

// assignedObject skips "= " after the marker and returns the text starting at
// the opening brace, or false if the occurrence is not an assignment.
func assignedObject(rest string) (string, bool) {
	i := 0
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\n' || rest[i] == '\r') {
		i++
	}
	if i >= len(rest) || rest[i] != '=' {
		return "", false
	}
	i++
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\n' || rest[i] == '\r') {
		i++
	}
	if i >= len(rest) || rest[i] != '{' {
		return "", false
	}
	return rest[i:], true
}

// balancedObject returns the prefix of b that forms a brace-balanced object
// literal. Depth counting is string-aware so braces inside JSON strings do
// not terminate the scan. Escapes are consumed one by one so a string ending
// in an escaped backslash still closes.
func balancedObject(b string) (string, bool) {
	if len(b) == 0 || b[0] != '{' {
		return "", false
	}
	depth := 0
	inStr := false
	esc := false
	for i := 0; i < len(b); i++ {
		c := b[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1], true
			}
		}
	}
	return "", false
}

// ParseTracks parses a carved configuration object and descends the fixed key
// path captions → playerCaptionsTracklistRenderer → captionTracks. Track
// entries missing either field are skipped; an empty result is an error.
func ParseTracks(raw string) ([]media.CaptionTrack, error) {
	var payload struct {
		Captions *struct {
			Renderer struct {
				CaptionTracks []media.CaptionTrack `json:"captionTracks"`
			} `json:"playerCaptionsTracklistRenderer"`
		} `json:"captions"`
	}

	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if payload.Captions == nil {
		return nil, ErrNoCaptionTracks
	}

	var tracks []media.CaptionTrack
	for _, t := range payload.Captions.Renderer.CaptionTracks {
		if t.LanguageCode == "" || t.BaseURL == "" {
			continue
		}
		tracks = append(tracks, t)
	}

	if len(tracks) == 0 {
		return nil, ErrNoCaptionTracks
	}

	return tracks, nil
}
