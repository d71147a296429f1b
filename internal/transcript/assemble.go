// Package transcript assembles normalized transcript text from a fetched
// timedtext caption document.
package transcript

import (
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Bryyzxm/auto-short/internal/media"
)

// ErrNoTextFragments is returned when the caption document yields no spoken
// text at all.
var ErrNoTextFragments = errors.New("no text fragments in caption document")

// timedText mirrors the caption XML shape:
// <transcript><text start="x" dur="y">fragment</text>...</transcript>.
// Timing attributes are present in the source but discarded here.
type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Lines   []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize collapses every whitespace run (including newlines) into a single
// space and trims the ends. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// Assemble extracts all text fragments from a timedtext document in document
// order, joins and normalizes them, and builds the final record. The counts
// are always recomputed from the normalized text so they cannot drift.
func Assemble(trackBody, videoURL string) (*media.TranscriptRecord, error) {
	var tt timedText
	dec := xml.NewDecoder(strings.NewReader(trackBody))
	dec.Entity = xml.HTMLEntity
	if err := dec.Decode(&tt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTextFragments, err)
	}

	var fragments []string
	for _, line := range tt.Lines {
		if line.Text == "" {
			continue
		}
		fragments = append(fragments, html.UnescapeString(line.Text))
	}

	if len(fragments) == 0 {
		return nil, ErrNoTextFragments
	}

	text := Normalize(strings.Join(fragments, " "))
	if text == "" {
		return nil, ErrNoTextFragments
	}

	return &media.TranscriptRecord{
		Text:           text,
		VideoURL:       videoURL,
		CharacterCount: utf8.RuneCountInString(text),
		WordCount:      len(strings.Fields(text)),
	}, nil
}
