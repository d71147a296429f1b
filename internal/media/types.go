// Package media defines shared types for the auto-short application.
package media

// CaptionTrack is a single language-tagged caption resource advertised by a
// video page. Tracks keep the order in which the page listed them; that order
// is the tie-break when no preferred language matches.
type CaptionTrack struct {
	LanguageCode string `json:"languageCode"` // BCP-47 code, e.g. "en", "en-US"
	BaseURL      string `json:"baseUrl"`      // timedtext resource URL
}

// PlayerConfig is the slice of the embedded player configuration the pipeline
// cares about. It lives only for the duration of a single run.
type PlayerConfig struct {
	Tracks []CaptionTrack
}

// TranscriptRecord is the pipeline's sole output for one video.
// CharacterCount and WordCount are always recomputed from Text, never set
// independently.
type TranscriptRecord struct {
	Text           string `json:"transcript_text"`
	VideoURL       string `json:"video_url,omitempty"`
	CharacterCount int    `json:"character_count"`
	WordCount      int    `json:"word_count"`
}

// HistoryEntry is a single entry in the fetch history.
type HistoryEntry struct {
	VideoURL   string // watch page URL
	Language   string // language code of the selected track
	Characters int    // character count of the transcript
	Words      int    // word count of the transcript
	FetchedAt  int64  // unix timestamp
}
