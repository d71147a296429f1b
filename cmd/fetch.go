package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bryyzxm/auto-short/internal/cookies"
	"github.com/Bryyzxm/auto-short/internal/history"
	"github.com/Bryyzxm/auto-short/internal/httputil"
	"github.com/Bryyzxm/auto-short/internal/media"
	"github.com/Bryyzxm/auto-short/internal/scraper"
)

// fetchRun is the default command: auto-short <video-url...>
// Videos are processed one by one; a failed video is reported and skipped so
// the rest of the batch still runs.
func fetchRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no video URL provided (see --help)")
	}

	var cs []cookies.Cookie
	if cfg.Cookies != "" {
		var err error
		cs, err = cookies.Load(cfg.CookiePath())
		if err != nil {
			return fmt.Errorf("loading cookies: %w", err)
		}
		debugf("loaded %d cookies from %s", len(cs), cfg.Cookies)
	}

	s := scraper.New(cfg.Languages, cs)

	failed := 0
	for _, videoURL := range args {
		if err := fetchOne(s, videoURL); err != nil {
			fmt.Fprintf(os.Stderr, "auto-short: %s: %v\n", videoURL, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d videos failed", failed, len(args))
	}
	return nil
}

// fetchOne runs the pipeline for a single video and emits the result.
func fetchOne(s *scraper.Scraper, videoURL string) error {
	res, err := s.Fetch(videoURL)
	if err != nil {
		return err
	}

	debugf("selected track %s: %d characters, %d words",
		res.Track.LanguageCode, res.Record.CharacterCount, res.Record.WordCount)

	if err := emit(res.Record); err != nil {
		return err
	}

	if cfg.History {
		entry := media.HistoryEntry{
			VideoURL:   res.Record.VideoURL,
			Language:   res.Track.LanguageCode,
			Characters: res.Record.CharacterCount,
			Words:      res.Record.WordCount,
			FetchedAt:  time.Now().Unix(),
		}
		if err := history.Save(entry); err != nil {
			debugf("saving history failed: %v", err)
		}
	}

	return nil
}

// emit writes a record as JSON, to a file, or to stdout depending on flags.
func emit(rec *media.TranscriptRecord) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	if flagSave || flagOutput != "" {
		dir := flagOutput
		if dir == "" {
			var err error
			dir, err = cfg.ExpandOutputDir()
			if err != nil {
				return fmt.Errorf("resolving output dir: %w", err)
			}
		}
		path, err := httputil.SafeOutputPath(dir, transcriptFilename(rec.VideoURL))
		if err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(rec.Text+"\n"), 0644); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved: %s\n", path)
		return nil
	}

	fmt.Println(rec.Text)
	return nil
}

// transcriptFilename derives an output filename from a watch URL, preferring
// the video ID query parameter.
func transcriptFilename(watchURL string) string {
	if u, err := url.Parse(watchURL); err == nil {
		if id := u.Query().Get("v"); id != "" {
			return id + ".txt"
		}
		if seg := strings.Trim(u.Path, "/"); seg != "" {
			parts := strings.Split(seg, "/")
			return parts[len(parts)-1] + ".txt"
		}
	}
	return "transcript.txt"
}
