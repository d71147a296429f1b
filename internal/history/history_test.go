package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Bryyzxm/auto-short/internal/media"
)

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entry := media.HistoryEntry{
		VideoURL:   "https://www.youtube.com/watch?v=abc123def45",
		Language:   "en",
		Characters: 1200,
		Words:      230,
		FetchedAt:  1756100000,
	}

	if err := Save(entry); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0] != entry {
		t.Errorf("loaded entry = %+v, want %+v", entries[0], entry)
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	first := media.HistoryEntry{
		VideoURL: "https://www.youtube.com/watch?v=abc123def45",
		Language: "fr", Characters: 10, Words: 2, FetchedAt: 1,
	}
	second := first
	second.Language = "en"
	second.Words = 5
	second.FetchedAt = 2

	if err := Save(first); err != nil {
		t.Fatal(err)
	}
	if err := Save(second); err != nil {
		t.Fatal(err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (update, not append)", len(entries))
	}
	if entries[0].Language != "en" || entries[0].FetchedAt != 2 {
		t.Errorf("entry not updated: %+v", entries[0])
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	dir := filepath.Join(dataDir, "auto-short")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}

	content := "# comment\n" +
		"\n" +
		"https://x/watch?v=a\ten\t100\t20\t1756100000\n" +
		"not enough fields\n" +
		"https://x/watch?v=b\tid\t50\t10\t1756100001\n"
	if err := os.WriteFile(filepath.Join(dir, "history.tsv"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil entries for missing file, got %v", entries)
	}
}

func TestFormatForDisplay(t *testing.T) {
	items := FormatForDisplay([]media.HistoryEntry{
		{VideoURL: "https://x/watch?v=a", Language: "en", Words: 42, FetchedAt: 1756100000},
	})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !strings.Contains(items[0], "https://x/watch?v=a") || !strings.Contains(items[0], "[en]") {
		t.Errorf("display item = %q", items[0])
	}
}
