package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Languages) != 3 || cfg.Languages[0] != "en" {
		t.Errorf("default languages = %v, want [en en-US en-GB]", cfg.Languages)
	}
	if cfg.Cookies != "" {
		t.Errorf("default cookies = %q, want empty", cfg.Cookies)
	}
	if !cfg.History {
		t.Error("default history should be true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty language list ok", func(c *Config) { c.Languages = nil }, false},
		{"region subtag ok", func(c *Config) { c.Languages = []string{"pt-BR"} }, false},
		{"empty language code", func(c *Config) { c.Languages = []string{""} }, true},
		{"garbage language code", func(c *Config) { c.Languages = []string{"not a code!"} }, true},
		{"missing cookie file", func(c *Config) { c.Cookies = "/definitely/not/there.txt" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	appDir := filepath.Join(tmpDir, "auto-short")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `
languages = ["id", "en"]
history = false
output_dir = "/tmp/transcripts"
`
	if err := os.WriteFile(filepath.Join(appDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Languages) != 2 || cfg.Languages[0] != "id" {
		t.Errorf("languages = %v, want [id en]", cfg.Languages)
	}
	if cfg.History {
		t.Error("history should be false")
	}
	if cfg.OutputDir != "/tmp/transcripts" {
		t.Errorf("output_dir = %q, want /tmp/transcripts", cfg.OutputDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if len(cfg.Languages) == 0 {
		t.Error("missing file should return defaults")
	}
}

func TestExpandOutputDir(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = "/tmp/test-transcripts"

	dir, err := cfg.ExpandOutputDir()
	if err != nil {
		t.Fatalf("ExpandOutputDir() error: %v", err)
	}
	if dir != "/tmp/test-transcripts" {
		t.Errorf("got %q, want /tmp/test-transcripts", dir)
	}
}
