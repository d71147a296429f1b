// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Languages []string `toml:"languages"`  // caption language preference, highest priority first
	Cookies   string   `toml:"cookies"`    // path to a Netscape cookie file, empty for none
	OutputDir string   `toml:"output_dir"` // where --output saves transcripts
	History   bool     `toml:"history"`
	Debug     bool     `toml:"debug"`
}

// langCodePattern matches BCP-47-ish codes such as "en", "en-US", "pt-BR".
var langCodePattern = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Languages: []string{"en", "en-US", "en-GB"},
		Cookies:   "",
		OutputDir: "~/Documents/auto-short",
		History:   true,
		Debug:     false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "auto-short"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "auto-short"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds. An empty
// language list is allowed: track selection then falls back to the first
// track the page offers.
func (c *Config) Validate() error {
	for _, lang := range c.Languages {
		if !langCodePattern.MatchString(lang) {
			return fmt.Errorf("invalid language code %q (expected e.g. en, en-US)", lang)
		}
	}

	if c.Cookies != "" {
		if _, err := os.Stat(expandHome(c.Cookies)); err != nil {
			return fmt.Errorf("cookie file %q: %w", c.Cookies, err)
		}
	}

	return nil
}

// ExpandOutputDir resolves ~ in the output directory path.
func (c *Config) ExpandOutputDir() (string, error) {
	dir := expandHome(c.OutputDir)
	return filepath.Abs(dir)
}

// CookiePath resolves ~ in the cookie file path.
func (c *Config) CookiePath() string {
	return expandHome(c.Cookies)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// HistoryPath returns the path to the history file.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "auto-short", "history.tsv"), nil
}
