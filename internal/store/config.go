package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultYearSpan is how many years the year picker shows.
const DefaultYearSpan = 10

type GlobalConfig struct {
	// TUI holds optional user preferences for the interactive calendar.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is one of: light|dark|auto.
	Theme string `json:"theme,omitempty"`
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// YearSpan is the number of years in the year picker (default 10).
	YearSpan int `json:"yearSpan,omitempty"`
}

// YearSpan returns the configured year picker size, or DefaultYearSpan.
func (c *GlobalConfig) YearSpan() int {
	if c == nil || c.TUI == nil || c.TUI.YearSpan <= 0 {
		return DefaultYearSpan
	}
	return c.TUI.YearSpan
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.calendar).
	if v := strings.TrimSpace(os.Getenv("CALENDAR_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calendar"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the config file. A missing file yields an empty config.
func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Keep the previous config next to the new one; failures here don't block saving.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	// Unique temp name so a CLI `config set` and a running TUI never clobber each other.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
