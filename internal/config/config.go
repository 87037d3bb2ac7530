package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/tally/internal/facts"
)

// Config captures the settings Tally reads at startup.
type Config struct {
	CatFactURL string
	AdviceURL  string
	LogFile    string
}

const (
	defaultConfigPath = "~/.config/tally/config.toml"
	defaultLogFile    = "~/.local/state/tally/tally.log"
)

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		CatFactURL: facts.DefaultCatFactURL,
		AdviceURL:  facts.DefaultAdviceURL,
		LogFile:    mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatFactURL string `toml:"cat_fact_url"`
		AdviceURL  string `toml:"advice_url"`
		LogFile    string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatFactURL); v != "" {
		cfg.CatFactURL = v
	}
	if v := strings.TrimSpace(raw.AdviceURL); v != "" {
		cfg.AdviceURL = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	return cfg, nil
}

// WithLogFile returns a copy with the log file overridden. Blank paths leave
// the config unchanged.
func (c Config) WithLogFile(path string) Config {
	if strings.TrimSpace(path) != "" {
		c.LogFile = mustExpand(path)
	}
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
