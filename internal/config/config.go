package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"retro-term/internal/logger"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the colors the terminal renders with. Values are lipgloss color strings.
type Theme struct {
	Accent    string `toml:"accent"`
	Text      string `toml:"text"`
	Highlight string `toml:"highlight"`
	Input     string `toml:"input"`
	Link      string `toml:"link"`
	Muted     string `toml:"muted"`
}

// Config is the only persisted config file schema.
type Config struct {
	Welcome   bool   `toml:"welcome"`
	AltScreen bool   `toml:"alt_screen"`
	Mouse     bool   `toml:"mouse"`
	LogPath   string `toml:"log_path"`
	LogLevel  string `toml:"log_level"`
	// SessionLogDir holds one log file per interactive session. Empty disables them.
	SessionLogDir string `toml:"session_log_dir"`
	Theme         Theme  `toml:"theme"`
	Source        string `toml:"-"`
}

func DefaultTheme() Theme {
	return Theme{
		Accent:    "#39FF14",
		Text:      "#C8F7C5",
		Highlight: "#FFB454",
		Input:     "#7D56F4",
		Link:      "#5FD7FF",
		Muted:     "#7D7A85",
	}
}

func Default() Config {
	return Config{
		Welcome:   true,
		AltScreen: true,
		Mouse:     true,
		LogPath:   logger.DefaultLogPath,
		LogLevel:  "info",

		SessionLogDir: logger.DefaultSessionLogDir,
		Theme:         DefaultTheme(),
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retro-term", "config.toml")
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if env := strings.TrimSpace(os.Getenv(logger.LevelEnv)); env != "" {
		cfg.LogLevel = env
	}
	return cfg, nil
}
