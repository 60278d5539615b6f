package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides. Theme keys use the
// theme.<name> form; unknown keys and malformed entries are skipped.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "welcome":
			cfg.Welcome = parseBool(val, cfg.Welcome)
		case "alt_screen":
			cfg.AltScreen = parseBool(val, cfg.AltScreen)
		case "mouse":
			cfg.Mouse = parseBool(val, cfg.Mouse)
		case "log_path":
			cfg.LogPath = val
		case "log_level":
			cfg.LogLevel = val
		case "session_log_dir":
			cfg.SessionLogDir = val
		case "theme.accent":
			cfg.Theme.Accent = val
		case "theme.text":
			cfg.Theme.Text = val
		case "theme.highlight":
			cfg.Theme.Highlight = val
		case "theme.input":
			cfg.Theme.Input = val
		case "theme.link":
			cfg.Theme.Link = val
		case "theme.muted":
			cfg.Theme.Muted = val
		}
	}
	return cfg
}

func parseBool(val string, fallback bool) bool {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
