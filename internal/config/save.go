package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrExists is returned by Save when the target exists and overwrite is false.
var ErrExists = errors.New("config file already exists")

func Save(path string, cfg Config, overwrite bool) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return errors.New("config path is empty and $HOME is not set")
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return ErrExists
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
