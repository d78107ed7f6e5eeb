package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ybabel/BeurerScaleManager/internal/store"
	"gopkg.in/yaml.v3"
)

// Config carries the persistence settings the surrounding application fixes
// at startup. Defaults come from the store package constants; an optional
// YAML file may override them.
type Config struct {
	// DataDir is the directory holding the database file. Default is the
	// saving folder under the user's home directory.
	DataDir string `yaml:"data_dir"`

	// DBFile is the database file name inside DataDir.
	DBFile string `yaml:"db_file"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() (Config, error) {
	dir, err := store.SavingDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DataDir: dir,
		DBFile:  store.DefaultDBFile,
	}, nil
}

// Load returns the defaults overridden by the YAML file at path. A missing
// file yields pure defaults; a malformed file is an error, never a silent
// fallback.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.DataDir == "" || cfg.DBFile == "" {
		return Config{}, fmt.Errorf("config %s: data_dir and db_file must not be empty", path)
	}
	return cfg, nil
}

// DBPath returns the full path to the database file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}
