package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const defaultHistoryCap = 100

// Config controls where the document lives and how much history it keeps.
type Config struct {
	DataPath    string `toml:"data_path"`
	HistoryCap  int    `toml:"history_cap"`
	DefaultMode Mode   `toml:"default_mode"`
}

// LoadConfig reads the optional TOML config file, fills defaults, and applies
// env overrides (AFFIRM_DATA, AFFIRM_HISTORY_CAP take highest precedence).
func LoadConfig() (Config, error) {
	cfg := Config{}
	p, err := configPath()
	if err == nil {
		if _, err := toml.DecodeFile(p, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}
	if cfg.DataPath == "" {
		d, err := dataDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataPath = filepath.Join(d, "affirmations.json")
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = defaultHistoryCap
	}
	if cfg.DefaultMode != ModeRandom {
		cfg.DefaultMode = ModeSequential
	}
	if v := os.Getenv("AFFIRM_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("AFFIRM_HISTORY_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryCap = n
		}
	}
	return cfg, nil
}

func configPath() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "affirm", "config.toml"), nil
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(h, ".config", "affirm", "config.toml"), nil
}

func dataDir() (string, error) {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "affirm"), nil
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(h, ".local", "share", "affirm"), nil
}
