package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/KirkDiggler/scorage/internal/repositories/store"
)

// Store backends
const (
	backendFile  = "file"
	backendRedis = "redis"
)

type cliConfig struct {
	Store storeConfig `toml:"store"`
	Redis redisConfig `toml:"redis"`
	UI    uiConfig    `toml:"ui"`
}

type storeConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

type redisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type uiConfig struct {
	Color bool `toml:"color"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scorage", "config.toml")
}

func defaultConfig() cliConfig {
	dir := "scorage-ledgers"
	if configDir, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(configDir, "scorage", "ledgers")
	}

	return cliConfig{
		Store: storeConfig{
			Backend: backendFile,
			Dir:     dir,
		},
		Redis: redisConfig{
			Addr:   "localhost:6379",
			Prefix: store.DefaultKeyPrefix,
		},
		UI: uiConfig{
			Color: true,
		},
	}
}

// loadConfig reads the TOML config at path over the defaults. A missing file
// leaves the defaults in place.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return cliConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cliConfig{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	switch cfg.Store.Backend {
	case backendFile:
		if meta.IsDefined("store", "dir") && strings.TrimSpace(cfg.Store.Dir) == "" {
			return cliConfig{}, fmt.Errorf("%s: [store].dir cannot be empty", path)
		}
	case backendRedis:
		if meta.IsDefined("redis", "addr") && strings.TrimSpace(cfg.Redis.Addr) == "" {
			return cliConfig{}, fmt.Errorf("%s: [redis].addr cannot be empty", path)
		}
	default:
		return cliConfig{}, fmt.Errorf("%s: unknown [store].backend %q (file|redis)", path, cfg.Store.Backend)
	}

	return cfg, nil
}
