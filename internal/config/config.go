package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Christoffel reads from its config file.
type Config struct {
	RestaurantName string
	Tagline        string
	LogDir         string
}

const (
	defaultConfigPath     = "~/.config/christoffel/config.toml"
	defaultLogDir         = "~/.local/share/christoffel/logs"
	defaultRestaurantName = "Christoffel's"
	defaultTagline        = "Fine Dining Experience"
	logFileName           = "christoffel.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		RestaurantName: defaultRestaurantName,
		Tagline:        defaultTagline,
		LogDir:         mustExpand(defaultLogDir),
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
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
		RestaurantName string `toml:"restaurant_name"`
		Tagline        string `toml:"tagline"`
		LogDir         string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if name := strings.TrimSpace(raw.RestaurantName); name != "" {
		cfg.RestaurantName = name
	}
	if tagline := strings.TrimSpace(raw.Tagline); tagline != "" {
		cfg.Tagline = tagline
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	return cfg, nil
}

// LogPath returns the path to the activity log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
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
