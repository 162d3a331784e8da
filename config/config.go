package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/internal/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	configDirEnv   = "CODECOLOR_CONFIG_DIR"
	appDirName     = "codecolor"
	configFileName = "config.toml"
	libraryFile    = "themes.db"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// ServerConfig controls `codecolor serve`.
type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

// Config is the user configuration read from config.toml.
type Config struct {
	StateDir       string         `toml:"state_dir"`
	LibraryPath    string         `toml:"library_path"`
	DefaultMode    colorutil.Mode `toml:"default_mode"`
	TargetRatio    float64        `toml:"target_ratio"`
	ShadeCount     int            `toml:"shade_count"`
	TintCount      int            `toml:"tint_count"`
	AnalogousAngle float64        `toml:"analogous_angle"`
	LogLevel       string         `toml:"log_level"`
	Server         ServerConfig   `toml:"server"`
}

// Dir returns the configuration directory: $CODECOLOR_CONFIG_DIR, then
// $XDG_CONFIG_HOME/codecolor, then ~/.config/codecolor.
func Dir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// DefaultPath is config.toml inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		StateDir:       dir,
		LibraryPath:    filepath.Join(dir, libraryFile),
		DefaultMode:    colorutil.ModeHex,
		TargetRatio:    colorutil.DefaultTargetRatio,
		ShadeCount:     colorutil.DefaultShadeCount,
		TintCount:      colorutil.DefaultTintCount,
		AnalogousAngle: colorutil.DefaultAnalogousAngle,
		LogLevel:       "info",
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 7433,
		},
	}
}

// Load reads the config at path, layered over the defaults for its
// directory. Missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "no config at %s, using defaults", path)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks value ranges. Errors wrap ErrInvalid.
func (c Config) Validate() error {
	if _, err := colorutil.ParseMode(string(c.DefaultMode)); err != nil {
		return fmt.Errorf("%w: default_mode: %v", ErrInvalid, err)
	}
	if c.TargetRatio < 1 || c.TargetRatio > 21 {
		return fmt.Errorf("%w: target_ratio %v outside [1, 21]", ErrInvalid, c.TargetRatio)
	}
	if c.ShadeCount < 1 {
		return fmt.Errorf("%w: shade_count must be at least 1", ErrInvalid)
	}
	if c.TintCount < 1 {
		return fmt.Errorf("%w: tint_count must be at least 1", ErrInvalid)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d", ErrInvalid, c.Server.Port)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}
