package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// DefaultMaxHistory mirrors the navigation default so the config file can
// be written without importing the navigation package.
const DefaultMaxHistory = 10

// Config holds xbank user configuration.
type Config struct {
	Theme      string `toml:"theme"`
	Locale     string `toml:"locale"`
	MaxHistory int    `toml:"max_history"`
	LogLevel   string `toml:"log_level"` // debug, info, warn, error
	path       string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:      "default",
		Locale:     "pt-BR",
		MaxHistory: DefaultMaxHistory,
		LogLevel:   "info",
	}
}

// LoadConfig loads config.toml from dir, writing the defaults there on
// first run.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.toml")
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Save default config.
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.MaxHistory < 1 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	cfg.path = path
	return &cfg, nil
}

// Path returns where the config is saved.
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.toml")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(c.path, buf.Bytes(), 0o644)
}

// Update applies fn to c and persists that change alone. The file is read
// again and fn applied to what is on disk, so values c holds only for this
// run (command-line overrides) are not written back.
func (c *Config) Update(fn func(*Config)) error {
	fn(c)

	if c.path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(dir, "config.toml")
	}
	onDisk, err := LoadConfig(filepath.Dir(c.path))
	if err != nil {
		return err
	}
	fn(onDisk)
	return onDisk.Save()
}

// DataDir returns the data directory for persistent storage.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "xbank")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "xbank")
		} else {
			dir = filepath.Join(home, ".xbank")
		}
	default: // Linux, BSD, etc.
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			dir = filepath.Join(xdgData, "xbank")
		} else {
			dir = filepath.Join(home, ".local", "share", "xbank")
		}
	}

	return dir, nil
}

// ConfigDir returns the directory holding config.toml.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "xbank")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "xbank")
		} else {
			dir = filepath.Join(home, ".xbank")
		}
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			dir = filepath.Join(xdgConfig, "xbank")
		} else {
			dir = filepath.Join(home, ".config", "xbank")
		}
	}

	return dir, nil
}
