// Where: internal/infra/config/config.go
// What: CLI config file loading.
// Why: Keep host location and invocation defaults out of every command line.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/optofluidics/ofbatch/internal/constants"
	"github.com/optofluidics/ofbatch/internal/infra/envutil"
	"github.com/optofluidics/ofbatch/internal/meta"
	"gopkg.in/yaml.v3"
)

var userHomeDir = os.UserHomeDir

// Config represents ~/.<brand>/config.yaml.
type Config struct {
	Version       int      `yaml:"version"`
	Runner        string   `yaml:"runner,omitempty"`
	Host          string   `yaml:"host,omitempty"`
	Plugin        string   `yaml:"plugin,omitempty"`
	Image         string   `yaml:"image,omitempty"`
	ParametersDir string   `yaml:"parameters_dir,omitempty"`
	Args          []string `yaml:"args,omitempty"`
}

// DefaultConfig returns an initialized Config with version set.
func DefaultConfig() Config {
	return Config{Version: 1}
}

// ConfigPath returns the default config file location. The brand HOME
// environment variable overrides the user home directory.
func ConfigPath() (string, error) {
	if home := envutil.GetHostEnv("HOME"); home != "" {
		return filepath.Join(home, meta.ConfigFilename), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir (set %s): %w", constants.EnvHome, err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFilename), nil
}

// LoadConfig reads, validates, and parses the config file at path.
// A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(payload)
}

// ParseConfig validates payload against the embedded schema and decodes it.
func ParseConfig(payload []byte) (Config, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return DefaultConfig(), nil
	}
	if err := validateConfig(payload); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
