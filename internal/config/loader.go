package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "ball.yaml"

// LoadBall loads Ball configuration.
// Search order: customPath -> ~/.ball/configs/ball.yaml -> ./configs/ball.yaml -> embedded default
//
// Files are decoded on top of DefaultBallConfig, so a file only needs the keys
// it changes. A custom path ending in .toml is decoded as TOML.
func LoadBall(customPath string) (BallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BallConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return BallConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BallConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(ConfigFileName, defaultBallYAML)
	if err != nil {
		return DefaultBallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over the defaults, picking the format from the file extension.
func decode(path string, data []byte) (BallConfig, error) {
	cfg := DefaultBallConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ball", "configs", filename)
}

// WriteDefault writes the embedded default config to path, creating parent
// directories. It refuses to overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultBallYAML, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
