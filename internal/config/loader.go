package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadSnake.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Search locations, replaceable in tests.
var (
	homeDir         = os.UserHomeDir
	localConfigPath = filepath.Join("configs", "snake.yaml")
)

// LoadSnake loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Keys missing from a file keep their default values. A custom path that cannot be
// read, parsed or validated is an error; other candidates are skipped when unusable.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{localConfigPath}
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultSnakeYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultSnakeConfig(), SourceBuiltin, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	cfg.GridSize = GridSize
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := homeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
