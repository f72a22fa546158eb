package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.gamecenter/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadDino loads Dino Run configuration.
// Search order: customPath -> ~/.gamecenter/configs/dino.yaml -> ./configs/dino.yaml -> embedded default
func LoadDino(customPath string) (DinoConfig, error) {
	return load("dino", customPath, defaultDinoYAML, DefaultDinoConfig)
}

// load resolves a config through the search order. Files are decoded on top
// of the hard-coded defaults, so a partial file only overrides what it names.
// Only a custom path reports errors; the implicit locations are skipped when
// missing or broken.
func load[T validator](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return defaults(), err
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(gameID + ".yaml"),
		filepath.Join("configs", gameID+".yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path, defaults); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

func decodeFile[T validator](path string, defaults func() T) (T, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamecenter", "configs", filename)
}
