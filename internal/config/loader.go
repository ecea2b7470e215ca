package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "config.yaml"

// LocalPath is the project-relative config location.
const LocalPath = "configs/blockpuzzle.yaml"

// Load loads the puzzle configuration.
// Search order: customPath -> ~/.blockpuzzle/config.yaml -> ./configs/blockpuzzle.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// A customPath that cannot be read or parsed is an error; the other locations
// are skipped silently when missing or broken.
func Load(customPath string) (PuzzleConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	candidates := []string{LocalPath}
	if userPath := UserConfigPath(); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultPuzzleYAML)
	if err != nil {
		return DefaultPuzzleConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// Parse decodes YAML over the built-in defaults.
func Parse(data []byte) (PuzzleConfig, error) {
	cfg := DefaultPuzzleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg PuzzleConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func loadFile(path string) (PuzzleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPuzzleConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// HomeDir returns ~/.blockpuzzle, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockpuzzle")
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}
