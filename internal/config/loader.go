package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRider loads the rider configuration.
// Search order: customPath -> ~/.hillrider/configs/rider.yaml -> ./configs/rider.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadRider(customPath string) (RiderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRiderConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRider(data)
		if err != nil {
			return DefaultRiderConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("rider.yaml"), filepath.Join("configs", "rider.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseRider(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseRider(defaultRiderYAML)
	if err != nil {
		return DefaultRiderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRider decodes YAML over the hardcoded defaults and validates the result.
func parseRider(data []byte) (RiderConfig, error) {
	cfg := DefaultRiderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hillrider", "configs", filename)
}

// ApplyRiderPreset modifies the config based on a difficulty preset.
// DifficultyFixed and the empty preset keep the config's own level.
func ApplyRiderPreset(cfg *RiderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Easy also forgives sloppy key releases in the terminal.
	if preset == DifficultyEasy {
		cfg.Input.RepeatHoldMS += cfg.Input.RepeatHoldMS / 2
	}
}
