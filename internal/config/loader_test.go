package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML RiderConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded rider.yaml failed to parse: %v", err)
	}

	if fromYAML != DefaultRiderConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", fromYAML, DefaultRiderConfig())
	}
}

func TestLoadRiderCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rider.yaml")
	data := []byte("physics:\n  gravity: 0.2\nworld:\n  width: 800\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadRider(path)
	if err != nil {
		t.Fatalf("LoadRider() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Gravity = %v, expected 0.2", cfg.Physics.Gravity)
	}
	if cfg.World.Width != 800 {
		t.Errorf("Width = %d, expected 800", cfg.World.Width)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Physics.SpeedScale != 7.0 {
		t.Errorf("SpeedScale = %v, expected default 7.0", cfg.Physics.SpeedScale)
	}
	if cfg.World.Height != 400 {
		t.Errorf("Height = %d, expected default 400", cfg.World.Height)
	}
}

func TestLoadRiderMissingCustomPath(t *testing.T) {
	cfg, err := LoadRider(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadRider() should fail for a missing custom path")
	}
	if cfg != DefaultRiderConfig() {
		t.Error("LoadRider() should fall back to defaults on error")
	}
}

func TestLoadRiderRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "physics: [\n"},
		{"zero width", "world:\n  width: 0\n"},
		{"negative gravity", "physics:\n  gravity: -1\n"},
		{"floor above throttle", "physics:\n  min_speed: 1.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rider.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			if _, err := LoadRider(path); err == nil {
				t.Errorf("LoadRider() should reject %s config", tc.name)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := DefaultRiderConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyRiderPreset(t *testing.T) {
	cfg := DefaultRiderConfig()
	cfg.Difficulty.InitialLevel = 0.5

	fixed := cfg
	ApplyRiderPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.InitialLevel != 0.5 {
		t.Errorf("fixed preset changed level to %v", fixed.Difficulty.InitialLevel)
	}

	hard := cfg
	ApplyRiderPreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset level = %v, expected 0.7", hard.Difficulty.InitialLevel)
	}

	easy := cfg
	ApplyRiderPreset(&easy, DifficultyEasy)
	if easy.Difficulty.InitialLevel != 0 {
		t.Errorf("easy preset level = %v, expected 0", easy.Difficulty.InitialLevel)
	}
	if easy.Input.RepeatHoldMS <= cfg.Input.RepeatHoldMS {
		t.Errorf("easy preset should lengthen the repeat hold, got %d", easy.Input.RepeatHoldMS)
	}
}
