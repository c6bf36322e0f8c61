package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "bicycle" {
		t.Errorf("expected model bicycle, got %s", cfg.Model)
	}
	if cfg.RearWheel != DefaultWheel || cfg.FrontWheel != DefaultWheel {
		t.Error("default wheels should be knife edge")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Model = "unicycle"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown model")
	}

	cfg = DefaultConfig()
	cfg.FrontWheel = "square_wheel"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown wheel kind")
	}

	cfg = DefaultConfig()
	cfg.Model = "rolling_disc"
	cfg.Name = "disc"
	cfg.Rider = true
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for rider on a rolling disc")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	cfg := DefaultConfig()
	cfg.Ground = true
	cfg.FrontWheel = "toroidal_wheel"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bicycle", "touring")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Ground {
		t.Error("touring preset should be grounded")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("bicycle", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "fixed") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("bicycle")) == 0 {
		t.Error("expected presets for bicycle")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for model, group := range Presets {
		for name, cfg := range group {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s: %v", model, name, err)
			}
		}
	}
}
