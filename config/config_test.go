package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Dir != "." {
		t.Errorf("expected default output dir ., got %s", cfg.Output.Dir)
	}
	if cfg.Validation.Strict {
		t.Error("expected strict validation off by default")
	}
	if cfg.Watch.DebounceDelay != 500*time.Millisecond {
		t.Errorf("expected default debounce 500ms, got %v", cfg.Watch.DebounceDelay)
	}
	if len(cfg.Watch.Extensions) != 2 {
		t.Errorf("expected 2 default extensions, got %d", len(cfg.Watch.Extensions))
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing output dir",
			modify:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
		{
			name:    "zero debounce delay",
			modify:  func(c *Config) { c.Watch.DebounceDelay = 0 },
			wantErr: true,
		},
		{
			name:    "negative debounce delay",
			modify:  func(c *Config) { c.Watch.DebounceDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "no watch extensions",
			modify:  func(c *Config) { c.Watch.Extensions = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output:
  dir: "/data/metadata"
validate:
  strict: true
watch:
  debounce_delay: 2s
  extensions:
    - .yml
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Output.Dir != "/data/metadata" {
		t.Errorf("expected output dir /data/metadata, got %s", cfg.Output.Dir)
	}
	if !cfg.Validation.Strict {
		t.Error("expected strict validation on")
	}
	if cfg.Watch.DebounceDelay != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.DebounceDelay)
	}
	if len(cfg.Watch.Extensions) != 1 {
		t.Errorf("expected 1 extension, got %d", len(cfg.Watch.Extensions))
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Output: OutputConfig{
			Dir: "/override",
		},
		Watch: WatchConfig{
			DebounceDelay: time.Second,
		},
	}

	base.Merge(override)

	if base.Output.Dir != "/override" {
		t.Errorf("expected output dir /override, got %s", base.Output.Dir)
	}
	// Extensions should remain from base since override didn't set them
	if len(base.Watch.Extensions) != 2 {
		t.Errorf("expected extensions to remain default, got %v", base.Watch.Extensions)
	}
	if base.Watch.DebounceDelay != time.Second {
		t.Errorf("expected debounce 1s, got %v", base.Watch.DebounceDelay)
	}
}

func TestConfigMergeStrictFlag(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{Validation: ValidateConfig{Strict: true}})

	if !base.Validation.Strict {
		t.Error("expected strict flag to merge through")
	}
	// The merged config still passes its own validation.
	if err := base.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Dir = "/saved"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Output.Dir != "/saved" {
		t.Errorf("expected output dir /saved, got %s", loaded.Output.Dir)
	}
}
