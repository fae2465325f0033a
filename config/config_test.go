package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name             string
		configYAML       string
		wantWidthPx      float64
		wantFallbackFont string
	}{
		{
			name: "config with slide size and font",
			configYAML: `
slideWidthPx: 1280
slideHeightPx: 720
fallbackFont: Helvetica
`,
			wantWidthPx:      1280,
			wantFallbackFont: "Helvetica",
		},
		{
			name: "config with physical width only",
			configYAML: `
slideWidthInches: 13.333
`,
			wantWidthPx:      0,
			wantFallbackFont: "",
		},
		{
			name:             "empty config",
			configYAML:       "",
			wantWidthPx:      0,
			wantFallbackFont: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			oldConfigHome := os.Getenv("XDG_CONFIG_HOME")
			os.Setenv("XDG_CONFIG_HOME", tmpDir)
			defer os.Setenv("XDG_CONFIG_HOME", oldConfigHome)

			// Reset configHomePath
			configHomePath = ""

			dir := filepath.Join(tmpDir, "htmldeck")
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("Failed to create config directory: %v", err)
			}

			configPath := filepath.Join(dir, "config.yml")
			if err := os.WriteFile(configPath, []byte(tt.configYAML), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.SlideWidthPx != tt.wantWidthPx {
				t.Errorf("SlideWidthPx = %v, want %v", cfg.SlideWidthPx, tt.wantWidthPx)
			}
			if cfg.FallbackFont != tt.wantFallbackFont {
				t.Errorf("FallbackFont = %v, want %v", cfg.FallbackFont, tt.wantFallbackFont)
			}
		})
	}
}

func TestLoadProfile(t *testing.T) {
	tmpDir := t.TempDir()
	oldConfigHome := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	defer os.Setenv("XDG_CONFIG_HOME", oldConfigHome)

	configHomePath = ""

	dir := filepath.Join(tmpDir, "htmldeck")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("fallbackFont: Arial\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config-work.yml"), []byte("fallbackFont: Roboto\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("work")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FallbackFont != "Roboto" {
		t.Errorf("FallbackFont = %v, want Roboto", cfg.FallbackFont)
	}
}
