package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	if cfg.Stylesheet.Mode != "local" {
		t.Errorf("Default mode = %q, want local", cfg.Stylesheet.Mode)
	}

	if cfg.Stylesheet.ScopedNameTemplate == "" {
		t.Error("Default scoped name template should not be empty")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
stylesheet:
  mode: pure
  exports: true
  scoped_name_template: "{{.Local}}-{{.Hash}}"
logging:
  console:
    level: normal
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}

	if cfg.Stylesheet.Mode != "pure" {
		t.Errorf("Mode = %q, want pure", cfg.Stylesheet.Mode)
	}

	if !cfg.Stylesheet.Exports {
		t.Error("Expected Exports to be true")
	}

	if cfg.Stylesheet.ScopedNameTemplate != "{{.Local}}-{{.Hash}}" {
		t.Errorf("ScopedNameTemplate = %q, want template from file", cfg.Stylesheet.ScopedNameTemplate)
	}

	if cfg.Logging.FileLogger.Level != "debug" {
		t.Errorf("FileLogger.Level = %q, want debug", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
stylesheet:
  mode: local
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
stylesheet:
  mode: local
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "invalid version",
			content: `version: 2
stylesheet:
  mode: local
`,
		},
		{
			name: "invalid mode",
			content: `version: 1
stylesheet:
  mode: scoped
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, "invalid_values.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}

			_, err := LoadConfiguration(configPath)
			if err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestPrepare_TemplateFieldNotExpanded(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, false); err != nil {
		t.Fatalf("unmarshalConfig() error = %v", err)
	}

	// scoped_name_template holds template syntax of its own and must survive
	// configuration processing verbatim
	if cfg.Stylesheet.ScopedNameTemplate != "{{ .Path }}__{{ .Local }}___{{ .Hash }}" {
		t.Errorf("ScopedNameTemplate was expanded: %q", cfg.Stylesheet.ScopedNameTemplate)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Stylesheet: StylesheetConfig{
			Mode:               "local",
			Exports:            true,
			ScopedNameTemplate: "{{.Local}}",
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}

	if cfg2.Stylesheet.Mode != cfg.Stylesheet.Mode {
		t.Errorf("Mode mismatch after dump/load: got %q, want %q", cfg2.Stylesheet.Mode, cfg.Stylesheet.Mode)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	// Partial config that only overrides some values
	partialConfig := `version: 1
stylesheet:
  mode: global
`

	if err := os.WriteFile(configPath, []byte(partialConfig), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	// Check that explicitly set value is used
	if cfg.Stylesheet.Mode != "global" {
		t.Errorf("Mode = %q, want global from config file", cfg.Stylesheet.Mode)
	}

	// Check that default values are still present for unspecified fields
	if cfg.Stylesheet.ScopedNameTemplate == "" {
		t.Error("ScopedNameTemplate should have default value")
	}

	if cfg.Logging.ConsoleLogger.Level == "" {
		t.Error("ConsoleLogger.Level should have default value")
	}
}
