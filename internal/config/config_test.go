package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Pipeline.Workers != 0 {
		t.Errorf("expected workers 0 (all CPUs), got %d", cfg.Pipeline.Workers)
	}

	if cfg.Output.Path != "vectors.json" {
		t.Errorf("expected output path vectors.json, got %s", cfg.Output.Path)
	}
	if cfg.Output.Compress {
		t.Error("expected compress to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
pipeline:
  workers: 6

output:
  path: "out/hd_vectors.json"
  compress: true

logging:
  level: "debug"
  log_file: "gen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Pipeline.Workers != 6 {
		t.Errorf("expected workers 6, got %d", cfg.Pipeline.Workers)
	}

	if cfg.Output.Path != "out/hd_vectors.json" {
		t.Errorf("expected output path out/hd_vectors.json, got %s", cfg.Output.Path)
	}
	if !cfg.Output.Compress {
		t.Error("expected compress to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "gen.log" {
		t.Errorf("expected log file 'gen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only one section present; the rest must keep defaults.
	yamlContent := `
pipeline:
  workers: 2
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Pipeline.Workers != 2 {
		t.Errorf("expected workers 2, got %d", cfg.Pipeline.Workers)
	}
	if cfg.Output.Path != "vectors.json" {
		t.Errorf("expected default output path, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
pipeline:
  workers: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if !strings.Contains(dir, "dctqvec") {
		t.Errorf("ConfigDir should name the tool, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "dctqvec.yaml")
	if err := os.WriteFile(configPath, []byte("pipeline:\n  workers: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find dctqvec.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "workers flag",
			setup: func() {
				*flagWorkers = 12
			},
			verify: func(cfg *Config) {
				if cfg.Pipeline.Workers != 12 {
					t.Errorf("expected workers 12, got %d", cfg.Pipeline.Workers)
				}
			},
			teardown: func() {
				*flagWorkers = 0
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "custom.json.zst"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Path != "custom.json.zst" {
					t.Errorf("expected output path custom.json.zst, got %s", cfg.Output.Path)
				}
			},
			teardown: func() {
				*flagOut = ""
			},
		},
		{
			name: "compress flag",
			setup: func() {
				*flagCompress = true
			},
			verify: func(cfg *Config) {
				if !cfg.Output.Compress {
					t.Error("expected compress to be enabled")
				}
			},
			teardown: func() {
				*flagCompress = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
pipeline:
  workers: 4

output:
  path: "from_file.json"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWorkers = 8
	defer func() {
		*flagConfig = ""
		*flagWorkers = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Workers should come from the flag, not the file.
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("expected workers 8 from flag, got %d", cfg.Pipeline.Workers)
	}

	// Output path should come from the file since no flag override.
	if cfg.Output.Path != "from_file.json" {
		t.Errorf("expected output path from_file.json from file, got %s", cfg.Output.Path)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.Workers = 3
	cfg.Output.Compress = true

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Pipeline.Workers != 3 {
		t.Errorf("expected workers 3 after round trip, got %d", loaded.Pipeline.Workers)
	}
	if !loaded.Output.Compress {
		t.Error("expected compress to survive the round trip")
	}
}
