// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig holds transform pipeline settings.
type PipelineConfig struct {
	Workers int `yaml:"workers"` // 0 means one worker per CPU
}

// OutputConfig holds artifact writing settings.
type OutputConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"` // write the artifact zstd-compressed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Workers: 0,
		},
		Output: OutputConfig{
			Path:     "vectors.json",
			Compress: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
