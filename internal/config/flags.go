package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWorkers    = flag.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	flagOut        = flag.String("out", "", "Output artifact path")
	flagCompress   = flag.Bool("compress", false, "Write the artifact zstd-compressed")
	flagSaveConfig = flag.Bool("save-config", false, "Write the resolved config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWorkers > 0 {
		cfg.Pipeline.Workers = *flagWorkers
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagCompress {
		cfg.Output.Compress = true
	}
}
