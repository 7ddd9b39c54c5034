package config

// DefaultConfig returns a Config with sensible default values. OutDir has no
// default: the build orchestrator must supply it, through the config file or
// the --out-dir flag.
func DefaultConfig() *Config {
	return &Config{
		RootDir: ".",
		Docs:    []string{"README.md"},
		Output: OutputConfig{
			File:    "doctests/docproof_gen_test.go",
			Package: "doctests",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
