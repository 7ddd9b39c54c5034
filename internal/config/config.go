package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docproof/docproof/internal/domain"
)

// Config is the top-level configuration struct. It is built once at the CLI
// entry point and passed explicitly through every pipeline stage; no stage
// consults the environment on its own.
type Config struct {
	RootDir string        `yaml:"root_dir"` // project root the doc paths are relative to
	OutDir  string        `yaml:"out_dir"`  // build output directory, supplied by the build orchestrator
	Docs    []string      `yaml:"docs"`     // document paths or glob patterns, in run order
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	DryRun  bool          `yaml:"dry_run"`
}

type OutputConfig struct {
	File    string `yaml:"file"`    // path of the generated artifact
	Package string `yaml:"package"` // package clause of the generated artifact
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}
