package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/docproof/docproof/internal/config"
	"github.com/docproof/docproof/internal/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the doc-test artifact from the configured documents",
	Long:  `Reads the configured documentation files, extracts runnable samples, and writes the generated Go test file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log.Debugf("root dir: %s, out dir: %s", cfg.RootDir, cfg.OutDir)
		return generator.New(log).Generate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// loadConfig loads and validates the config file, applying CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if outDir != "" {
		cfg.OutDir = outDir
	}
	if rootDir != "" {
		cfg.RootDir = rootDir
	}
	if dryRun {
		cfg.DryRun = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if !verbose && cfg.Logging.Level != "" {
		if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(level)
		}
	}

	return cfg, nil
}
