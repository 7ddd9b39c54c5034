package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	outDir  string
	rootDir string
	log     *logrus.Logger
)

// rootCmd is the base command for docproof.
var rootCmd = &cobra.Command{
	Use:   "docproof",
	Short: "Verify code samples embedded in documentation against the real build",
	Long: `docproof extracts runnable code samples from fenced blocks in markdown
documentation and generates a Go test file in which every sample is an
independently named test. At test-run time each test compiles (and unless
tagged no_run, executes) its sample through the external compiler toolchain.

Everything is driven by a YAML configuration file (docproof.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "docproof.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "extract and assemble but don't write the artifact")
	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", "", "build output directory (overrides out_dir in the config)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root-dir", "", "project root directory (overrides root_dir in the config)")

	log = logrus.New()
	log.SetOutput(os.Stderr)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
