package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/docproof/docproof/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.RootDir == "" {
		errs = append(errs, "root_dir must not be empty")
	}
	if cfg.OutDir == "" {
		errs = append(errs, "out_dir must not be empty (set it in the config file or pass --out-dir)")
	}

	if cfg.Output.File == "" {
		errs = append(errs, "output.file must not be empty")
	}
	if !strings.HasSuffix(cfg.Output.File, "_test.go") {
		errs = append(errs, "output.file must end with _test.go")
	}
	if cfg.Output.Package == "" {
		errs = append(errs, "output.package must not be empty")
	} else if !token.IsIdentifier(cfg.Output.Package) {
		errs = append(errs, fmt.Sprintf("output.package must be a valid Go identifier (got %q)", cfg.Output.Package))
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
