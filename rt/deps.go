package rt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const archiveExt = ".rlib"

// externArgs enumerates the dependency archives under depsDir and returns
// one "--extern name=path" pair per archive whose file name parses. The
// directory must exist: generated tests only run inside a build tree that
// has already produced it.
func externArgs(depsDir string) ([]string, error) {
	entries, err := os.ReadDir(depsDir)
	if err != nil {
		return nil, fmt.Errorf("read dependency dir %s: %w", depsDir, err)
	}

	var args []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != archiveExt {
			continue
		}
		lib, ok := ParseArchiveStem(strings.TrimSuffix(name, archiveExt))
		if !ok {
			continue
		}
		args = append(args, "--extern", fmt.Sprintf("%s=%s", lib, filepath.Join(depsDir, name)))
	}
	return args, nil
}

// ParseArchiveStem recovers the declared library name from a dependency
// archive's file stem. The build tool names archives "lib<name>-<hash>";
// anything that does not fit that shape (no hash segment, missing "lib"
// prefix, empty name) yields ok == false.
func ParseArchiveStem(stem string) (name string, ok bool) {
	idx := strings.LastIndexByte(stem, '-')
	if idx < 0 {
		return "", false
	}
	name = stem[:idx]
	if !strings.HasPrefix(name, "lib") {
		return "", false
	}
	name = strings.TrimPrefix(name, "lib")
	if name == "" {
		return "", false
	}
	return name, true
}
