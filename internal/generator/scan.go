package generator

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docproof/docproof/internal/domain"
	"github.com/docproof/docproof/internal/extract"
)

// ExpandDocs resolves the configured document entries against the root
// directory, in entry order. Entries containing glob metacharacters are
// expanded (sorted within one entry, "**" supported); plain entries pass
// through untouched so a missing listed document still surfaces as a read
// error later. Template-definition files never enter the test-doc set, even
// when a pattern matches them.
func ExpandDocs(rootDir string, entries []string) ([]string, error) {
	var docs []string
	for _, entry := range entries {
		if strings.HasSuffix(entry, extract.TemplateSuffix) {
			continue
		}
		if !strings.ContainsAny(entry, "*?[") {
			docs = append(docs, filepath.Join(rootDir, entry))
			continue
		}
		matches, err := expandGlob(rootDir, entry)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if strings.HasSuffix(m, extract.TemplateSuffix) {
				continue
			}
			docs = append(docs, m)
		}
	}
	return docs, nil
}

func expandGlob(rootDir, pattern string) ([]string, error) {
	if !strings.Contains(pattern, "**") {
		matches, err := filepath.Glob(filepath.Join(rootDir, pattern))
		if err != nil {
			return nil, domain.NewError("extract", pattern, 0, "invalid doc pattern", err)
		}
		sort.Strings(matches)
		return matches, nil
	}

	var matches []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}
		if matchRecursiveGlob(rel, pattern) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewError("extract", rootDir, 0, "failed to scan for docs", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// matchRecursiveGlob matches a relative path against a pattern containing
// "**", which matches any number of path segments.
func matchRecursiveGlob(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], string(filepath.Separator))
	suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))

	if prefix != "" {
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		path = strings.TrimPrefix(path, prefix)
		path = strings.TrimPrefix(path, string(filepath.Separator))
	}
	if suffix == "" {
		return true
	}

	segments := strings.Split(path, string(filepath.Separator))
	for i := range segments {
		sub := strings.Join(segments[i:], string(filepath.Separator))
		if matched, _ := filepath.Match(suffix, sub); matched {
			return true
		}
	}
	return false
}
