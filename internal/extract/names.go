package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// testNameGen hands out the per-document sequence <root>_0, <root>_1, ...
// where root is the sanitized file stem.
type testNameGen struct {
	root  string
	count int
}

func newTestNameGen(path string) *testNameGen {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return &testNameGen{root: SanitizeTestName(stem)}
}

func (g *testNameGen) next() string {
	name := fmt.Sprintf("%s_%d", g.root, g.count)
	g.count++
	return name
}

// SanitizeTestName lowercases s and maps every non-alphanumeric rune to '_',
// so a document stem always yields a valid test identifier.
func SanitizeTestName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
