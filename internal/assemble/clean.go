package assemble

import "strings"

// CleanOmittedLine strips the leading "#" marker rustdoc-style hidden lines
// carry: a bare "#" becomes a blank line, a "# " prefix (after leading
// whitespace) is dropped, anything else passes through unchanged. Sample
// authors use the marker to hide setup and assertion lines from rendered
// documentation while keeping them in the compiled test.
func CleanOmittedLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	switch {
	case trimmed == "#\n":
		return trimmed[1:]
	case strings.HasPrefix(trimmed, "# "):
		return trimmed[2:]
	default:
		return line
	}
}

// BuildTestInput joins a test's raw fragments into the body text that gets
// substituted into the resolved template, cleaning each line on the way.
func BuildTestInput(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(CleanOmittedLine(line))
	}
	return b.String()
}
