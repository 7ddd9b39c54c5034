package assemble

import (
	"fmt"
	"strings"
)

// ExpandTemplate substitutes body into the template's single "{}"
// placeholder. Templates are authored in documentation with Rust format
// syntax, so "{{" and "}}" are escapes for literal braces. A template with
// zero or multiple placeholders, or a stray unmatched brace, is a
// generation-time failure.
func ExpandTemplate(tmpl, body string) (string, error) {
	var b strings.Builder
	slots := 0

	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			switch {
			case strings.HasPrefix(tmpl[i:], "{{"):
				b.WriteByte('{')
				i += 2
			case strings.HasPrefix(tmpl[i:], "{}"):
				slots++
				b.WriteString(body)
				i += 2
			default:
				return "", fmt.Errorf("unsupported placeholder at byte %d", i)
			}
		case '}':
			if !strings.HasPrefix(tmpl[i:], "}}") {
				return "", fmt.Errorf("unmatched '}' at byte %d", i)
			}
			b.WriteByte('}')
			i += 2
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}

	if slots != 1 {
		return "", fmt.Errorf("template must contain exactly one {} placeholder, found %d", slots)
	}
	return b.String(), nil
}
