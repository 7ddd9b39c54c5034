package extract

import (
	"strings"
	"unicode"

	"github.com/docproof/docproof/internal/domain"
)

const (
	// legacyTemplateTag marks a block as the document's unnamed default template.
	legacyTemplateTag = "docproof-template"
	// templateTagPrefix names a template, or selects one when it appears on a sample.
	templateTagPrefix = "tpl-"
)

// ParseBlockInfo tokenizes a fenced block's info string and classifies the
// block. Tokens are split on anything that is not alphanumeric, '_' or '-',
// so annotations from unrelated tooling degrade into "other tags" instead of
// breaking the parse.
//
// A block counts as a runnable sample only if it carries the "rust" marker
// and either has no other unrecognized tags or also carries at least one
// recognized sample-control tag. An explicit marker alongside unknown tags is
// honored only in the latter case; an unknown annotation scheme alone must
// not make a block runnable.
func ParseBlockInfo(info string) domain.CodeBlockInfo {
	tokens := strings.FieldsFunc(info, func(r rune) bool {
		return !(r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r))
	})

	var (
		bi             domain.CodeBlockInfo
		seenSampleTags bool
		seenOtherTags  bool
	)

	for _, tok := range tokens {
		switch {
		case tok == "rust":
			bi.IsRust = true
			seenSampleTags = true
		case tok == "should_panic":
			bi.ShouldPanic = true
			seenSampleTags = true
		case tok == "ignore":
			bi.Ignore = true
			seenSampleTags = true
		case tok == "no_run":
			bi.NoRun = true
			seenSampleTags = true
		case tok == legacyTemplateTag:
			bi.IsLegacyTemplate = true
			seenSampleTags = true
		case strings.HasPrefix(tok, templateTagPrefix):
			bi.TemplateRef = tok[len(templateTagPrefix):]
			seenSampleTags = true
		default:
			seenOtherTags = true
		}
	}

	bi.IsRust = bi.IsRust && (!seenOtherTags || seenSampleTags)

	return bi
}
