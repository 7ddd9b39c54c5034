package assemble

import (
	"fmt"

	"github.com/docproof/docproof/internal/domain"
)

// IdentityTemplate wraps a bare sample in nothing at all. It applies to
// tests that neither reference a named template nor live in a document with
// a legacy template.
const IdentityTemplate = "{}"

// Unit is the fully assembled source text and control attributes for one
// test, ready to be rendered into the generated artifact.
type Unit struct {
	Name        string
	Source      string
	Ignore      bool
	NoRun       bool
	ShouldPanic bool
}

// Assemble resolves a test's template and produces its Unit. An explicit
// template reference takes priority over the document's legacy template;
// with neither, the identity template applies. A reference to an unknown
// named template is fatal for the whole generation pass.
func Assemble(doc *domain.Document, test domain.Test) (Unit, error) {
	tmpl := IdentityTemplate
	switch {
	case test.TemplateRef != "":
		named, ok := doc.Templates[test.TemplateRef]
		if !ok {
			return Unit{}, domain.NewError("template", doc.Path, 0,
				fmt.Sprintf("template %q not found", test.TemplateRef), nil)
		}
		tmpl = named
	case doc.HasLegacy:
		tmpl = doc.LegacyTemplate
	}

	source, err := ExpandTemplate(tmpl, BuildTestInput(test.Lines))
	if err != nil {
		return Unit{}, domain.NewError("assemble", doc.Path, 0,
			fmt.Sprintf("test %s: %v", test.Name, err), nil)
	}

	return Unit{
		Name:        test.Name,
		Source:      "\n" + source, // generated sources always start on a fresh line
		Ignore:      test.Ignore,
		NoRun:       test.NoRun,
		ShouldPanic: test.ShouldPanic,
	}, nil
}
