package assemble_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docproof/docproof/internal/assemble"
	"github.com/docproof/docproof/internal/domain"
)

var _ = Describe("Assemble", func() {
	var doc *domain.Document

	BeforeEach(func() {
		doc = &domain.Document{
			Path: "docs/guide.md",
			Templates: map[string]string{
				"wrapped": "fn main() {{\n    {}\n}}\n",
			},
		}
	})

	It("should use the identity template when nothing else applies", func() {
		unit, err := assemble.Assemble(doc, domain.Test{
			Name:  "guide_0",
			Lines: []string{"fn main() {}\n"},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(unit.Source).To(Equal("\nfn main() {}\n"))
	})

	It("should fall back to the document's legacy template", func() {
		doc.HasLegacy = true
		doc.LegacyTemplate = "fn main() {{ {} }}\n"
		unit, err := assemble.Assemble(doc, domain.Test{
			Name:  "guide_0",
			Lines: []string{"let x = 1;\n"},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(unit.Source).To(Equal("\nfn main() { let x = 1;\n }\n"))
	})

	It("should prefer an explicit template reference over the legacy template", func() {
		doc.HasLegacy = true
		doc.LegacyTemplate = "legacy {}\n"
		unit, err := assemble.Assemble(doc, domain.Test{
			Name:        "guide_0",
			Lines:       []string{"let x = 1;\n"},
			TemplateRef: "wrapped",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(unit.Source).To(Equal("\nfn main() {\n    let x = 1;\n}\n"))
	})

	It("should fail naming the template and the document when the reference is unknown", func() {
		_, err := assemble.Assemble(doc, domain.Test{
			Name:        "guide_0",
			Lines:       []string{"fn main() {}\n"},
			TemplateRef: "missing",
		})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`template "missing" not found`))
		Expect(err.Error()).To(ContainSubstring("docs/guide.md"))
	})

	It("should clean omitted lines before substitution", func() {
		unit, err := assemble.Assemble(doc, domain.Test{
			Name:  "guide_0",
			Lines: []string{"# use a::B;\n", "fn main() {}\n"},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(unit.Source).To(Equal("\nuse a::B;\nfn main() {}\n"))
	})

	It("should surface a bad placeholder count as an assembly error", func() {
		doc.HasLegacy = true
		doc.LegacyTemplate = "no placeholder\n"
		_, err := assemble.Assemble(doc, domain.Test{
			Name:  "guide_0",
			Lines: []string{"fn main() {}\n"},
		})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("guide_0"))
	})

	It("should carry the control attributes onto the unit", func() {
		unit, err := assemble.Assemble(doc, domain.Test{
			Name:        "guide_0",
			Lines:       []string{"fn main() {}\n"},
			Ignore:      true,
			NoRun:       true,
			ShouldPanic: true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(unit.Ignore).To(BeTrue())
		Expect(unit.NoRun).To(BeTrue())
		Expect(unit.ShouldPanic).To(BeTrue())
	})
})

var _ = Describe("RenderUnit", func() {
	base := assemble.Unit{
		Name:   "guide_0",
		Source: "\nfn main() {}\n",
	}

	It("should render a run-and-check test", func() {
		out, err := assemble.RenderUnit(base, "/build/out")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("func Test_guide_0(t *testing.T) {"))
		Expect(out).To(ContainSubstring(`rt.CompileAndRun("/build/out", source)`))
		Expect(out).To(ContainSubstring("source := " + strconv.Quote(base.Source)))
		Expect(out).To(ContainSubstring("t.Fatal(err)"))
		Expect(out).ToNot(ContainSubstring("t.Skip"))
	})

	It("should compile without running for no_run units", func() {
		unit := base
		unit.NoRun = true
		out, err := assemble.RenderUnit(unit, "/build/out")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("rt.CompileOnly"))
		Expect(out).ToNot(ContainSubstring("rt.CompileAndRun"))
	})

	It("should emit a skip guard for ignored units", func() {
		unit := base
		unit.Ignore = true
		out, err := assemble.RenderUnit(unit, "/build/out")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("if !rt.RunIgnored() {"))
		Expect(out).To(ContainSubstring("t.Skip("))
	})

	It("should invert the failure check for should_panic units", func() {
		unit := base
		unit.ShouldPanic = true
		out, err := assemble.RenderUnit(unit, "/build/out")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("if err == nil {"))
		Expect(out).To(ContainSubstring("sample was expected to fail"))
	})
})
