package extract_test

import (
	"io"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/docproof/docproof/internal/domain"
	"github.com/docproof/docproof/internal/extract"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var _ = Describe("Extractor", func() {
	var e *extract.Extractor

	BeforeEach(func() {
		e = extract.NewExtractor(quietLogger())
	})

	Describe("guide.md", func() {
		var doc *domain.Document

		BeforeEach(func() {
			var err error
			doc, err = e.ExtractDocument(filepath.Join("testdata", "guide.md"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should extract exactly the runnable sample blocks", func() {
			Expect(doc.Tests).To(HaveLen(5))
		})

		It("should name tests from the sanitized stem in document order", func() {
			var names []string
			for _, test := range doc.Tests {
				names = append(names, test.Name)
			}
			Expect(names).To(Equal([]string{"guide_0", "guide_1", "guide_2", "guide_3", "guide_4"}))
		})

		It("should keep block text verbatim, one fragment per line", func() {
			Expect(doc.Tests[0].Lines).To(Equal([]string{
				"fn main() {\n",
				"    println!(\"hello\");\n",
				"}\n",
			}))
		})

		It("should carry the control flags onto the tests", func() {
			Expect(doc.Tests[0].Ignore).To(BeFalse())
			Expect(doc.Tests[1].Ignore).To(BeTrue())
			Expect(doc.Tests[2].NoRun).To(BeTrue())
			Expect(doc.Tests[3].ShouldPanic).To(BeTrue())
		})

		It("should record the template reference on the selecting test", func() {
			Expect(doc.Tests[4].TemplateRef).To(Equal("wrapped"))
		})

		It("should keep the last legacy template when the document has several", func() {
			Expect(doc.HasLegacy).To(BeTrue())
			Expect(doc.LegacyTemplate).To(Equal("fn main() {{\n    {}\n}}\n"))
		})

		It("should load named templates from the sibling template file", func() {
			Expect(doc.Templates).To(HaveKey("wrapped"))
			Expect(doc.Templates["wrapped"]).To(Equal("fn main() {{\n    {}\n}}\n"))
		})

		It("should drop unnamed runnable blocks in the sibling template file", func() {
			Expect(doc.Templates).To(HaveLen(1))
		})
	})

	Describe("simple.md", func() {
		It("should yield an empty template set when no sibling file exists", func() {
			doc, err := e.ExtractDocument(filepath.Join("testdata", "simple.md"))
			Expect(err).ToNot(HaveOccurred())
			Expect(doc.Templates).To(BeEmpty())
			Expect(doc.HasLegacy).To(BeFalse())
			Expect(doc.Tests).To(HaveLen(1))
			Expect(doc.Tests[0].Name).To(Equal("simple_0"))
		})
	})

	Describe("My-Doc.2.md", func() {
		It("should sanitize the stem into the test root name", func() {
			doc, err := e.ExtractDocument(filepath.Join("testdata", "My-Doc.2.md"))
			Expect(err).ToNot(HaveOccurred())
			Expect(doc.Tests).To(HaveLen(1))
			Expect(doc.Tests[0].Name).To(Equal("my_doc_2_0"))
		})
	})

	It("should propagate a read error for a missing document", func() {
		_, err := e.ExtractDocument(filepath.Join("testdata", "no-such.md"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("TemplatePath", func() {
	It("should append the template suffix to the document path", func() {
		Expect(extract.TemplatePath("docs/guide.md")).To(Equal("docs/guide.md" + extract.TemplateSuffix))
	})
})
