package extract

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/docproof/docproof/internal/domain"
)

// TemplateSuffix is appended to a document's file name to locate its
// sibling template-definition file (README.md -> README.md.tpl.md).
const TemplateSuffix = ".tpl.md"

// TemplatePath returns the sibling template file path for a document.
func TemplatePath(docPath string) string {
	return docPath + TemplateSuffix
}

// Extractor turns one markdown document into its runnable samples and
// templates, using goldmark as the event source.
type Extractor struct {
	log *logrus.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(log *logrus.Logger) *Extractor {
	return &Extractor{log: log}
}

// ExtractDocument reads and extracts a single documentation file, including
// the named templates from its sibling template file when one exists.
func (e *Extractor) ExtractDocument(path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("extract", path, 0, "failed to read document", err)
	}

	doc := &domain.Document{Path: path}
	names := newTestNameGen(path)

	err = e.walkBlocks(path, content, func(info domain.CodeBlockInfo, lines []string) {
		if info.IsLegacyTemplate {
			// Last legacy template in the document wins.
			doc.LegacyTemplate = strings.Join(lines, "")
			doc.HasLegacy = true
			return
		}
		doc.Tests = append(doc.Tests, domain.Test{
			Name:        names.next(),
			Lines:       lines,
			Ignore:      info.Ignore,
			NoRun:       info.NoRun,
			ShouldPanic: info.ShouldPanic,
			TemplateRef: info.TemplateRef,
		})
	})
	if err != nil {
		return nil, err
	}

	doc.Templates, err = e.extractTemplates(TemplatePath(path))
	if err != nil {
		return nil, err
	}

	e.log.Debugf("extracted %d test(s) and %d named template(s) from %s",
		len(doc.Tests), len(doc.Templates), path)

	return doc, nil
}

// extractTemplates loads the named templates from a sibling template file.
// A missing file yields an empty set; runnable blocks in the file that carry
// no template name are dropped.
func (e *Extractor) extractTemplates(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, domain.NewError("template", path, 0, "failed to read template file", err)
	}

	templates := make(map[string]string)
	err = e.walkBlocks(path, content, func(info domain.CodeBlockInfo, lines []string) {
		if info.TemplateRef == "" {
			e.log.Debugf("%s: dropping unnamed template block", path)
			return
		}
		templates[info.TemplateRef] = strings.Join(lines, "")
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// blockState tracks where the walk is relative to a recognized runnable
// block, so that malformed documents stay auditable: either we are outside
// any runnable block, or we are accumulating one block's text.
type blockState int

const (
	stateOutside blockState = iota
	stateAccumulating
)

// walkBlocks drives the goldmark event stream over content and calls emit
// once per recognized runnable block with its parsed info and verbatim line
// fragments. Non-code events and unrecognized blocks are skipped.
func (e *Extractor) walkBlocks(path string, content []byte, emit func(domain.CodeBlockInfo, []string)) error {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(content))

	state := stateOutside
	var info domain.CodeBlockInfo
	var fragments []string

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		if entering {
			info = ParseBlockInfo(blockInfoString(block, content))
			if !info.IsRust {
				return ast.WalkSkipChildren, nil
			}
			state = stateAccumulating
			fragments = nil
			lines := block.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				fragments = append(fragments, string(seg.Value(content)))
			}
			return ast.WalkSkipChildren, nil
		}

		if state == stateAccumulating {
			emit(info, fragments)
			state = stateOutside
			fragments = nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return domain.NewError("extract", path, 0, "failed to walk markdown AST", err)
	}
	return nil
}

// blockInfoString returns the full info string of a fenced block, or "" for
// a bare fence.
func blockInfoString(block *ast.FencedCodeBlock, content []byte) string {
	if block.Info == nil {
		return ""
	}
	return string(block.Info.Segment.Value(content))
}
