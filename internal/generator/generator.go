package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/docproof/docproof/internal/assemble"
	"github.com/docproof/docproof/internal/config"
	"github.com/docproof/docproof/internal/domain"
	"github.com/docproof/docproof/internal/extract"
)

// preamble heads the generated artifact. Every test in it is otherwise
// self-contained; the only shared dependency is the runtime harness. The
// import block is emitted only when at least one test follows, so a pass
// over documents without samples still yields a compilable file.
const preamble = `// Code generated by docproof. DO NOT EDIT.

package %s

`

const preambleImports = `import (
	"testing"

	"github.com/docproof/docproof/rt"
)

`

// Generator is the top-level orchestrator: expand the doc list, extract,
// assemble, and write the artifact.
type Generator struct {
	extractor  *extract.Extractor
	log        *logrus.Logger
	directives io.Writer
}

// New creates a Generator. Re-generation directives go to stdout unless
// redirected with SetDirectiveWriter.
func New(log *logrus.Logger) *Generator {
	return &Generator{
		extractor:  extract.NewExtractor(log),
		log:        log,
		directives: os.Stdout,
	}
}

// SetDirectiveWriter redirects the rerun-if-changed directives.
func (g *Generator) SetDirectiveWriter(w io.Writer) {
	g.directives = w
}

// Generate runs the full pipeline. Any error aborts the pass before the
// artifact is touched; an unchanged artifact is not rewritten, so its
// modification time survives and downstream rebuilds stay quiet.
func (g *Generator) Generate(cfg *config.Config) error {
	docs, err := ExpandDocs(cfg.RootDir, cfg.Docs)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		g.log.Warn("no documents configured; nothing to generate")
		return nil
	}

	// Tell the build orchestrator to re-run generation whenever a document
	// or its sibling template file changes. The template path is announced
	// even when the file does not exist yet.
	for _, doc := range docs {
		fmt.Fprintf(g.directives, "docproof:rerun-if-changed=%s\n", doc)
		fmt.Fprintf(g.directives, "docproof:rerun-if-changed=%s\n", extract.TemplatePath(doc))
	}

	suite := domain.Suite{}
	for _, path := range docs {
		g.log.Debugf("extracting %s", path)
		doc, err := g.extractor.ExtractDocument(path)
		if err != nil {
			return err
		}
		suite.Documents = append(suite.Documents, doc)
	}

	var body strings.Builder
	total := 0
	for _, doc := range suite.Documents {
		for _, test := range doc.Tests {
			unit, err := assemble.Assemble(doc, test)
			if err != nil {
				return err
			}
			rendered, err := assemble.RenderUnit(unit, cfg.OutDir)
			if err != nil {
				return err
			}
			body.WriteString(rendered)
			total++
		}
	}
	g.log.Infof("assembled %d test(s) from %d document(s)", total, len(suite.Documents))

	var out strings.Builder
	fmt.Fprintf(&out, preamble, cfg.Output.Package)
	if total > 0 {
		out.WriteString(preambleImports)
	}
	out.WriteString(body.String())

	if cfg.DryRun {
		g.log.Infof("[dry-run] would write %s", cfg.Output.File)
		return nil
	}
	return g.writeIfChanged(cfg.Output.File, out.String())
}

// writeIfChanged writes content to path unless a byte-identical file is
// already there. A missing file is simply written; any other read error
// propagates.
func (g *Generator) writeIfChanged(path, content string) error {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if string(existing) == content {
			g.log.Debugf("%s unchanged, skipping write", path)
			return nil
		}
	case errors.Is(err, fs.ErrNotExist):
		// First generation pass.
	default:
		return domain.NewError("write", path, 0, "failed to read existing artifact", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domain.NewError("write", path, 0, "failed to create output directory", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return domain.NewError("write", path, 0, "failed to write artifact", err)
	}
	g.log.Infof("wrote %s", path)
	return nil
}
