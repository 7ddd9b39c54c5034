package domain

// Test is one runnable sample extracted from a document.
type Test struct {
	Name        string
	Lines       []string // raw fragments, each ending in "\n"
	Ignore      bool
	NoRun       bool
	ShouldPanic bool
	TemplateRef string // empty when the document's legacy template (or none) applies
}

// Document holds everything extracted from a single documentation file:
// its tests, an optional legacy template embedded in the document itself,
// and the named templates declared in the sibling template file.
type Document struct {
	Path           string
	Tests          []Test
	LegacyTemplate string
	HasLegacy      bool
	Templates      map[string]string
}

// Suite is the full extraction result across all configured documents,
// in input order.
type Suite struct {
	Documents []*Document
}

// CodeBlockInfo is the parsed form of a fenced block's info string.
// It only lives for the duration of one block.
type CodeBlockInfo struct {
	IsRust           bool
	ShouldPanic      bool
	Ignore           bool
	NoRun            bool
	IsLegacyTemplate bool
	TemplateRef      string
}
