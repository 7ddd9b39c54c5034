package assemble

import (
	"bytes"
	"strconv"
	"text/template"

	"github.com/docproof/docproof/internal/domain"
)

// unitTemplate renders one Unit as a standalone Go test function calling the
// runtime harness. Ignored samples skip themselves unless explicitly
// selected via DOCPROOF_RUN_IGNORED; should_panic samples assert that the
// harness reports a failure.
var unitTemplate = template.Must(template.New("unit").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`func Test_{{.Name}}(t *testing.T) {
{{- if .Ignore}}
	if !rt.RunIgnored() {
		t.Skip("ignored sample; set DOCPROOF_RUN_IGNORED=1 to run")
	}
{{- end}}
	source := {{quote .Source}}
{{- if .NoRun}}
	err := rt.CompileOnly({{quote .OutDir}}, source)
{{- else}}
	err := rt.CompileAndRun({{quote .OutDir}}, source)
{{- end}}
{{- if .ShouldPanic}}
	if err == nil {
		t.Fatal("sample was expected to fail")
	}
{{- else}}
	if err != nil {
		t.Fatal(err)
	}
{{- end}}
}

`))

// RenderUnit renders one assembled unit into Go source text. outDir is the
// build output directory baked into the harness call.
func RenderUnit(unit Unit, outDir string) (string, error) {
	data := struct {
		Unit
		OutDir string
	}{unit, outDir}

	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, data); err != nil {
		return "", domain.NewError("assemble", "", 0, "failed to render test "+unit.Name, err)
	}
	return buf.String(), nil
}
