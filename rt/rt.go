// Package rt compiles and runs documentation samples at test-run time. It
// is the runtime counterpart of the generator: generated test files import
// it and call CompileOnly or CompileAndRun, nothing else in this module
// depends on it.
//
// Both entry points block until the toolchain (and, for CompileAndRun, the
// produced binary) exits; no timeout is applied, the surrounding go test
// run imposes its own.
package rt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"
)

const (
	// compilerEnv overrides the compiler executable for the whole test run.
	compilerEnv     = "RUSTC"
	defaultCompiler = "rustc"

	// runIgnoredEnv selects samples tagged ignore into the run.
	runIgnoredEnv = "DOCPROOF_RUN_IGNORED"
)

// RunIgnored reports whether samples tagged ignore should run. Generated
// ignore-wrappers consult it before skipping.
func RunIgnored() bool {
	return os.Getenv(runIgnoredEnv) != ""
}

// CompileOnly writes source to a private temporary directory and compiles
// it, without running the produced binary. A failed compile is returned as
// an error carrying the full command line.
func CompileOnly(outDir, source string) error {
	h := newHarness(outDir)
	dir, err := os.MkdirTemp("", "docproof-")
	if err != nil {
		return fmt.Errorf("create sample dir: %w", err)
	}
	defer os.RemoveAll(dir)

	_, err = h.compile(dir, source)
	return err
}

// CompileAndRun compiles source like CompileOnly, then executes the produced
// binary with the temporary directory as its working directory. A non-zero
// exit from either step is an error.
func CompileAndRun(outDir, source string) error {
	h := newHarness(outDir)
	dir, err := os.MkdirTemp("", "docproof-")
	if err != nil {
		return fmt.Errorf("create sample dir: %w", err)
	}
	defer os.RemoveAll(dir)

	bin, err := h.compile(dir, source)
	if err != nil {
		return err
	}
	return h.run(dir, bin)
}

// harness carries the per-invocation compile/run context. Each generated
// test builds its own, so parallel tests never share mutable state.
type harness struct {
	compiler string
	outDir   string
	stdout   io.Writer
	stderr   io.Writer
}

func newHarness(outDir string) *harness {
	compiler := os.Getenv(compilerEnv)
	if compiler == "" {
		compiler = defaultCompiler
	}
	return &harness{
		compiler: compiler,
		outDir:   outDir,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

func (h *harness) compile(dir, source string) (string, error) {
	samplePath := filepath.Join(dir, "sample.rs")
	if err := os.WriteFile(samplePath, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("write sample: %w", err)
	}
	binPath := filepath.Join(dir, "sample.bin")

	// The orchestrator hands us its private build output directory; the
	// target root holding the dependency archives sits three levels up.
	target := h.outDir
	for i := 0; i < 3; i++ {
		target = filepath.Dir(target)
	}
	depsDir := filepath.Join(target, "deps")

	args := []string{
		samplePath,
		"--verbose",
		"-o", binPath,
		"--crate-type=bin",
		"-L", target,
		"-L", depsDir,
	}
	externs, err := externArgs(depsDir)
	if err != nil {
		return "", err
	}
	args = append(args, externs...)

	if err := h.interpret(exec.Command(h.compiler, args...)); err != nil {
		return "", err
	}
	return binPath, nil
}

func (h *harness) run(dir, bin string) error {
	cmd := exec.Command(bin)
	cmd.Dir = dir
	return h.interpret(cmd)
}

// interpret runs cmd to completion, forwards both captured output streams,
// and maps a failed exit into an error naming the full command line.
func (h *harness) interpret(cmd *exec.Cmd) error {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	h.stdout.Write(stdout.Bytes())
	h.stderr.Write(stderr.Bytes())
	if err != nil {
		return fmt.Errorf("command failed: %s: %w", shellescape.QuoteCommand(cmd.Args), err)
	}
	return nil
}
