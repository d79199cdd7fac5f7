// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolchain executes the external TeX binaries the build
// pipeline orchestrates: the latexdiff generator, the typesetting
// engine, and the bibliography processor.
package toolchain

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pdiddy/paperdiff/pkg/types"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(dir, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(dir, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec = &osExecutor{}

// Toolchain invokes the three external binaries in a fixed working
// directory. Each call blocks until the tool exits.
type Toolchain struct {
	latexdiff string
	engine    string
	bibtex    string
	dir       string
	exec      executor
}

// New creates a toolchain running in dir with the configured binaries.
func New(cfg types.ToolsConfig, dir string) *Toolchain {
	return newToolchain(cfg, dir, defaultExec)
}

func newToolchain(cfg types.ToolsConfig, dir string, exec executor) *Toolchain {
	return &Toolchain{
		latexdiff: cfg.Latexdiff,
		engine:    cfg.Engine,
		bibtex:    cfg.Bibtex,
		dir:       dir,
		exec:      exec,
	}
}

// Available verifies every binary exists on PATH. The returned error
// names the first missing binary.
func (t *Toolchain) Available() error {
	for _, bin := range []string{t.latexdiff, t.engine, t.bibtex} {
		if _, err := t.exec.LookPath(bin); err != nil {
			return fmt.Errorf("required tool %s not found on PATH: %w", bin, err)
		}
	}
	return nil
}

// Flatten runs the diff generator in flatten mode on the two document
// paths, writing the merged document to out and diagnostics to diag.
func (t *Toolchain) Flatten(oldPath, newPath string, out, diag io.Writer) error {
	args := []string{"--flatten", oldPath, newPath}
	if err := t.exec.Run(t.dir, t.latexdiff, args, out, diag); err != nil {
		return fmt.Errorf("%s --flatten: %w", t.latexdiff, err)
	}
	return nil
}

// Typeset runs one non-interactive pass of the typesetting engine on
// base.tex, with combined output captured to log.
func (t *Toolchain) Typeset(base string, log io.Writer) error {
	args := []string{"-interaction=nonstopmode", base + ".tex"}
	if err := t.exec.Run(t.dir, t.engine, args, log, log); err != nil {
		return fmt.Errorf("%s %s.tex: %w", t.engine, base, err)
	}
	return nil
}

// ResolveBibliography runs the bibliography processor on the auxiliary
// file for base, with combined output captured to log.
func (t *Toolchain) ResolveBibliography(base string, log io.Writer) error {
	if err := t.exec.Run(t.dir, t.bibtex, []string{base}, log, log); err != nil {
		return fmt.Errorf("%s %s: %w", t.bibtex, base, err)
	}
	return nil
}
