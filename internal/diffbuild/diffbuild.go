// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diffbuild produces a visual diff PDF between two versions of
// a document. It runs the diff generator once, patches its flattened
// output, then drives the typesetting engine and bibliography processor
// through a fixed convergence schedule.
package diffbuild

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperdiff/internal/report"
	"github.com/pdiddy/paperdiff/pkg/types"
)

// Typesetting and bibliography tools converge on cross-references and
// citations by fixed-point iteration; these pass counts are a behavioral
// contract tuned for citation resolution, not an arbitrary choice.
const (
	typesetPasses    = 6
	bibliographyRuns = 2
)

// firstBibliographyAfter and secondBibliographyAfter position the two
// bibliography runs inside the typeset schedule.
const (
	firstBibliographyAfter  = 1
	secondBibliographyAfter = 4
)

// warningsSuffix names the flatten diagnostics capture under the diff
// basename, so an aborted run leaves it inside the cleaner's diff
// family. It is removed once the build completes.
const warningsSuffix = ".warnings.tmp"

// Tools is the external toolchain surface the builder depends on.
type Tools interface {
	Flatten(oldPath, newPath string, out, diag io.Writer) error
	Typeset(base string, log io.Writer) error
	ResolveBibliography(base string, log io.Writer) error
}

// Builder runs the diff build pipeline in a working directory.
type Builder struct {
	tools Tools
	rep   *report.Reporter
	dir   string
	cfg   types.BuildConfig
}

// New creates a builder. All generated artifacts land in dir; the paths
// in cfg are interpreted relative to it.
func New(tools Tools, rep *report.Reporter, dir string, cfg types.BuildConfig) *Builder {
	return &Builder{tools: tools, rep: rep, dir: dir, cfg: cfg}
}

// Run executes the full pipeline. A non-nil error means a fatal abort:
// missing source document, unusable diff output, or a first typeset pass
// that produced no auxiliary file. Everything else degrades to warnings
// and the run completes the whole schedule.
func (b *Builder) Run() (Summary, error) {
	var sum Summary
	sum.Status = types.BuildFailed

	oldPath := filepath.Join(b.cfg.OldDir, b.cfg.SourceFile)
	newPath := filepath.Join(b.cfg.NewDir, b.cfg.SourceFile)
	for _, p := range []string{oldPath, newPath} {
		if _, err := os.Stat(b.abs(p)); err != nil {
			return sum, fmt.Errorf("source document not found: %s", p)
		}
	}

	b.rep.Stepf("Generating diff: %s vs %s", oldPath, newPath)
	if err := b.flatten(oldPath, newPath); err != nil {
		return sum, err
	}

	patched, err := EnsureBibliography(b.abs(b.cfg.Basename+".tex"), b.cfg.Bibliography)
	if err != nil {
		b.rep.Warnf("bibliography patch skipped: %v", err)
	} else if patched {
		b.rep.Infof("Restored \\bibliography{%s} dropped by flatten mode", b.cfg.Bibliography)
	}

	if err := b.converge(&sum); err != nil {
		return sum, err
	}

	pdf := b.cfg.Basename + ".pdf"
	if fi, err := os.Stat(b.abs(pdf)); err == nil && fi.Size() > 0 {
		sum.PDFPath = pdf
	} else {
		b.rep.Warnf("no PDF produced at %s; check %s.log", pdf, b.cfg.Basename)
	}

	if err := os.Remove(b.abs(b.warningsFile())); err != nil && !os.IsNotExist(err) {
		b.rep.Warnf("could not remove %s: %v", b.warningsFile(), err)
	}

	sum.Warnings = b.rep.Warnings()
	if sum.Warnings > 0 {
		sum.Status = types.BuildWarnings
	} else {
		sum.Status = types.BuildSuccess
	}
	if sum.PDFPath != "" {
		b.rep.Successf("Diff build complete: %s", sum.PDFPath)
	} else {
		b.rep.Successf("Diff build complete with %d warning(s)", sum.Warnings)
	}
	return sum, nil
}

// flatten runs the diff generator, capturing the merged document to
// <basename>.tex and diagnostics to the warnings file. A tool failure is
// tolerated when the output file is nonetheless non-empty; a failure
// with no usable output is fatal and surfaces the captured diagnostics.
func (b *Builder) flatten(oldPath, newPath string) error {
	outPath := b.abs(b.cfg.Basename + ".tex")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	diagPath := b.abs(b.warningsFile())
	diag, err := os.Create(diagPath)
	if err != nil {
		out.Close()
		return fmt.Errorf("creating %s: %w", diagPath, err)
	}

	runErr := b.tools.Flatten(oldPath, newPath, out, diag)
	out.Close()
	diag.Close()

	if runErr == nil {
		return nil
	}

	if fi, err := os.Stat(outPath); err == nil && fi.Size() > 0 {
		b.rep.Warnf("%v; output was produced, continuing (diagnostics in %s)", runErr, b.warningsFile())
		return nil
	}

	os.Remove(outPath)
	diagnostics, _ := os.ReadFile(diagPath)
	if msg := strings.TrimSpace(string(diagnostics)); msg != "" {
		b.rep.Errorf("diff generator diagnostics:\n%s", msg)
	}
	return fmt.Errorf("diff generation produced no usable output: %w", runErr)
}

// converge runs the fixed typeset/bibliography schedule: 6 typeset
// passes, with bibliography runs after passes 1 and 4. Only a missing
// auxiliary file after pass 1 is fatal.
func (b *Builder) converge(sum *Summary) error {
	base := b.cfg.Basename
	auxPath := b.abs(base + ".aux")

	for pass := 1; pass <= typesetPasses; pass++ {
		b.rep.Stepf("Typesetting pass %d/%d", pass, typesetPasses)
		err := b.tools.Typeset(base, io.Discard)
		sum.TypesetPasses++

		if pass == firstBibliographyAfter {
			if _, statErr := os.Stat(auxPath); statErr != nil {
				return fmt.Errorf("typesetting produced no auxiliary file %s.aux; aborting", base)
			}
		}
		if err != nil {
			b.rep.Warnf("typesetting pass %d reported errors; continuing (see %s.log)", pass, base)
		}

		switch pass {
		case firstBibliographyAfter:
			if !auxHasCitations(auxPath) {
				b.rep.Infof("No citations found; skipping bibliography resolution")
				continue
			}
			b.rep.Stepf("Resolving bibliography (1/%d)", bibliographyRuns)
			sum.BibliographyRuns++
			b.runBibliography(base)
		case secondBibliographyAfter:
			b.rep.Stepf("Resolving bibliography (2/%d)", bibliographyRuns)
			sum.BibliographyRuns++
			b.runBibliography(base)
		}
	}
	return nil
}

// runBibliography invokes the bibliography processor, best-effort. A
// non-zero exit that still produced a result file is only noted; any
// other failure is a warning and the schedule continues.
func (b *Builder) runBibliography(base string) {
	err := b.tools.ResolveBibliography(base, io.Discard)
	if err == nil {
		return
	}
	if fi, statErr := os.Stat(b.abs(base + ".bbl")); statErr == nil && fi.Size() > 0 {
		b.rep.Warnf("bibliography processor reported errors but produced %s.bbl; continuing", base)
		return
	}
	b.rep.Warnf("bibliography resolution failed: %v", err)
}

// auxHasCitations reports whether the auxiliary file records citation
// markers, meaning a bibliography run can do useful work.
func auxHasCitations(auxPath string) bool {
	data, err := os.ReadFile(auxPath)
	if err != nil {
		return false
	}
	return bytes.Contains(data, []byte(`\citation{`))
}

// warningsFile is the flatten diagnostics file for this build's basename.
func (b *Builder) warningsFile() string {
	return b.cfg.Basename + warningsSuffix
}

func (b *Builder) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.dir, p)
}
