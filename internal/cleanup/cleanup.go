// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cleanup removes generated build artifacts from a working
// directory. Two filename-prefix families are recognized: diff-output
// artifacts (<basename>.*) and source artifacts (<source>.*). The
// canonical source document and all PDF outputs are never deleted.
package cleanup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperdiff/internal/report"
)

// Cleaner scans a working directory for removable artifacts.
type Cleaner struct {
	dir        string
	diffBase   string // e.g. "root-diff"
	sourceFile string // e.g. "root.tex"
	rep        *report.Reporter

	// interactive controls whether Run prompts before deleting. It is an
	// injected capability: callers decide from their own stdin probe.
	interactive bool
	in          io.Reader
}

// New creates a cleaner for dir. diffBase is the diff artifact basename
// and sourceFile the canonical document to preserve. When interactive is
// true, Run reads a confirmation line from in before deleting.
func New(dir, diffBase, sourceFile string, rep *report.Reporter, interactive bool, in io.Reader) *Cleaner {
	return &Cleaner{
		dir:         dir,
		diffBase:    diffBase,
		sourceFile:  sourceFile,
		rep:         rep,
		interactive: interactive,
		in:          in,
	}
}

// Families holds the scan result: candidate files per prefix group,
// names relative to the working directory.
type Families struct {
	// Diff holds diff-output artifacts: <diffBase>.* plus stray
	// <diffBase>*.log files, excluding PDFs.
	Diff []string

	// Source holds source artifacts: <sourceBase>.* excluding the
	// canonical document and PDFs.
	Source []string
}

// Empty reports whether no candidates were found.
func (f Families) Empty() bool {
	return len(f.Diff) == 0 && len(f.Source) == 0
}

// Total returns the number of candidate files.
func (f Families) Total() int {
	return len(f.Diff) + len(f.Source)
}

// Scan enumerates removable artifacts in the working directory.
func (c *Cleaner) Scan() (Families, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return Families{}, fmt.Errorf("reading %s: %w", c.dir, err)
	}

	sourceBase := strings.TrimSuffix(c.sourceFile, filepath.Ext(c.sourceFile))

	var fams Families
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		// PDFs and the canonical source are never candidates.
		if strings.EqualFold(filepath.Ext(name), ".pdf") || name == c.sourceFile {
			continue
		}

		switch {
		case strings.HasPrefix(name, c.diffBase+"."):
			fams.Diff = append(fams.Diff, name)
		case strings.HasPrefix(name, c.diffBase) && strings.HasSuffix(name, ".log"):
			// Stray logs like <diffBase>-blx.log fall outside the
			// dot-prefix glob but belong to the diff family.
			fams.Diff = append(fams.Diff, name)
		case strings.HasPrefix(name, sourceBase+"."):
			fams.Source = append(fams.Source, name)
		}
	}
	return fams, nil
}

// Run scans, lists candidates, optionally confirms, then deletes.
// A declined confirmation is a clean cancellation, not an error.
func (c *Cleaner) Run() error {
	fams, err := c.Scan()
	if err != nil {
		return err
	}

	if fams.Empty() {
		c.rep.Successf("Working directory already clean.")
		return nil
	}

	if len(fams.Diff) > 0 {
		c.rep.Infof("Diff artifacts:")
		for _, name := range fams.Diff {
			c.rep.Infof("  %s", name)
		}
	}
	if len(fams.Source) > 0 {
		c.rep.Infof("Source artifacts:")
		for _, name := range fams.Source {
			c.rep.Infof("  %s", name)
		}
	}
	c.rep.Infof("%d file(s) to remove.", fams.Total())

	if c.interactive && !c.confirm() {
		c.rep.Infof("Aborted. No files were deleted.")
		return nil
	}

	removedDiff := c.remove(fams.Diff)
	removedSource := c.remove(fams.Source)
	c.rep.Successf("Removed %d diff artifact(s), %d source artifact(s).", removedDiff, removedSource)
	return nil
}

// confirm reads one line and accepts y/yes (case-insensitive).
func (c *Cleaner) confirm() bool {
	c.rep.Promptf("Delete these files? [y/N] ")
	scanner := bufio.NewScanner(c.in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func (c *Cleaner) remove(names []string) int {
	removed := 0
	for _, name := range names {
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil {
			c.rep.Warnf("could not remove %s: %v", name, err)
			continue
		}
		removed++
	}
	return removed
}
