// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleanup

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperdiff/internal/report"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func newTestCleaner(dir string, interactive bool, input string) (*Cleaner, *bytes.Buffer) {
	var buf bytes.Buffer
	rep := report.New(&buf, false)
	return New(dir, "root-diff", "root.tex", rep, interactive, strings.NewReader(input)), &buf
}

func TestScanFamilies(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"root.tex", "root.aux", "root.log", "root.pdf",
		"root-diff.tex", "root-diff.aux", "root-diff.bbl", "root-diff.pdf",
		"root-diff-blx.log", "root-diff.warnings.tmp",
		"unrelated.txt",
	)

	c, _ := newTestCleaner(dir, false, "")
	fams, err := c.Scan()
	require.NoError(t, err)

	sort.Strings(fams.Diff)
	sort.Strings(fams.Source)
	assert.Equal(t, []string{"root-diff-blx.log", "root-diff.aux", "root-diff.bbl", "root-diff.tex", "root-diff.warnings.tmp"}, fams.Diff)
	assert.Equal(t, []string{"root.aux", "root.log"}, fams.Source)
}

func TestRunAlreadyClean(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "root.tex")

	c, out := newTestCleaner(dir, false, "")
	require.NoError(t, c.Run())

	assert.Contains(t, out.String(), "already clean")
	assert.Equal(t, []string{"root.tex"}, listDir(t, dir))
}

func TestRunNonInteractiveDeletes(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "root-diff.tex", "root-diff.aux", "root-diff.pdf", "root.aux", "root.tex")

	c, out := newTestCleaner(dir, false, "")
	require.NoError(t, c.Run())

	// PDFs and the canonical source survive; everything else goes.
	assert.Equal(t, []string{"root-diff.pdf", "root.tex"}, listDir(t, dir))
	assert.Contains(t, out.String(), "Removed 2 diff artifact(s), 1 source artifact(s).")
}

func TestRunInteractiveDeclineLeavesFilesUntouched(t *testing.T) {
	for _, answer := range []string{"n\n", "no\n", "\n", "whatever\n"} {
		t.Run("answer "+strings.TrimSpace(answer), func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, "root-diff.tex", "root.aux", "root.tex")
			before := listDir(t, dir)

			c, out := newTestCleaner(dir, true, answer)
			require.NoError(t, c.Run(), "declining is a clean cancellation")

			assert.Equal(t, before, listDir(t, dir))
			assert.Contains(t, out.String(), "No files were deleted")
		})
	}
}

func TestRunInteractiveAcceptDeletes(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", "yes\n", " YES \n"} {
		t.Run("answer "+strings.TrimSpace(answer), func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, "root-diff.aux", "root.tex")

			c, _ := newTestCleaner(dir, true, answer)
			require.NoError(t, c.Run())

			assert.Equal(t, []string{"root.tex"}, listDir(t, dir))
		})
	}
}

func TestRunInteractiveEOFAborts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "root-diff.aux", "root.tex")

	c, _ := newTestCleaner(dir, true, "")
	require.NoError(t, c.Run())

	assert.Equal(t, []string{"root-diff.aux", "root.tex"}, listDir(t, dir))
}

func TestRunListsCandidatesAndCount(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "root-diff.tex", "root-diff.aux", "root.aux", "root.tex")

	c, out := newTestCleaner(dir, false, "")
	require.NoError(t, c.Run())

	got := out.String()
	for _, name := range []string{"root-diff.tex", "root-diff.aux", "root.aux"} {
		assert.Contains(t, got, name)
	}
	assert.Contains(t, got, "3 file(s) to remove.")
}

func TestScanIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "root.tex")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "root-diff.figures"), 0o755))

	c, _ := newTestCleaner(dir, false, "")
	fams, err := c.Scan()
	require.NoError(t, err)
	assert.True(t, fams.Empty())
}
