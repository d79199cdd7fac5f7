//go:build mage

package main

import (
	"os"
	"testing"
)

// chdir switches to dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestInitCreatesLayout(t *testing.T) {
	chdir(t, t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, dir := range projectDirs {
		fi, err := os.Stat(dir)
		if err != nil {
			t.Errorf("%s not created: %v", dir, err)
			continue
		}
		if !fi.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	data, err := os.ReadFile("root.tex")
	if err != nil {
		t.Fatalf("starter root.tex not created: %v", err)
	}
	if string(data) != starterDoc {
		t.Errorf("starter root.tex content = %q, want %q", data, starterDoc)
	}
}

func TestInitPreservesExistingSource(t *testing.T) {
	chdir(t, t.TempDir())

	existing := "\\documentclass{article} % my paper\n"
	if err := os.WriteFile("root.tex", []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile("root.tex")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != existing {
		t.Error("Init overwrote an existing root.tex")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	chdir(t, t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Init(); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
