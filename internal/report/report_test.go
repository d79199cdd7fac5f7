// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Stepf("step %d", 1)
	r.Infof("info")
	r.Successf("done")
	r.Warnf("careful: %s", "detail")
	r.Errorf("broke")

	got := buf.String()
	want := "==> step 1\ninfo\ndone\nwarning: careful: detail\nerror: broke\n"
	if got != want {
		t.Errorf("plain output:\ngot  %q\nwant %q", got, want)
	}
	if strings.Contains(got, "\033[") {
		t.Error("plain reporter emitted escape sequences")
	}
}

func TestColorOutput(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	r.Warnf("w")
	r.Errorf("e")

	got := buf.String()
	if !strings.Contains(got, ansiYellow+"warning: w"+ansiReset) {
		t.Errorf("warning not styled yellow: %q", got)
	}
	if !strings.Contains(got, ansiRed+"error: e"+ansiReset) {
		t.Errorf("error not styled red: %q", got)
	}
}

func TestWarningCount(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	if r.Warnings() != 0 {
		t.Fatalf("fresh reporter has %d warnings", r.Warnings())
	}
	r.Warnf("one")
	r.Warnf("two")
	r.Errorf("errors do not count")
	if got := r.Warnings(); got != 2 {
		t.Errorf("got %d warnings, want 2", got)
	}
}
