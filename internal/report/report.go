// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders build progress as styled terminal text. The
// reporter is injected into the pipeline so tests can capture plain
// output, and color is a capability decided by the caller rather than
// probed from the environment.
package report

import (
	"fmt"
	"io"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
)

// Reporter writes leveled progress messages to a single writer.
type Reporter struct {
	w     io.Writer
	color bool

	warnings int
}

// New creates a reporter writing to w. When color is false all styling
// is suppressed, leaving plain text.
func New(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// Warnings returns the number of warnings emitted so far.
func (r *Reporter) Warnings() int { return r.warnings }

// Stepf announces a pipeline step (blue).
func (r *Reporter) Stepf(format string, args ...any) {
	r.printf(ansiBlue, "==> "+format, args...)
}

// Promptf prints an inline prompt without a trailing newline.
func (r *Reporter) Promptf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Infof prints an unstyled progress line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Successf prints a completion line (green).
func (r *Reporter) Successf(format string, args ...any) {
	r.printf(ansiGreen, format, args...)
}

// Warnf prints a warning line (yellow) and increments the warning count.
func (r *Reporter) Warnf(format string, args ...any) {
	r.warnings++
	r.printf(ansiYellow, "warning: "+format, args...)
}

// Errorf prints an error line (red).
func (r *Reporter) Errorf(format string, args ...any) {
	r.printf(ansiRed, "error: "+format, args...)
}

func (r *Reporter) printf(color, format string, args ...any) {
	if r.color {
		fmt.Fprintf(r.w, color+format+ansiReset+"\n", args...)
		return
	}
	fmt.Fprintf(r.w, format+"\n", args...)
}
