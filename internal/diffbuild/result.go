// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package diffbuild

import "github.com/pdiddy/paperdiff/pkg/types"

// Summary holds the outcome of one diff build run.
type Summary struct {
	// Status is the overall outcome: success, warnings, or failed.
	Status types.BuildStatus

	// TypesetPasses and BibliographyRuns count the tool invocations that
	// actually happened. A fatal abort stops short of the full schedule.
	TypesetPasses    int
	BibliographyRuns int

	// Warnings is the number of degraded steps.
	Warnings int

	// PDFPath is the produced PDF relative to the working directory,
	// empty when no PDF was written.
	PDFPath string
}

// Failed reports whether the build aborted on a fatal condition.
func (s Summary) Failed() bool {
	return s.Status == types.BuildFailed
}
