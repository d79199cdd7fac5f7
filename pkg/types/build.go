package types

import "time"

// BuildStatus classifies the outcome of a diff build.
type BuildStatus string

const (
	// BuildSuccess means every step completed cleanly.
	BuildSuccess BuildStatus = "success"

	// BuildWarnings means the build completed but one or more steps
	// degraded (tool reported errors, bibliography unresolved, ...).
	BuildWarnings BuildStatus = "warnings"

	// BuildFailed means the build aborted on a fatal condition.
	BuildFailed BuildStatus = "failed"
)

// BuildRecord is one row of the build history: a single diff build run
// and its outcome.
type BuildRecord struct {
	ID        int64       `json:"id" yaml:"id"`
	StartedAt time.Time   `json:"started_at" yaml:"started_at"`
	OldDir    string      `json:"old_dir" yaml:"old_dir"`
	NewDir    string      `json:"new_dir" yaml:"new_dir"`
	Basename  string      `json:"basename" yaml:"basename"`
	Status    BuildStatus `json:"status" yaml:"status"`

	// Warnings is the number of warnings emitted during the run.
	Warnings int `json:"warnings" yaml:"warnings"`

	// TypesetPasses and BibliographyRuns count the tool invocations that
	// actually happened (a failed build stops short of the full schedule).
	TypesetPasses    int `json:"typeset_passes" yaml:"typeset_passes"`
	BibliographyRuns int `json:"bibliography_runs" yaml:"bibliography_runs"`

	// PDFPath is the produced PDF, empty when none was written.
	PDFPath string `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}
