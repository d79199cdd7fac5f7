package types

// ToolsConfig names the external binaries the build pipeline invokes.
type ToolsConfig struct {
	// Latexdiff is the diff generator binary (default "latexdiff").
	Latexdiff string `json:"latexdiff" yaml:"latexdiff"`

	// Engine is the typesetting engine binary (default "pdflatex").
	Engine string `json:"engine" yaml:"engine"`

	// Bibtex is the bibliography processor binary (default "bibtex").
	Bibtex string `json:"bibtex" yaml:"bibtex"`
}

// BuildConfig holds settings for the diff build pipeline.
type BuildConfig struct {
	// OldDir is the directory holding the reference (old) version.
	OldDir string `json:"old_dir" yaml:"old_dir"`

	// NewDir is the directory holding the current (new) version.
	NewDir string `json:"new_dir" yaml:"new_dir"`

	// Basename is the base name for all generated diff artifacts
	// (default "root-diff": root-diff.tex, root-diff.aux, root-diff.pdf, ...).
	Basename string `json:"basename" yaml:"basename"`

	// SourceFile is the canonical document filename inside each version
	// directory (default "root.tex").
	SourceFile string `json:"source_file" yaml:"source_file"`

	// Bibliography is the resource name inserted when latexdiff strips the
	// \bibliography directive while flattening (default "references").
	Bibliography string `json:"bibliography" yaml:"bibliography"`
}

// HistoryConfig holds settings for the build history store.
type HistoryConfig struct {
	// Dir is the directory containing history.db (default ".paperdiff").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default number of builds listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all tool configuration.
type Config struct {
	Tools   ToolsConfig   `json:"tools" yaml:"tools"`
	Build   BuildConfig   `json:"build" yaml:"build"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// DefaultConfig returns the built-in defaults, matching the documented
// CLI defaults.
func DefaultConfig() Config {
	return Config{
		Tools: ToolsConfig{
			Latexdiff: "latexdiff",
			Engine:    "pdflatex",
			Bibtex:    "bibtex",
		},
		Build: BuildConfig{
			OldDir:       "old",
			NewDir:       ".",
			Basename:     "root-diff",
			SourceFile:   "root.tex",
			Bibliography: "references",
		},
		History: HistoryConfig{
			Dir:        ".paperdiff",
			MaxResults: 20,
		},
	}
}
