// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdiddy/paperdiff/internal/diffbuild"
	"github.com/pdiddy/paperdiff/internal/history"
	"github.com/pdiddy/paperdiff/internal/report"
	"github.com/pdiddy/paperdiff/internal/toolchain"
	"github.com/pdiddy/paperdiff/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [old-dir] [new-dir] [output-basename]",
	Short: "Build a visual diff PDF between two versions of the paper",
	Long: `Build runs latexdiff in flatten mode on <old-dir>/root.tex and
<new-dir>/root.tex, restores the bibliography directive flatten drops,
then typesets the merged document with the bibliography passes needed to
converge citations.

Defaults: old-dir "old", new-dir ".", output-basename "root-diff". The
build aborts only when a source document is missing, when latexdiff
produces no usable output, or when the first typesetting pass yields no
auxiliary file; later tool failures degrade to warnings.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runBuild,

	// The reporter renders fatal build errors; without these cobra would
	// print the error a second time, with usage text.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	buildCmd.Flags().String("source", "", "canonical source filename inside each version directory")
	buildCmd.Flags().String("bibliography", "", "bibliography resource restored after flattening")
	buildCmd.Flags().Bool("no-color", false, "disable colored output")
	buildCmd.Flags().Bool("no-history", false, "do not record this build in the history database")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if len(args) > 0 {
		cfg.Build.OldDir = args[0]
	}
	if len(args) > 1 {
		cfg.Build.NewDir = args[1]
	}
	if len(args) > 2 {
		cfg.Build.Basename = args[2]
	}
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.Build.SourceFile = v
	}
	if v, _ := cmd.Flags().GetString("bibliography"); v != "" {
		cfg.Build.Bibliography = v
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	rep := report.New(os.Stderr, !noColor && term.IsTerminal(int(os.Stderr.Fd())))

	tools := toolchain.New(cfg.Tools, ".")
	if err := tools.Available(); err != nil {
		return err
	}

	builder := diffbuild.New(tools, rep, ".", cfg.Build)
	start := time.Now()
	sum, buildErr := builder.Run()
	if buildErr != nil {
		rep.Errorf("%v", buildErr)
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordBuild(rep, cfg, sum, start, time.Since(start))
	}

	return buildErr
}

// recordBuild persists the outcome, best-effort. History problems are
// warnings only; they never change the build's exit status.
func recordBuild(rep *report.Reporter, cfg types.Config, sum diffbuild.Summary, start time.Time, elapsed time.Duration) {
	store, err := history.NewStore(cfg.History)
	if err != nil {
		rep.Warnf("build history unavailable: %v", err)
		return
	}
	defer store.Close()

	rec := types.BuildRecord{
		StartedAt:        start,
		OldDir:           cfg.Build.OldDir,
		NewDir:           cfg.Build.NewDir,
		Basename:         cfg.Build.Basename,
		Status:           sum.Status,
		Warnings:         rep.Warnings(),
		TypesetPasses:    sum.TypesetPasses,
		BibliographyRuns: sum.BibliographyRuns,
		PDFPath:          sum.PDFPath,
		Duration:         elapsed,
	}
	if _, err := store.Record(context.Background(), rec); err != nil {
		rep.Warnf("could not record build history: %v", err)
	}
}
