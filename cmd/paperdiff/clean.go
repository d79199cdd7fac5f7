// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdiddy/paperdiff/internal/cleanup"
	"github.com/pdiddy/paperdiff/internal/report"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated build artifacts from the working directory",
	Long: `Clean scans the working directory for diff-output artifacts
(root-diff.*) and source artifacts (root.*), lists them, and removes them
after confirmation. The canonical source document and all PDF files are
never deleted.

When stdin is not a terminal (piped input, CI) the confirmation prompt is
skipped and deletion proceeds.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	cleanCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	yes, _ := cmd.Flags().GetBool("yes")
	interactive := !yes && term.IsTerminal(int(os.Stdin.Fd()))

	noColor, _ := cmd.Flags().GetBool("no-color")
	rep := report.New(os.Stdout, !noColor && term.IsTerminal(int(os.Stdout.Fd())))

	c := cleanup.New(".", cfg.Build.Basename, cfg.Build.SourceFile, rep, interactive, os.Stdin)
	return c.Run()
}
