// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdiff/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded diff builds",
	Long: `History lists builds recorded in the local SQLite database
(.paperdiff/history.db), newest first.`,
	RunE: runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the build history to YAML or JSON",
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of builds to list (default from config)")
	historyCmd.Flags().Bool("json", false, "output builds as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(loadConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No builds recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-12s  %-8s  %-6s  %s\n",
		"ID", "Started", "Basename", "Status", "Passes", "Duration")
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-12s  %-8s  %-6d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Basename, r.Status, r.TypesetPasses,
			r.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(os.Stdout, "\n%d build(s)\n", len(records))
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(loadConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background())
	case "json":
		path, err = store.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}
