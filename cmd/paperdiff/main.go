// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperdiff CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperdiff/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperdiff CLI.
var rootCmd = &cobra.Command{
	Use:   "paperdiff",
	Short: "Build and clean visual diff PDFs for LaTeX papers",
	Long: `paperdiff orchestrates the LaTeX diff toolchain. The build command runs
latexdiff on two versions of a paper, restores the bibliography directive
that flatten mode drops, and drives the typesetting engine and bibliography
processor through the passes needed to converge citations into a final PDF.

The clean command removes the generated build artifacts, always preserving
the canonical source document and any produced PDFs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperdiff.yaml or ~/.config/paperdiff/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperdiff")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperdiff"))
		}
	}

	viper.SetEnvPrefix("PAPERDIFF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges the built-in defaults with any configured overrides.
func loadConfig() types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetString("tools.latexdiff"); v != "" {
		cfg.Tools.Latexdiff = v
	}
	if v := viper.GetString("tools.engine"); v != "" {
		cfg.Tools.Engine = v
	}
	if v := viper.GetString("tools.bibtex"); v != "" {
		cfg.Tools.Bibtex = v
	}
	if v := viper.GetString("build.old_dir"); v != "" {
		cfg.Build.OldDir = v
	}
	if v := viper.GetString("build.new_dir"); v != "" {
		cfg.Build.NewDir = v
	}
	if v := viper.GetString("build.basename"); v != "" {
		cfg.Build.Basename = v
	}
	if v := viper.GetString("build.source_file"); v != "" {
		cfg.Build.SourceFile = v
	}
	if v := viper.GetString("build.bibliography"); v != "" {
		cfg.Build.Bibliography = v
	}
	if v := viper.GetString("history.dir"); v != "" {
		cfg.History.Dir = v
	}
	if v := viper.GetInt("history.max_results"); v > 0 {
		cfg.History.MaxResults = v
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
