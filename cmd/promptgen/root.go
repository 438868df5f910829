package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/promptgen/internal/api"
	"github.com/jackzampolin/promptgen/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "promptgen",
	Short: "Prompt generator with reusable themes and usage rankings",
	Long: `Promptgen serves a prompt generator built on reusable themes.

A theme is a named prompt template with {field} placeholders. Pick a theme,
fill in its fields, and promptgen renders the finished prompt and bumps the
theme's usage count. Themes live in an embedded record store so counts and
edits survive restarts.

The management surface (create, edit, delete, usage reset) sits behind a
shared secret configured in config.yaml.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.promptgen/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "promptgen home directory (default: ~/.promptgen)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
