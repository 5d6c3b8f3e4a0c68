package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal"
)

var (
	verbose     bool
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cursor-export",
	Short: "Export Cursor IDE conversations to interchange formats",
	Long: `Reconstruct conversations from Cursor IDE's key-value chat storage and
export them as Markdown, JSON, JSONL, HTML, or plain text.

The tool discovers every reachable store (global, per-workspace, and
versioned sibling installs), reads them strictly read-only, and never
writes back into the editor's storage.

Quick Start:
  cursor-export list                       # List all conversations
  cursor-export show <id>                  # View one conversation
  cursor-export export --format md --all   # Export everything as Markdown
  cursor-export export --format jsonl --preset training-alpaca --merged`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (User directory or its parent)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// newService discovers every reachable store and wraps it in a Service.
func newService() (*internal.Service, error) {
	base, err := internal.GetBasePath(storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage location: %w", err)
	}

	stores := internal.ListStores(base)
	if len(stores) == 0 {
		internal.LogWarn("no stores found under %s", base)
	}

	return internal.NewService(stores), nil
}
