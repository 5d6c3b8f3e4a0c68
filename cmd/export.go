package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal"
	"github.com/voxtools/cursor-export/internal/export"
)

var (
	exportFormat       string
	exportOut          string
	exportID           string
	exportAll          bool
	exportMerged       bool
	exportPreset       string
	exportFrontmatter  string
	exportLineWidth    int
	exportCallouts     string
	exportTraining     string
	exportSystemPrompt string
	exportMetadata     bool
	exportStrip        bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export conversations to files",
	Long: `Export conversations in one of five formats (md, json, jsonl, html, txt).

Export one conversation with --id, everything with --all (one file each),
or everything into a single artifact with --merged. Output file names are
derived from the export date, the conversation title, and its id.

Options start from a preset and are overridden flag by flag:
  cursor-export export --all --format md --preset obsidian --line-width 80
  cursor-export export --merged --format jsonl --preset training-alpaca`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		opts := buildOptions(cmd)
		exporter := export.NewExporter(service, exportOut)

		switch {
		case exportMerged:
			path, err := exporter.ExportMerged(format, "", opts)
			if err != nil {
				return err
			}
			internal.PrintSuccess("Merged export written to " + path)
			return nil

		case exportID != "":
			conv, err := service.GetConversation(exportID)
			if err != nil {
				return err
			}
			path, err := exporter.ExportToFile(conv, format, "", opts)
			if err != nil {
				return err
			}
			internal.PrintSuccess("Exported to " + path)
			return nil

		case exportAll:
			report, err := exporter.ExportAll(format, opts)
			if err != nil {
				return err
			}
			internal.PrintSuccess(fmt.Sprintf("Export complete: %d attempted, %d succeeded, %d skipped",
				report.Attempted, report.Succeeded, report.Skipped))
			return nil

		default:
			return fmt.Errorf("nothing to export: pass --id, --all, or --merged")
		}
	},
}

// buildOptions starts from the named preset and applies explicitly-set flags
// on top, field by field.
func buildOptions(cmd *cobra.Command) export.Options {
	opts := export.FromPreset(exportPreset)

	if cmd.Flags().Changed("frontmatter") {
		opts = opts.WithFrontmatter(export.FrontmatterFormat(exportFrontmatter))
	}
	if cmd.Flags().Changed("line-width") {
		opts = opts.WithLineWidth(exportLineWidth)
	}
	if cmd.Flags().Changed("callouts") {
		opts = opts.WithCallouts(export.CalloutStyle(exportCallouts))
	}
	if cmd.Flags().Changed("training") {
		opts = opts.WithTraining(export.TrainingFormat(exportTraining))
	}
	if cmd.Flags().Changed("system-prompt") {
		opts = opts.WithSystemPrompt(exportSystemPrompt)
	}
	if cmd.Flags().Changed("metadata") {
		opts = opts.WithMetadata(exportMetadata)
	}
	if cmd.Flags().Changed("strip") {
		opts = opts.WithStripFormatting(exportStrip)
	}

	return opts
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "Export format (md, json, jsonl, html, txt)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVar(&exportID, "id", "", "Export a single conversation by id")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every conversation, one file each")
	exportCmd.Flags().BoolVar(&exportMerged, "merged", false, "Export every conversation into one artifact")
	exportCmd.Flags().StringVar(&exportPreset, "preset", "default", "Option preset (see 'cursor-export formats')")
	exportCmd.Flags().StringVar(&exportFrontmatter, "frontmatter", "yaml", "Enable frontmatter in the given format (yaml, toml, json)")
	exportCmd.Flags().IntVar(&exportLineWidth, "line-width", 0, "Word-wrap prose at this width (0 disables)")
	exportCmd.Flags().StringVar(&exportCallouts, "callouts", "none", "Callout style (admonition, blockquote, github, none)")
	exportCmd.Flags().StringVar(&exportTraining, "training", "openai", "JSONL training format (openai, alpaca, sharegpt)")
	exportCmd.Flags().StringVar(&exportSystemPrompt, "system-prompt", "", "System prompt for training formats")
	exportCmd.Flags().BoolVar(&exportMetadata, "metadata", false, "Include workspace and export timestamp")
	exportCmd.Flags().BoolVar(&exportStrip, "strip", false, "Strip markdown formatting from content")
}
