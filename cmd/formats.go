package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal"
	"github.com/voxtools/cursor-export/internal/export"
)

// formatsCmd represents the formats command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and option presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(internal.HeaderStyle.Render("Formats"))
		fmt.Println("  markdown (md), json, jsonl, html, txt")
		fmt.Println()

		fmt.Println(internal.HeaderStyle.Render("Presets"))
		for _, name := range export.Presets() {
			opts, _ := export.Preset(name)
			detail := ""
			switch {
			case opts.Training != export.TrainingOpenAI:
				detail = fmt.Sprintf("training=%s", opts.Training)
			case opts.Frontmatter:
				detail = fmt.Sprintf("frontmatter=%s callouts=%s", opts.FrontmatterFormat, opts.CalloutStyle)
			case opts.CalloutStyle != export.CalloutNone:
				detail = fmt.Sprintf("callouts=%s", opts.CalloutStyle)
			}
			fmt.Printf("  %-20s %s\n", name, internal.DimStyle.Render(detail))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
