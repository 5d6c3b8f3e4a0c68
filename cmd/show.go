package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal/export"
)

var (
	showFormat string
	showPreset string
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Render one conversation to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		conv, err := service.GetConversation(args[0])
		if err != nil {
			return err
		}

		format, err := export.ParseFormat(showFormat)
		if err != nil {
			return err
		}

		content, err := export.Render(conv, format, export.FromPreset(showPreset))
		if err != nil {
			return err
		}

		fmt.Print(content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "markdown", "Output format (md, json, jsonl, html, txt)")
	showCmd.Flags().StringVar(&showPreset, "preset", "default", "Option preset (see 'cursor-export formats')")
}
