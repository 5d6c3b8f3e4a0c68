package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal"
)

var searchLimit int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search conversation titles and content",
	Long: `Case-insensitive substring search over conversation titles and message
content. The scan is linear over every discovered store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		matches := service.SearchConversations(args[0], searchLimit)
		if len(matches) == 0 {
			internal.PrintInfo("No matches")
			return nil
		}

		for _, conv := range matches {
			id := conv.ID
			if len(id) > 8 {
				id = id[:8]
			}
			fmt.Printf("%s  %s %s\n", id, conv.Title,
				internal.DimStyle.Render(fmt.Sprintf("(%d messages, %s)", conv.MessageCount, conv.Source)))
		}

		internal.PrintSuccess(fmt.Sprintf("%d match(es)", len(matches)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of matches")
}
