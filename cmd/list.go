package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal"
)

var (
	listWorkspace string
	listKind      string
	listLimit     int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations from every discovered store",
	Long: `List every conversation reachable from the discovered stores.

Results are grouped by store, then by discovery order. Use --workspace or
--source to narrow the scan, and 'cursor-export show <id>' to view one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := newService()
		if err != nil {
			return err
		}

		filter := internal.ListFilter{
			Workspace: listWorkspace,
			Kind:      internal.StoreKind(listKind),
			Limit:     listLimit,
		}
		conversations := service.ListConversations(filter)

		if len(conversations) == 0 {
			internal.PrintInfo("No conversations found")
			return nil
		}

		fmt.Println(internal.HeaderStyle.Render(fmt.Sprintf("%-10s %-50s %6s  %s", "ID", "TITLE", "MSGS", "SOURCE")))
		for _, conv := range conversations {
			id := conv.ID
			if len(id) > 8 {
				id = id[:8]
			}
			title := conv.Title
			if len(title) > 50 {
				title = title[:47] + "..."
			}
			fmt.Printf("%-10s %-50s %6d  %s\n", id, title, conv.MessageCount,
				internal.DimStyle.Render(conv.Source))
		}

		internal.PrintSuccess(fmt.Sprintf("%d conversation(s)", len(conversations)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listWorkspace, "workspace", "", "Filter by workspace hash")
	listCmd.Flags().StringVar(&listKind, "source", "", "Filter by store kind (global, workspace, versioned)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of conversations to list")
}
