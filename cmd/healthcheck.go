package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxtools/cursor-export/internal"
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check store discovery and readability",
	Long: `Run store discovery and attempt a read-only open of every candidate
database, reporting which stores are reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := internal.GetBasePath(storagePath)
		if err != nil {
			return err
		}
		internal.PrintInfo("Storage root: " + base)

		stores := internal.ListStores(base)
		if len(stores) == 0 {
			internal.PrintWarning("No stores found")
			return nil
		}

		readable := 0
		for _, store := range stores {
			db, err := internal.OpenStore(store.Path)
			if err != nil {
				internal.PrintError(fmt.Sprintf("%s: %v", store.DisplayName, err))
				continue
			}
			ids := internal.ListConversationIDs(store)
			db.Close()
			readable++
			internal.PrintSuccess(fmt.Sprintf("%s: %d conversation(s)", store.DisplayName, len(ids)))
		}

		internal.PrintInfo(fmt.Sprintf("%d/%d store(s) readable", readable, len(stores)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
