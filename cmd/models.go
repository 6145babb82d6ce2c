package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bms-asset-manager/core/query"
	"bms-asset-manager/core/reconcile"
	"bms-asset-manager/core/utils"

	"github.com/spf13/cobra"
)

var (
	modelsCategory string
	modelsName     string
	modelsCT       int
)

// modelsCmd lists catalog models with optional filters.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models from the catalog",
	Long: `List reconciled model entries, optionally filtered by category
(Feature, Vehicle, Weapon, Cockpit), name substring, or CT number.

Examples:
  # All vehicles
  bms-manager models --category Vehicle

  # Models whose name contains "f-16"
  bms-manager models --name f-16

  # One model by CT number
  bms-manager models --ct 1523`,
	RunE: runModels,
}

func init() {
	modelsCmd.Flags().StringVar(&modelsCategory, "category", "", "Filter by category")
	modelsCmd.Flags().StringVar(&modelsName, "name", "", "Filter by name substring")
	modelsCmd.Flags().IntVar(&modelsCT, "ct", 0, "Filter by CT number")
	RootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	m, _, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	var entries []reconcile.ModelEntry
	switch {
	case modelsCT != 0:
		entries = query.ByCTNumber(m, modelsCT)
	case modelsCategory != "":
		entries = query.ByCategory(m, modelsCategory)
	default:
		entries = query.ByNameSubstring(m, modelsName)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CT\tNAME\tCATEGORY\tBML\tTEXTURES")
	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
			entry.CTNumber, entry.Name, entry.Category,
			utils.FormatVersions(entry.BMLVersions),
			len(m.UsageByModel[entry.Key]))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d models\n", len(entries))
	return nil
}
