package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bms-asset-manager/core/config"
	"bms-asset-manager/core/database"
	"bms-asset-manager/feature/history"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recent load summaries from the local history database.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent load summaries",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of loads to show")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.History.Path == "" {
		fmt.Println("history is disabled (history.path is empty)")
		return nil
	}

	db, err := database.Connect(cfg.History)
	if err != nil {
		return err
	}
	store, err := history.NewStore(db)
	if err != nil {
		return err
	}

	records, err := store.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUILT\tLOAD ID\tMODELS\tTEXTURES\tUNUSED\tINCONSISTENCIES")
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			record.BuiltAt.Format("2006-01-02 15:04:05"), record.LoadID,
			record.Models, record.Textures, record.Unused, record.Inconsistencies)
	}
	return w.Flush()
}
