package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bms-asset-manager/core/query"

	"github.com/spf13/cobra"
)

var checkShowWarnings bool

// checkCmd reports every inconsistency the reconciliation detected.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report data inconsistencies across the three sources",
	Long: `Load all three sources and report every detected inconsistency:
dangling parent references, missing textures, cyclic parent chains,
duplicate catalog entries, and unused textures.

Inconsistencies are data, not errors: the command exits zero even when
problems are found, so it can feed further tooling.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkShowWarnings, "warnings", false, "Also show parse warnings")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, _, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	inconsistencies := query.Inconsistencies(m)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tSUBJECT\tDETAIL")
	for _, inc := range inconsistencies {
		fmt.Fprintf(w, "%s\t%s\t%s\n", inc.Kind, inc.Subject, inc.Detail)
	}
	_ = w.Flush()
	fmt.Printf("\n%d inconsistencies\n", len(inconsistencies))

	if checkShowWarnings && len(m.Warnings) > 0 {
		fmt.Println()
		for _, warning := range m.Warnings {
			fmt.Println(warning.String())
		}
		fmt.Printf("\n%d parse warnings\n", len(m.Warnings))
	}
	return nil
}
