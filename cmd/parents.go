package cmd

import (
	"fmt"
	"strings"

	"bms-asset-manager/core/query"

	"github.com/spf13/cobra"
)

// parentsCmd prints a model's ancestry.
var parentsCmd = &cobra.Command{
	Use:   "parents <model>",
	Short: "Show a model's parent chain, root first",
	Args:  cobra.ExactArgs(1),
	RunE:  runParents,
}

func init() {
	RootCmd.AddCommand(parentsCmd)
}

func runParents(cmd *cobra.Command, args []string) error {
	m, _, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	chain := query.ParentChain(m, args[0])
	if len(chain) == 0 {
		fmt.Printf("no model named %q in the catalog\n", args[0])
		return nil
	}

	for depth, entry := range chain {
		marker := "└─"
		if depth == 0 {
			marker = ""
		}
		fmt.Printf("%s%s %s (%s, CT %d)\n",
			strings.Repeat("  ", depth), marker, entry.Name, entry.Category, entry.CTNumber)
	}
	return nil
}
