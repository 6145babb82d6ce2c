package cmd

import (
	"bms-asset-manager/core/query"

	"github.com/spf13/cobra"
)

// unusedCmd lists textures present on disk but referenced by no model.
var unusedCmd = &cobra.Command{
	Use:   "unused",
	Short: "List unused textures",
	Long: `List texture files present in the inventory directories but referenced
by no model entry's usage edges.`,
	RunE: runUnused,
}

func init() {
	RootCmd.AddCommand(unusedCmd)
}

func runUnused(cmd *cobra.Command, args []string) error {
	m, _, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}
	printTextureTable(query.UnusedTextures(m))
	return nil
}
