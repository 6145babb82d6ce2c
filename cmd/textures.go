package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bms-asset-manager/core/inventory"
	"bms-asset-manager/core/query"

	"github.com/spf13/cobra"
)

var texturesPBROnly bool

// texturesCmd lists the textures a model uses, or all PBR textures.
var texturesCmd = &cobra.Command{
	Use:   "textures [model]",
	Short: "List textures used by a model, or all PBR textures",
	Long: `With a model argument, list every texture record the model references,
including referenced-but-missing ones. With --pbr and no argument, list
every on-disk texture classified as part of a PBR channel set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTextures,
}

func init() {
	texturesCmd.Flags().BoolVar(&texturesPBROnly, "pbr", false, "List all PBR-class textures")
	RootCmd.AddCommand(texturesCmd)
}

func runTextures(cmd *cobra.Command, args []string) error {
	m, _, err := loadSnapshot(cmd.Context())
	if err != nil {
		return err
	}

	var records []inventory.Record
	switch {
	case len(args) == 1:
		records = query.TexturesForModel(m, args[0])
	case texturesPBROnly:
		records = query.PBRTextures(m)
	default:
		return fmt.Errorf("pass a model name or --pbr")
	}

	printTextureTable(records)
	return nil
}

func printTextureTable(records []inventory.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTIER\tCHANNEL\tPBR\tSTATE")
	for _, record := range records {
		state := "ok"
		if !record.Exists {
			state = "missing"
		}
		channel := record.Channel
		if channel == "" {
			channel = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
			record.Name, record.Tier, channel, record.PBR, state)
	}
	_ = w.Flush()
	fmt.Printf("\n%d textures\n", len(records))
}
