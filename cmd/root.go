package cmd

import (
	"fmt"
	"os"

	"bms-asset-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bms-manager",
	Short: "Falcon BMS asset analyzer",
	Long: `bms-manager is a read-only analyzer for Falcon BMS asset definitions.
It reconciles the XML catalog, the parent/child relationship report, and the
texture directories into one consistent view: model listings, parent chains,
texture usage, PBR detection, and unused-texture detection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
