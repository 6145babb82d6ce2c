package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bms-asset-manager/core/config"
	"bms-asset-manager/core/database"
	"bms-asset-manager/core/loader"
	"bms-asset-manager/core/logger"
	"bms-asset-manager/core/middleware/rayid"
	"bms-asset-manager/core/reconcile"
	"bms-asset-manager/core/session"

	"bms-asset-manager/feature/api"
	"bms-asset-manager/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP front-end",
	Long: `Starts the HTTP server exposing the query layer, performs the initial
load, and keeps serving the last good snapshot across failed reloads.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the Session
		sess, err := session.New(cfg.Paths, logg)
		if err != nil {
			logg.Fatal("Failed to create session", zap.Error(err))
		}

		// 4. Open the history database (optional)
		var store *history.Store
		if cfg.History.Path != "" {
			if db, err := database.Connect(cfg.History); err != nil {
				logg.Warn("Optional history database unavailable", zap.Error(err))
			} else if store, err = history.NewStore(db); err != nil {
				logg.Warn("History schema migration failed", zap.Error(err))
				store = nil
			}
		}
		if store != nil {
			persist := store
			sess.OnSwap(func(m *reconcile.UnifiedModel) {
				if err := persist.Record(context.Background(), m); err != nil {
					logg.Warn("Failed to persist load summary", zap.Error(err))
				}
			})
		}

		// 5. Initial load. A failure is an error notice, not a crash:
		// the server comes up and /reload can retry once the sources
		// are fixed.
		if _, err := sess.Reload(cmd.Context()); err != nil {
			logg.Error("Initial load failed, starting without a snapshot", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(api.NewFeature(sess, logg))
		mgr.Register(history.NewFeature(store, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
