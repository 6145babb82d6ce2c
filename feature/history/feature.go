package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store  *Store
	logger *zap.Logger
}

// NewFeature creates the history feature. A nil store disables it.
func NewFeature(store *Store, logger *zap.Logger) *Feature {
	return &Feature{store: store, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	group := app.Group("/history")
	group.Get("/", f.handleRecent)
	group.Get("/:id/inconsistencies", f.handleInconsistencies)
	return nil
}

func (f *Feature) handleRecent(c *fiber.Ctx) error {
	records, err := f.store.Recent(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		f.logger.Error("history query failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "history query failed")
	}
	return c.JSON(records)
}

func (f *Feature) handleInconsistencies(c *fiber.Ctx) error {
	records, err := f.store.InconsistenciesFor(c.Context(), c.Params("id"))
	if err != nil {
		f.logger.Error("history query failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "history query failed")
	}
	return c.JSON(records)
}
