package api

import (
	"bms-asset-manager/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the read-only query API feature.
func NewFeature(sess *session.Session, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(sess, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "api"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
