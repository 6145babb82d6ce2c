package api

import (
	"bms-asset-manager/core/logger"
	"bms-asset-manager/core/query"
	"bms-asset-manager/core/reconcile"
	"bms-asset-manager/core/session"
	"bms-asset-manager/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the query layer over HTTP. Every endpoint reads the
// current immutable snapshot; only /reload triggers the pipeline.
type Handler struct {
	session *session.Session
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(sess *session.Session, logger *zap.Logger) *Handler {
	return &Handler{session: sess, logger: logger}
}

// RegisterRoutes registers the query routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/models", h.HandleModels)
	app.Get("/models/:name/chain", h.HandleParentChain)
	app.Get("/models/:name/textures", h.HandleModelTextures)
	app.Get("/textures/unused", h.HandleUnusedTextures)
	app.Get("/textures/pbr", h.HandlePBRTextures)
	app.Get("/inconsistencies", h.HandleInconsistencies)
	app.Get("/status", h.HandleStatus)
	app.Post("/reload", h.HandleReload)
}

// snapshot fetches the current model or replies 503 when nothing has been
// loaded yet.
func (h *Handler) snapshot(c *fiber.Ctx) (*reconcile.UnifiedModel, error) {
	m := h.session.Current()
	if m == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "no snapshot loaded yet")
	}
	return m, nil
}

// HandleModels lists model entries, filtered by the optional category,
// name, and ct query parameters.
func (h *Handler) HandleModels(c *fiber.Ctx) error {
	m, err := h.snapshot(c)
	if err != nil {
		return err
	}

	if ct := c.QueryInt("ct"); ct != 0 {
		return c.JSON(query.ByCTNumber(m, ct))
	}
	if category := c.Query("category"); category != "" {
		return c.JSON(query.ByCategory(m, category))
	}
	// Empty substring matches everything, so this doubles as "list all".
	return c.JSON(query.ByNameSubstring(m, c.Query("name")))
}

// HandleParentChain returns the model's ancestry, root first.
func (h *Handler) HandleParentChain(c *fiber.Ctx) error {
	m, err := h.snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(query.ParentChain(m, c.Params("name")))
}

// HandleModelTextures lists the texture records a model uses.
func (h *Handler) HandleModelTextures(c *fiber.Ctx) error {
	m, err := h.snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(query.TexturesForModel(m, c.Params("name")))
}

// HandleUnusedTextures lists textures present on disk but referenced by no
// model.
func (h *Handler) HandleUnusedTextures(c *fiber.Ctx) error {
	m, err := h.snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(query.UnusedTextures(m))
}

// HandlePBRTextures lists on-disk PBR-class texture records.
func (h *Handler) HandlePBRTextures(c *fiber.Ctx) error {
	m, err := h.snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(query.PBRTextures(m))
}

// HandleInconsistencies lists every detected data problem of the snapshot.
func (h *Handler) HandleInconsistencies(c *fiber.Ctx) error {
	m, err := h.snapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(query.Inconsistencies(m))
}

// HandleStatus reports the current snapshot's identity and counts.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	m := h.session.Current()
	if m == nil {
		return c.JSON(fiber.Map{"loaded": false})
	}
	return c.JSON(fiber.Map{
		"loaded":          true,
		"load_id":         m.ID,
		"built_at":        m.BuiltAt,
		"models":          len(m.Models),
		"textures":        len(m.Textures),
		"unused":          len(m.Unused),
		"inconsistencies": len(m.Inconsistencies),
	})
}

// HandleReload rebuilds the snapshot from the configured sources.
// Concurrent requests coalesce onto the single in-flight build. On
// failure the previous snapshot stays active and the error is reported.
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Reload requested")

	m, err := h.session.Reload(c.Context())
	if err != nil {
		status := fiber.StatusInternalServerError
		if source.IsUnavailable(err) {
			status = fiber.StatusConflict
		}
		l.Error("Reload failed, previous snapshot kept", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"reloaded": false,
			"error":    err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"reloaded": true,
		"load_id":  m.ID,
	})
}
