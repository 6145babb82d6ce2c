package session

import (
	"context"
	"sync/atomic"

	"bms-asset-manager/core/catalog"
	"bms-asset-manager/core/inventory"
	"bms-asset-manager/core/reconcile"
	"bms-asset-manager/core/source"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Session holds the single active UnifiedModel and runs the load pipeline.
type Session struct {
	cfg     Config
	rules   inventory.RuleSet
	logger  *zap.Logger
	current atomic.Pointer[reconcile.UnifiedModel]
	sf      singleflight.Group

	// onSwap hooks run after a successful snapshot swap, e.g. to persist
	// a load summary. Registered before first use; not synchronized.
	onSwap []func(*reconcile.UnifiedModel)
}

// New creates a Session. The classification rules come from cfg.RulesFile
// when set, otherwise the built-in defaults.
func New(cfg Config, logger *zap.Logger) (*Session, error) {
	rules := inventory.DefaultRules()
	if cfg.RulesFile != "" {
		loaded, err := inventory.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	return &Session{cfg: cfg, rules: rules, logger: logger}, nil
}

// Current returns the active snapshot, or nil before the first successful
// load. The snapshot is immutable; readers never block.
func (s *Session) Current() *reconcile.UnifiedModel {
	return s.current.Load()
}

// OnSwap registers a hook invoked after every successful reload with the
// freshly swapped-in snapshot.
func (s *Session) OnSwap(hook func(*reconcile.UnifiedModel)) {
	s.onSwap = append(s.onSwap, hook)
}

// Rules returns the active texture classification rule set.
func (s *Session) Rules() inventory.RuleSet {
	return s.rules
}

// Reload builds a new UnifiedModel from the configured sources and swaps
// it in atomically. Concurrent calls coalesce onto a single in-flight
// build and share its result. On failure the previous snapshot stays
// active and the error is returned.
func (s *Session) Reload(ctx context.Context) (*reconcile.UnifiedModel, error) {
	result, err, shared := s.sf.Do("reload", func() (any, error) {
		return s.build(ctx)
	})
	if err != nil {
		return nil, err
	}
	model := result.(*reconcile.UnifiedModel)
	if shared {
		s.logger.Debug("reload request coalesced with in-flight build",
			zap.String("load_id", model.ID.String()))
	}
	return model, nil
}

// build runs the pipeline: parse + parse + scan concurrently, then
// reconcile, then swap.
func (s *Session) build(ctx context.Context) (*reconcile.UnifiedModel, error) {
	var (
		models    []catalog.ModelRecord
		relations []catalog.RelationRecord
		textures  []inventory.Record
		materials map[string][]catalog.MaterialRef
		cockpits  []catalog.ModelRecord

		modelWarnings    []source.Warning
		relationWarnings []source.Warning
		materialWarnings []source.Warning
		cockpitWarnings  []source.Warning
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		models, modelWarnings, err = catalog.ParseCatalog(s.cfg.CatalogFile)
		return err
	})
	g.Go(func() error {
		var err error
		relations, relationWarnings, err = catalog.ParseReport(s.cfg.ReportFile)
		return err
	})
	g.Go(func() error {
		var err error
		textures, err = inventory.Scan(s.cfg.TextureDir, s.cfg.HighResTextureDir, s.rules)
		return err
	})
	if s.cfg.ModelsDir != "" {
		g.Go(func() error {
			var err error
			materials, materialWarnings, err = catalog.ParseMaterialsDir(s.cfg.ModelsDir)
			return err
		})
	}
	if s.cfg.AcdataDir != "" {
		g.Go(func() error {
			var err error
			cockpits, cockpitWarnings, err = catalog.ParseCockpits(s.cfg.AcdataDir, s.cfg.CkptArtDir)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("reload failed, keeping previous snapshot", zap.Error(err))
		return nil, err
	}

	var warnings []source.Warning
	warnings = append(warnings, modelWarnings...)
	warnings = append(warnings, relationWarnings...)
	warnings = append(warnings, materialWarnings...)
	warnings = append(warnings, cockpitWarnings...)
	for _, w := range warnings {
		s.logger.Warn("malformed record skipped", zap.String("source", w.File),
			zap.Int("line", w.Line), zap.String("reason", w.Message))
	}

	model := reconcile.Reconcile(reconcile.Input{
		Models:    append(models, cockpits...),
		Relations: relations,
		Textures:  textures,
		Materials: materials,
		Rules:     s.rules,
		Warnings:  warnings,
	})

	s.current.Store(model)
	s.logger.Info("snapshot swapped",
		zap.String("load_id", model.ID.String()),
		zap.Int("models", len(model.Models)),
		zap.Int("textures", len(model.Textures)),
		zap.Int("usages", len(model.Usages)),
		zap.Int("unused", len(model.Unused)),
		zap.Int("inconsistencies", len(model.Inconsistencies)),
	)

	for _, hook := range s.onSwap {
		hook(model)
	}
	return model, nil
}
