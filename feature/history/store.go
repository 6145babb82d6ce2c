package history

import (
	"context"

	"bms-asset-manager/core/reconcile"

	"gorm.io/gorm"
)

// Store persists load summaries and their inconsistencies.
type Store struct {
	db *gorm.DB
}

// NewStore migrates the history schema and returns a Store.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&LoadRecord{}, &InconsistencyRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record persists a summary row plus one row per inconsistency for the
// given snapshot.
func (s *Store) Record(ctx context.Context, m *reconcile.UnifiedModel) error {
	record := LoadRecord{
		LoadID:          m.ID.String(),
		BuiltAt:         m.BuiltAt,
		Models:          len(m.Models),
		Textures:        len(m.Textures),
		Usages:          len(m.Usages),
		Unused:          len(m.Unused),
		Inconsistencies: len(m.Inconsistencies),
		Warnings:        len(m.Warnings),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if len(m.Inconsistencies) == 0 {
			return nil
		}
		rows := make([]InconsistencyRecord, 0, len(m.Inconsistencies))
		for _, inc := range m.Inconsistencies {
			rows = append(rows, InconsistencyRecord{
				LoadID:  m.ID.String(),
				Kind:    string(inc.Kind),
				Subject: inc.Subject,
				Detail:  inc.Detail,
			})
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

// Recent returns the latest load summaries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]LoadRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []LoadRecord
	err := s.db.WithContext(ctx).
		Order("built_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// InconsistenciesFor returns the persisted inconsistencies of one load.
func (s *Store) InconsistenciesFor(ctx context.Context, loadID string) ([]InconsistencyRecord, error) {
	var records []InconsistencyRecord
	err := s.db.WithContext(ctx).
		Where("load_id = ?", loadID).
		Order("kind, subject").
		Find(&records).Error
	return records, err
}
