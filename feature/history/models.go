package history

import "time"

// LoadRecord is one row per completed load cycle.
type LoadRecord struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// LoadID is the UnifiedModel's uuid.
	LoadID string `gorm:"uniqueIndex;size:36" json:"load_id"`

	// BuiltAt is when reconciliation finished.
	BuiltAt time.Time `json:"built_at"`

	// Aggregate counts from the snapshot.
	Models          int `json:"models"`
	Textures        int `json:"textures"`
	Usages          int `json:"usages"`
	Unused          int `json:"unused"`
	Inconsistencies int `json:"inconsistencies"`
	Warnings        int `json:"warnings"`
}

// TableName keeps the legacy table name stable across gorm upgrades.
func (LoadRecord) TableName() string { return "load_history" }

// InconsistencyRecord persists one detected inconsistency of a load.
type InconsistencyRecord struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	LoadID string `gorm:"index;size:36" json:"load_id"`

	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Detail  string `json:"detail"`
}

// TableName keeps the legacy table name stable across gorm upgrades.
func (InconsistencyRecord) TableName() string { return "load_inconsistencies" }
