package database

// Config holds configuration for the local history database.
type Config struct {
	// Path is the SQLite database file. Empty disables history.
	Path string `mapstructure:"path" default:"bms-manager.db"`
}
