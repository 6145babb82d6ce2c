// Package config provides configuration management for the BMS asset
// manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application
// settings, divided into subsections:
//   - Paths: locations of the catalog, report, and texture directories
//   - Server: HTTP front-end settings (port)
//   - Log: logging level and format
//   - History: local SQLite load-history database
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Paths.CatalogFile)
package config
