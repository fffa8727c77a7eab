// Package config provides configuration management for stockctl.
//
// Configuration is loaded from YAML files and merged in the following order,
// with later sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/stockctl/config.yaml)
//  3. Project configuration (./.stockctl/config.yaml)
//
// An explicit file passed with --config replaces layers 2 and 3.
//
// # Configuration Structure
//
//	database:
//	  path: "inventory.db"        # or ":memory:"
//	browser:
//	  lowStockWarning: 5          # rows at or below are highlighted
//	  doubleClickInterval: 400ms
//	  currency: "€"
//	export:
//	  directory: "."
//	logging:
//	  level: info
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store, err := catalog.Open(cfg.Database.Path)
package config
