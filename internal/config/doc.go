// Package config provides configuration management for the userdirs CLI.
//
// This package handles loading and validating the CLI's own configuration
// file. The library itself takes no configuration; the file only controls
// presentation defaults for the command-line frontend.
//
// # Configuration File
//
// The default configuration file location is <config-dir>/userdirs/config.yaml,
// where <config-dir> is resolved by the userdirs library itself. The file
// uses YAML format:
//
//	version: 1
//	format: json   # default output format for `userdirs list`
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// Values can also be supplied through USERDIRS_* environment variables,
// e.g. USERDIRS_FORMAT=yaml.
//
// # Validation
//
// Loaded configurations are validated automatically; [Validate] is exposed
// for manual checks. Invalid values unwrap to errors.ErrInvalidConfig.
package config
