// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides comprehensive configuration management
//              for PyCalc with support for TOML and YAML formats. Features
//              include automatic file discovery, environment variable
//              injection, configuration validation, hot-reloading, and
//              type-safe access.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides comprehensive configuration management for PyCalc.

Package: config
Title: Core Configuration Management
Description: Provides configuration management capabilities for PyCalc with
             support for TOML and YAML formats, environment variable
             injection, hot-reloading, and type-safe access patterns.
Author: Adithya Suresh
Version: v0.1.0
Created: 2025-03-12
Modified: 2025-03-12

Change History:
- 2025-03-12 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Hot-reloading with change notification callbacks (fsnotify)
  • Thread-safe concurrent access patterns
  • Performance-optimized with caching and lazy loading
  • PyCalc error integration with structured error codes

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := pcconfig.Load("pycalc.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	logLevel := cfg.GetString("log.level", "info")
	maxLen := cfg.GetInt("calc.max_input_length", 4096)
	banner := cfg.GetBool("repl.banner", true)

# Advanced Configuration Options

Load with custom options and validation:

	cfg, err := pcconfig.LoadWithOptions("pycalc.toml", pcconfig.LoadOptions{
		Format:    pcconfig.FormatAuto,
		EnvPrefix: "PYCALC",
		Defaults: map[string]interface{}{
			"log.level":             "info",
			"log.format":            "console",
			"calc.max_input_length": 4096,
			"repl.banner":           true,
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# pycalc.toml
	[log]
	level = "info"
	format = "console"

	[calc]
	max_input_length = 4096

	# Environment variables (with optional prefix)
	export PYCALC_LOG_LEVEL="debug"
	export PYCALC_CALC_MAX_INPUT_LENGTH="1024"

	cfg, _ := pcconfig.LoadWithOptions("pycalc.toml", pcconfig.LoadOptions{
		EnvPrefix: "PYCALC",
	})

	// Environment variables take precedence
	level := cfg.GetString("log.level")           // Returns "debug"
	maxLen := cfg.GetInt("calc.max_input_length") // Returns 1024

# Configuration Validation

Validate configuration structure and constraints:

	rules := pcconfig.ValidationRules{
		"log.level": {
			Required: true,
			Type:     "string",
			Pattern:  `^(trace|debug|info|warn|error)$`,
		},
		"calc.max_input_length": {
			Type: "int",
			Min:  1,
			Max:  1 << 20,
		},
		"repl.banner": {
			Type:    "bool",
			Default: true,
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		return fmt.Errorf("invalid configuration: %s", strings.Join(result.Errors, "; "))
	}

# File Discovery

Discover a configuration file across standard locations instead of
hard-coding a path:

	cfg, err := pcconfig.Discover(pcconfig.DiscoveryOptions{
		Paths:      []string{".", "./config", "/etc/pycalc"},
		Filenames:  []string{"pycalc", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "PYCALC",
		Required:   false,
	})

# Hot Reloading

React to configuration file changes without restarting:

	cfg, _ := pcconfig.LoadWithOptions("pycalc.toml", pcconfig.LoadOptions{
		Watch: true,
	})

	cfg.OnChange(func(oldCfg, newCfg *pcconfig.Config) {
		// Re-read the values that matter to the component
	})

All accessors are safe for concurrent use. Values resolved from environment
variables are cached briefly to avoid repeated syscalls on hot paths.
*/
package config
