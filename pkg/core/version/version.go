// File: version.go
// Title: Component Version Constants
// Description: Central version management for the PyCalc components.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial version constants

package version

// Version constants for the PyCalc components
const (
	// Application version
	Application = "0.1.0"

	// Component versions
	Engine   = "0.1.0"
	Registry = "0.1.0"
	Parser   = "0.1.0"
	History  = "0.1.0"
	REPL     = "0.1.0"
	TUI      = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "engine":
		return Engine
	case "registry":
		return Registry
	case "parser":
		return Parser
	case "history":
		return History
	case "repl":
		return REPL
	case "tui":
		return TUI
	default:
		return Application
	}
}
