// =============================================================================
// Pohoda Analytics - Main Entry Point
// =============================================================================
//
// This is the main entry point for the VITAR Sport Analytics CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   pohoda-analytics analyze   - Analyze the Pohoda exports and write reports
//   pohoda-analytics version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/vitarsport/pohoda-analytics/cmd"
)

func main() {
	cmd.Execute()
}
