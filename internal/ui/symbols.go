package ui

// Unicode markers for deploy step status lines.
const (
	SymbolSuccess  = "✓" // Pipeline finished successfully
	SymbolFail     = "✗" // Step failed
	SymbolProgress = "◐" // Step in progress
	SymbolComplete = "●" // Step done
)
