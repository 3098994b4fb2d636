// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Output Formatting - these keys govern how constants are rendered by the CLI.
const (
	OutputJson      = "output.json"
	OutputPrecision = "output.precision"
)

// Listing - these keys configure the tabular overview of constants.
const (
	ListShowUnits = "list.show_units"
)

// Scripting Host - these keys configure the embedded Lua runtime.
const (
	ScriptPreloadLibs = "script.preload_libs"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general CLI behavior.
const (
	CliColored = "cli.colored"
)
