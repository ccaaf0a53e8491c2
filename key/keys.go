// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Gradient Expansion - these keys decide whether gradient directives are expanded at all.
const (
	GradientsEnabled        = "gradients.enabled"
	GradientsMinimumVersion = "gradients.minimum_version"
)

// Host Environment - these keys describe the client that consumes decorated text.
const (
	HostVersion = "host.version"
)

// Legacy Codes - these keys configure alternate color code translation.
const (
	LegacyPrefix = "legacy.prefix"
)

// Placeholders - these keys manage the sources of placeholder values.
const (
	PlaceholdersStatic  = "placeholders.static"
	PlaceholdersScripts = "placeholders.scripts"
)

// Formatting - these keys govern how values are stringified.
const (
	FormatLocale = "format.locale"
)

// Preview Rendering - these keys control terminal previews of decorated text.
const (
	RenderMode = "render.mode"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
