package types

// Severity classifies how a finding should gate an upgrade.
type Severity string

const (
	// SeverityBlocking findings must be resolved before upgrading.
	SeverityBlocking Severity = "blocking"

	// SeverityWarning findings should be reviewed but do not gate the upgrade.
	SeverityWarning Severity = "warning"
)

// Stable finding identifiers. These are machine-readable and part of the
// tool's output contract; never rename one without a migration note.
const (
	FindingMissingMigrationManifests = "missing_migration_manifests"
	FindingInvalidConfigYAML         = "invalid_config_yaml"
	FindingMissingFrontendNamespace  = "missing_frontend_namespace"
	FindingWrongCSSEngine            = "wrong_css_engine"
	FindingMissingTailwindNamespace  = "missing_tailwind_namespace"
	FindingMissingDistillNamespace   = "missing_distill_namespace"
	FindingLegacyAssetReference      = "legacy_asset_reference"
	FindingLegacyWidgetAttribute     = "legacy_widget_attribute"
	FindingLegacyDOMQuery            = "legacy_dom_query"
	FindingRemoteDistillLoader       = "remote_distill_loader"
	FindingCoreThemeOverride         = "core_theme_override"
)

// Finding is an immutable record of one detected drift condition.
// Findings are created fresh on every audit run and never mutated or
// deduplicated: two checks may legitimately flag the same file for
// different reasons.
type Finding struct {
	// ID is the stable machine-readable identifier (see constants above).
	ID string

	// Severity is blocking or warning.
	Severity Severity

	// Message is the human-readable description.
	Message string

	// File is the path relative to the project root, or a synthetic
	// "gem-name:path" label when the source is an external plugin asset.
	File string

	// Line is 1-based; 1 when the finding is not line-specific.
	Line int

	// Snippet is short diagnostic text or the offending line, trimmed.
	Snippet string
}

// HasBlocking reports whether any finding in the slice is blocking.
// The CLI maps this to a non-zero exit code.
func HasBlocking(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of blocking and warning findings.
func CountBySeverity(findings []Finding) (blocking, warning int) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityBlocking:
			blocking++
		case SeverityWarning:
			warning++
		}
	}
	return blocking, warning
}
