package checks

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sitecheck/sitecheck/internal/types"
)

var (
	// data-toggle attributes activate Bootstrap 4 widgets; the new toolkit
	// uses data-bs-* names.
	widgetAttrRe = regexp.MustCompile(`data-toggle=`)

	// $( at a call boundary is the jQuery DOM-query convention. The guard
	// before the $ keeps template variables like {{ page.$( out of scope.
	domQueryRe = regexp.MustCompile(`(^|[^\w$.])\$\(`)
)

// LegacyInlinePatterns scans every candidate file for inline markers of
// the retired UI toolkit. Both markers are warnings: they usually stop
// working after the upgrade but do not break the build, and a line can
// legitimately trigger both.
type LegacyInlinePatterns struct{}

func (c *LegacyInlinePatterns) ID() string { return "legacy_inline_patterns" }

func (c *LegacyInlinePatterns) Description() string {
	return "Templates are free of legacy widget and DOM-query markers"
}

func (c *LegacyInlinePatterns) Run(env *Env) []types.Finding {
	var findings []types.Finding
	for _, rel := range env.Files.Locate() {
		data, err := os.ReadFile(filepath.Join(env.Root, rel))
		if err != nil {
			continue
		}
		for i, line := range strings.Split(string(data), "\n") {
			if widgetAttrRe.MatchString(line) {
				findings = append(findings, types.Finding{
					ID:       types.FindingLegacyWidgetAttribute,
					Severity: types.SeverityWarning,
					Message:  "uses a data-toggle widget-activation attribute",
					File:     rel,
					Line:     i + 1,
					Snippet:  strings.TrimSpace(line),
				})
			}
			if domQueryRe.MatchString(line) {
				findings = append(findings, types.Finding{
					ID:       types.FindingLegacyDOMQuery,
					Severity: types.SeverityWarning,
					Message:  "uses the legacy $() DOM-query convention",
					File:     rel,
					Line:     i + 1,
					Snippet:  strings.TrimSpace(line),
				})
			}
		}
	}
	return findings
}
