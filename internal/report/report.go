// Package report renders audit findings as a deterministic markdown
// document for CI log capture or human review.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitecheck/sitecheck/internal/types"
)

// FileName is the report artifact, relative to the project root. It is
// fully overwritten on every run, never appended.
const FileName = "UPGRADE_AUDIT.md"

// Render groups findings by severity and produces the markdown report.
// Entries keep the order the checks produced them; nothing is re-sorted.
// An empty severity group renders an explicit "None" rather than an
// empty section.
func Render(findings []types.Finding) string {
	blocking, warning := types.CountBySeverity(findings)

	var b strings.Builder
	b.WriteString("# Upgrade Audit\n\n")
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "%d finding(s): %d blocking, %d non-blocking.\n\n", len(findings), blocking, warning)

	b.WriteString("## Blocking\n\n")
	writeGroup(&b, findings, types.SeverityBlocking)

	b.WriteString("## Non-blocking\n\n")
	writeGroup(&b, findings, types.SeverityWarning)

	return b.String()
}

// Write renders the findings and overwrites the report file under root.
func Write(root string, findings []types.Finding) (string, error) {
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte(Render(findings)), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

func writeGroup(b *strings.Builder, findings []types.Finding, sev types.Severity) {
	count := 0
	for _, f := range findings {
		if f.Severity != sev {
			continue
		}
		count++
		fmt.Fprintf(b, "- **%s** %s — `%s:%d`\n", f.ID, f.Message, f.File, f.Line)
		if f.Snippet != "" {
			fmt.Fprintf(b, "  > %s\n", f.Snippet)
		}
	}
	if count == 0 {
		b.WriteString("None\n")
	}
	b.WriteString("\n")
}
