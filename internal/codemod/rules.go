package codemod

import (
	"regexp"

	"github.com/sitecheck/sitecheck/internal/checks"
)

// Rule is one global, order-sensitive text substitution. Every rule must
// be independently idempotent: its output never matches its own pattern.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// VendoredDistillPath is where the apply step points distill loads after
// stripping the remote URL.
const VendoredDistillPath = "/assets/js/distill/template.v2.js"

// DefaultRules returns the safe substitution set in application order:
// legacy utility-class renames, then the remote distill URL, then the
// renamed bundle asset.
func DefaultRules() []Rule {
	return []Rule{
		// Directional margin/padding utilities were renamed from
		// left/right to start/end. Class names only; CSS properties like
		// border-left are never of this shape.
		{
			Name:    "margin_padding_left",
			Pattern: regexp.MustCompile(`\b([mp])l-(n?\d+|auto)\b`),
			Replace: "${1}s-${2}",
		},
		{
			Name:    "margin_padding_right",
			Pattern: regexp.MustCompile(`\b([mp])r-(n?\d+|auto)\b`),
			Replace: "${1}e-${2}",
		},
		{
			Name:    "text_align_left",
			Pattern: regexp.MustCompile(`\btext-left\b`),
			Replace: "text-start",
		},
		{
			Name:    "text_align_right",
			Pattern: regexp.MustCompile(`\btext-right\b`),
			Replace: "text-end",
		},
		{
			Name:    "float_left",
			Pattern: regexp.MustCompile(`\bfloat-left\b`),
			Replace: "float-start",
		},
		{
			Name:    "float_right",
			Pattern: regexp.MustCompile(`\bfloat-right\b`),
			Replace: "float-end",
		},
		{
			Name:    "distill_remote_url",
			Pattern: regexp.MustCompile(regexp.QuoteMeta(checks.DistillRemoteURL)),
			Replace: VendoredDistillPath,
		},
		{
			Name:    "renamed_main_bundle",
			Pattern: regexp.MustCompile(`\bmain\.bundle\.js\b`),
			Replace: "main.js",
		},
	}
}

// apply runs every rule in order over content. Pure function; no I/O.
func apply(content string, rules []Rule) string {
	for _, r := range rules {
		content = r.Pattern.ReplaceAllString(content, r.Replace)
	}
	return content
}
