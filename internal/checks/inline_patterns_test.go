package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecheck/sitecheck/internal/types"
)

func TestLegacyInlinePatterns_BothMarkersOnOneLine(t *testing.T) {
	env := testEnv(t, map[string]string{
		"_includes/nav.html": `<a data-toggle="dropdown" onclick='$("#menu").show()'>Menu</a>`,
	})

	findings := (&LegacyInlinePatterns{}).Run(env)
	require.Len(t, findings, 2)
	assert.ElementsMatch(t, []string{
		types.FindingLegacyWidgetAttribute,
		types.FindingLegacyDOMQuery,
	}, ids(findings))
	for _, f := range findings {
		assert.Equal(t, types.SeverityWarning, f.Severity)
		assert.Equal(t, "_includes/nav.html", f.File)
		assert.Equal(t, 1, f.Line)
	}
}

func TestLegacyInlinePatterns_LineNumbers(t *testing.T) {
	env := testEnv(t, map[string]string{
		"assets/js/app.js": "const el = document.querySelector('#x');\n$('#y').hide();\n",
	})

	findings := (&LegacyInlinePatterns{}).Run(env)
	require.Len(t, findings, 1)
	assert.Equal(t, types.FindingLegacyDOMQuery, findings[0].ID)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, "$('#y').hide();", findings[0].Snippet)
}

func TestLegacyInlinePatterns_IgnoredFilesNeverScanned(t *testing.T) {
	// A vendored file full of matches contributes nothing.
	env := testEnv(t, map[string]string{
		"assets/js/vendor/plugin.js": `$(document).ready(function(){});`,
		"assets/js/app.min.js":       `$(document).ready(function(){});`,
	})

	assert.Empty(t, (&LegacyInlinePatterns{}).Run(env))
}

func TestLegacyInlinePatterns_WordAdjacentDollarSkipped(t *testing.T) {
	// foo$(bar) is shell-style interpolation mid-token, not a jQuery
	// call; $( at a call boundary still matches.
	env := testEnv(t, map[string]string{
		"_posts/2026-01-01-pricing.md": "run with prefix$(suffix) here\nthen $(\"#cta\").fadeIn()\n",
	})

	findings := (&LegacyInlinePatterns{}).Run(env)
	require.Len(t, findings, 1)
	assert.Equal(t, 2, findings[0].Line)
}
