package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecheck/sitecheck/internal/types"
)

func TestLegacyAssetReferences_FlagsEachMatchingLine(t *testing.T) {
	env := testEnv(t, map[string]string{
		"_includes/head.html": `<link rel="stylesheet" href="/assets/css/main.css">
<script src="/assets/js/bootstrap.bundle.min.js"></script>
<script src="/assets/js/jquery.fancybox.js"></script>`,
		"_includes/scripts.html": `<script src="/assets/js/main.bundle.js"></script>`,
	})

	findings := (&LegacyAssetReferences{}).Run(env)
	require.Len(t, findings, 3)
	for _, f := range findings {
		assert.Equal(t, types.FindingLegacyAssetReference, f.ID)
		assert.Equal(t, types.SeverityBlocking, f.Severity)
	}
	assert.Equal(t, "_includes/head.html", findings[0].File)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, `<script src="/assets/js/bootstrap.bundle.min.js"></script>`, findings[0].Snippet)
	assert.Equal(t, 3, findings[1].Line)
	assert.Equal(t, "_includes/scripts.html", findings[2].File)
	assert.Equal(t, 1, findings[2].Line)
}

func TestLegacyAssetReferences_OnlyCoreIncludesScanned(t *testing.T) {
	// The same reference outside the fixed include set is not this
	// check's business.
	env := testEnv(t, map[string]string{
		"_layouts/default.html": `<script src="/assets/js/bootstrap.min.js"></script>`,
	})

	assert.Empty(t, (&LegacyAssetReferences{}).Run(env))
}

func TestLegacyAssetReferences_CleanIncludes(t *testing.T) {
	env := testEnv(t, map[string]string{
		"_includes/head.html": `<script type="module" src="/assets/js/main.js"></script>`,
	})

	assert.Empty(t, (&LegacyAssetReferences{}).Run(env))
}
