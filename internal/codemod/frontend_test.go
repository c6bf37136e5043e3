package codemod

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parse(t *testing.T, content string) map[string]any {
	t.Helper()
	var tree map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(content), &tree))
	return tree
}

func TestEnsureFrontendNamespace_AppendsWhenAbsent(t *testing.T) {
	in := "title: My Site\nbaseurl: /blog\n"

	out := EnsureFrontendNamespace(in)
	assert.True(t, strings.HasPrefix(out, in), "existing content stays untouched")

	tree := parse(t, out)
	frontend, ok := tree["frontend"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tailwind", frontend["css_engine"])
	assert.Contains(t, frontend, "tailwind")
	assert.Contains(t, frontend, "distill")

	distill, ok := frontend["distill"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, distill["allow_remote_loader"])
}

func TestEnsureFrontendNamespace_InsertsMissingSubNamespace(t *testing.T) {
	in := `title: My Site
frontend:
  css_engine: tailwind
  distill:
    allow_remote_loader: false
unrelated: kept
`

	out := EnsureFrontendNamespace(in)
	tree := parse(t, out)
	frontend := tree["frontend"].(map[string]any)
	assert.Contains(t, frontend, "tailwind")

	// The existing distill mapping and surrounding keys are untouched.
	assert.Contains(t, out, "unrelated: kept")
	assert.Contains(t, out, "allow_remote_loader: false")
	lines := strings.Split(out, "\n")
	assert.Equal(t, "frontend:", lines[1])
	assert.Equal(t, "  tailwind:", lines[2], "default block goes right after the header")
}

func TestEnsureFrontendNamespace_ExistingSubNamespaceNeverOverwritten(t *testing.T) {
	in := `frontend:
  css_engine: tailwind
  tailwind:
    version: "2.0"
  distill:
    allow_remote_loader: true
`

	out := EnsureFrontendNamespace(in)
	assert.Equal(t, in, out, "populated namespace is left byte-identical")
}

func TestEnsureFrontendNamespace_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"title: My Site\n",
		"frontend:\n  css_engine: tailwind\n",
	}
	for _, in := range inputs {
		once := EnsureFrontendNamespace(in)
		twice := EnsureFrontendNamespace(once)
		assert.Equal(t, once, twice)
	}
}

func TestEnsureFrontendNamespace_MatchesExistingChildIndentation(t *testing.T) {
	// A 4-space-indented document must get a 4-space-indented sibling
	// block. Inserting at the wrong depth would make YAML absorb the
	// original children into the new mapping.
	in := "frontend:\n" +
		"    css_engine: tailwind\n" +
		"    distill:\n" +
		"        allow_remote_loader: false\n"

	out := EnsureFrontendNamespace(in)
	tree := parse(t, out)
	frontend := tree["frontend"].(map[string]any)

	// The inserted block is a sibling of the existing keys, never their
	// new parent.
	assert.Equal(t, "tailwind", frontend["css_engine"])
	tw, ok := frontend["tailwind"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, tw, "css_engine")
	assert.NotContains(t, tw, "distill")
	_, ok = frontend["distill"].(map[string]any)
	assert.True(t, ok)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "    tailwind:", lines[1])
	assert.Equal(t, `        version: "3.4"`, lines[2])

	once := out
	assert.Equal(t, once, EnsureFrontendNamespace(once), "second pass must not insert again")
}

func TestEnsureFrontendNamespace_IndentDetectionSkipsComments(t *testing.T) {
	in := "frontend:\n" +
		"    # pipeline settings\n" +
		"    css_engine: tailwind\n" +
		"    distill:\n" +
		"        allow_remote_loader: false\n"

	out := EnsureFrontendNamespace(in)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "    tailwind:", lines[1])
	assert.Equal(t, out, EnsureFrontendNamespace(out))
}

func TestEnsureFrontendNamespace_CRLFHeaderStillMatched(t *testing.T) {
	in := "frontend:\r\n" +
		"  css_engine: tailwind\r\n" +
		"  distill:\r\n" +
		"    allow_remote_loader: false\r\n"

	out := EnsureFrontendNamespace(in)
	require.NotEqual(t, in, out, "carriage returns must not disable insertion")

	lines := strings.Split(out, "\n")
	assert.Equal(t, "frontend:\r", lines[0])
	assert.Equal(t, "  tailwind:", lines[1])

	tree := parse(t, out)
	frontend := tree["frontend"].(map[string]any)
	assert.Contains(t, frontend, "tailwind")
	assert.Equal(t, "tailwind", frontend["css_engine"])
	assert.Equal(t, out, EnsureFrontendNamespace(out))
}

func TestEnsureFrontendNamespace_MalformedLeftAlone(t *testing.T) {
	in := "frontend: [broken\n"
	assert.Equal(t, in, EnsureFrontendNamespace(in))
}

func TestEnsureFrontendNamespace_ScalarFrontendLeftAlone(t *testing.T) {
	// Appending a second frontend: key would corrupt the document.
	in := "frontend: legacy\n"
	assert.Equal(t, in, EnsureFrontendNamespace(in))
}
