package checks

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sitecheck/sitecheck/internal/types"
)

// CoreIncludeFiles is the fixed set of include files scanned for legacy
// front-end runtime references. These are the only places the old stack
// was ever wired in.
var CoreIncludeFiles = []string{
	"_includes/head.html",
	"_includes/scripts.html",
	"_includes/footer.html",
}

var legacyAssetPatterns = []struct {
	re   *regexp.Regexp
	what string
}{
	{regexp.MustCompile(`(bootstrap|mdb)(\.bundle)?\.min\.js`), "bundled minified UI framework script"},
	{regexp.MustCompile(`jquery\.[\w.-]+\.js`), "jQuery plugin script"},
	{regexp.MustCompile(`main\.bundle\.js`), "legacy bundled site script"},
}

// LegacyAssetReferences flags script references to the retired front-end
// runtime in the core include files. Every matching line blocks the
// upgrade: these scripts are removed by the new asset pipeline.
type LegacyAssetReferences struct{}

func (c *LegacyAssetReferences) ID() string { return "legacy_asset_references" }

func (c *LegacyAssetReferences) Description() string {
	return "Core includes are free of legacy runtime scripts"
}

func (c *LegacyAssetReferences) Run(env *Env) []types.Finding {
	var findings []types.Finding
	for _, rel := range CoreIncludeFiles {
		data, err := os.ReadFile(filepath.Join(env.Root, rel))
		if err != nil {
			continue
		}
		for i, line := range strings.Split(string(data), "\n") {
			for _, p := range legacyAssetPatterns {
				if p.re.MatchString(line) {
					findings = append(findings, types.Finding{
						ID:       types.FindingLegacyAssetReference,
						Severity: types.SeverityBlocking,
						Message:  "references a " + p.what,
						File:     rel,
						Line:     i + 1,
						Snippet:  strings.TrimSpace(line),
					})
					break // one finding per matching line
				}
			}
		}
	}
	return findings
}
