package checks

import (
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/mod/semver"

	"github.com/sitecheck/sitecheck/internal/types"
)

// ManifestDir is the conventional directory scanned for upgrade manifests
// when no catalog collaborator is wired in.
const ManifestDir = "migrations"

// manifestNameRe matches the <from-version>_to_<to-version>.<ext> naming
// convention, e.g. 1.8.0_to_2.0.0.md or v1.8.0_to_v2.0.0.yml.
var manifestNameRe = regexp.MustCompile(`^v?(\d+\.\d+\.\d+)_to_v?(\d+\.\d+\.\d+)\.(md|ya?ml)$`)

// ManifestAvailability warns when no upgrade-manifest documents can be
// found. Manifest content is not validated here; presence is enough.
type ManifestAvailability struct{}

func (c *ManifestAvailability) ID() string { return "manifest_availability" }

func (c *ManifestAvailability) Description() string {
	return "Upgrade migration manifests are available"
}

func (c *ManifestAvailability) Run(env *Env) []types.Finding {
	if env.Catalog != nil {
		if paths := env.Catalog.ManifestPaths(); len(paths) > 0 {
			return nil
		}
	}
	if c.scanManifestDir(env.Root) > 0 {
		return nil
	}
	return []types.Finding{{
		ID:       types.FindingMissingMigrationManifests,
		Severity: types.SeverityWarning,
		Message:  "no upgrade migration manifests found; upgrade steps cannot be replayed",
		File:     ManifestDir,
		Line:     1,
		Snippet:  "expected files like " + ManifestDir + "/1.8.0_to_2.0.0.md",
	}}
}

// scanManifestDir counts well-formed manifest files under root/migrations.
// A missing directory is not an error, it counts as zero.
func (c *ManifestAvailability) scanManifestDir(root string) int {
	entries, err := os.ReadDir(filepath.Join(root, ManifestDir))
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := manifestNameRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		if semver.IsValid("v"+m[1]) && semver.IsValid("v"+m[2]) {
			count++
		}
	}
	return count
}
