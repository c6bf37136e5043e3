package checks

import (
	"os"
	"path/filepath"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/types"
)

// CoreThemeOwnedFiles lists the files the core theme gem is expected to
// own. A local copy of any of them shadows the gem's version and needs
// manual reconciliation before upgrading, regardless of its content.
var CoreThemeOwnedFiles = []string{
	"_layouts/default.html",
	"_layouts/page.html",
	"_layouts/post.html",
	"_includes/head.html",
	"_includes/header.html",
	"_includes/footer.html",
	"_sass/_variables.scss",
	"_sass/_base.scss",
	"assets/css/main.scss",
}

// CoreOverrideDrift reports locally-present copies of theme-owned files.
// It only runs when the project actually uses the core theme gem.
type CoreOverrideDrift struct{}

func (c *CoreOverrideDrift) ID() string { return "core_override_drift" }

func (c *CoreOverrideDrift) Description() string {
	return "No local shadows of core-theme-owned files"
}

func (c *CoreOverrideDrift) Run(env *Env) []types.Finding {
	tree, exists, err := config.Load(env.Root)
	if !exists || err != nil {
		return nil
	}
	if !c.usesCoreTheme(tree) {
		return nil
	}

	var findings []types.Finding
	for _, rel := range CoreThemeOwnedFiles {
		if _, err := os.Stat(filepath.Join(env.Root, filepath.FromSlash(rel))); err != nil {
			continue
		}
		findings = append(findings, types.Finding{
			ID:       types.FindingCoreThemeOverride,
			Severity: types.SeverityWarning,
			Message:  "local file shadows a file owned by " + CoreThemeGem,
			File:     rel,
			Line:     1,
			Snippet:  "remove the local copy or port your changes before upgrading",
		})
	}
	return findings
}

func (c *CoreOverrideDrift) usesCoreTheme(tree config.Tree) bool {
	if tree.Str("theme") == CoreThemeGem {
		return true
	}
	for _, plugin := range tree.List("plugins") {
		if plugin == CoreThemeGem {
			return true
		}
	}
	return false
}
