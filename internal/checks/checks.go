// Package checks implements the upgrade-audit check set.
//
// Each check is a pure function of the file tree and configuration
// document: it consumes the shared Env, produces zero or more findings,
// and never returns an error. A check that cannot complete emits a
// finding (or nothing) and returns normally, so one check's missing or
// malformed input never prevents the others from running.
package checks

import (
	"github.com/sirupsen/logrus"

	"github.com/sitecheck/sitecheck/internal/gems"
	"github.com/sitecheck/sitecheck/internal/locator"
	"github.com/sitecheck/sitecheck/internal/types"
)

// Conventional names of the external packages and files the checks know
// about.
const (
	// CoreThemeGem owns the layout and styling files a core-themed site
	// inherits rather than carries locally.
	CoreThemeGem = "jekyll-theme-core"

	// DistillGem is the companion plugin that can ship the distill
	// runtime include when the project does not carry it locally.
	DistillGem = "jekyll-distill"

	// DistillRuntimeFile is the fixed include that loads the distill
	// template runtime.
	DistillRuntimeFile = "_includes/distill.liquid"

	// DistillRemoteURL is the hosted template loader that the policy
	// check forbids unless the config opts in.
	DistillRemoteURL = "https://distill.pub/template.v2.js"
)

// ManifestCatalog is the optional external migration-catalog collaborator.
// A nil catalog is not an error; the manifest check falls back to scanning
// the migrations/ directory.
type ManifestCatalog interface {
	// ManifestPaths lists available upgrade-manifest documents.
	ManifestPaths() []string
}

// Env carries everything a check may consume. It is built fresh per
// command invocation; checks hold no state across runs.
type Env struct {
	// Root is the project root; all reported paths are relative to it.
	Root string

	// Files locates candidate files for tree-wide scans.
	Files *locator.Locator

	// Registry resolves optionally-installed companion gems.
	Registry gems.Registry

	// Catalog is the optional migration-catalog hook, may be nil.
	Catalog ManifestCatalog

	// Log receives debug traces.
	Log *logrus.Entry
}

// Check is one audit rule.
type Check interface {
	// ID returns the unique identifier for this check.
	ID() string

	// Description returns a one-line summary for the terminal runner.
	Description() string

	// Run inspects the project and returns findings. Run never panics
	// and never aborts the audit; unreadable optional inputs contribute
	// zero findings.
	Run(env *Env) []types.Finding
}

// DefaultChecks returns the full check set in its fixed execution order.
// Finding order in the report follows this order, so it must stay stable.
func DefaultChecks() []Check {
	return []Check{
		&ManifestAvailability{},
		&ConfigContract{},
		&LegacyAssetReferences{},
		&LegacyInlinePatterns{},
		&DistillPolicy{},
		&CoreOverrideDrift{},
	}
}

// RunAll executes every check in order and concatenates the findings.
// observe, when non-nil, is called with each check and its results as
// the run progresses; callers layer progress output over it.
func RunAll(env *Env, set []Check, observe func(Check, []types.Finding)) []types.Finding {
	var findings []types.Finding
	for _, c := range set {
		got := c.Run(env)
		env.Log.WithFields(logrus.Fields{
			"check":    c.ID(),
			"findings": len(got),
		}).Debug("check complete")
		if observe != nil {
			observe(c, got)
		}
		findings = append(findings, got...)
	}
	return findings
}
