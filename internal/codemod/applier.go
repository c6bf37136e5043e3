// Package codemod rewrites candidate files toward the upgrade contract.
//
// Every transform is a pure function content -> content and idempotent;
// running the applier twice converges after the first pass. Files are
// rewritten only when the final content differs, so timestamps and the
// changed-file count stay honest.
package codemod

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/locator"
)

// Applier applies the ordered rule set plus the structural config
// transform across all candidate files.
type Applier struct {
	root  string
	files *locator.Locator
	rules []Rule
	log   *logrus.Entry
}

// New builds an Applier over root. The locator carries the same ignore
// list as the audit, so vendored and bundled assets are never rewritten.
func New(root string, files *locator.Locator, rules []Rule, log *logrus.Entry) *Applier {
	return &Applier{root: root, files: files, rules: rules, log: log}
}

// Apply rewrites every candidate file that the rules change and returns
// the changed paths, relative to the root, in locator order.
func (a *Applier) Apply() ([]string, error) {
	var changed []string
	for _, rel := range a.files.Locate() {
		didChange, err := a.applyFile(rel)
		if err != nil {
			return changed, fmt.Errorf("rewriting %s: %w", rel, err)
		}
		if didChange {
			a.log.WithField("file", rel).Debug("rewrote file")
			changed = append(changed, rel)
		}
	}
	return changed, nil
}

func (a *Applier) applyFile(rel string) (bool, error) {
	path := filepath.Join(a.root, rel)
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	orig := string(data)

	next := apply(orig, a.rules)
	if filepath.ToSlash(rel) == config.FileName {
		next = EnsureFrontendNamespace(next)
	}
	if next == orig {
		return false, nil
	}
	return true, os.WriteFile(path, []byte(next), fileMode(path))
}

// fileMode preserves the original permissions on rewrite.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0644
}
