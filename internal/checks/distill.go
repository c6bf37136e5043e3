package checks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/types"
)

// DistillPolicy blocks loading the distill template runtime from the
// hosted URL unless _config.yml opts in via
// frontend.distill.allow_remote_loader.
//
// The runtime include is looked up at the project-local conventional path
// first, then inside the optionally-installed companion gem. A missing
// gem is never surfaced; the fallback is silent.
type DistillPolicy struct{}

func (c *DistillPolicy) ID() string { return "distill_policy" }

func (c *DistillPolicy) Description() string {
	return "Distill runtime is not loaded from the remote template URL"
}

func (c *DistillPolicy) Run(env *Env) []types.Finding {
	// Default is "remote loader not allowed"; a missing or unparseable
	// config keeps the default. The contract check owns reporting parse
	// failures.
	tree, _, err := config.Load(env.Root)
	if err == nil && tree.Map(FrontendKey).Map(DistillKey).Bool(RemoteLoaderKey) {
		return nil
	}

	local := filepath.Join(env.Root, filepath.FromSlash(DistillRuntimeFile))
	if data, err := os.ReadFile(local); err == nil {
		return c.scan(data, DistillRuntimeFile)
	}

	gemRoot, ok := env.Registry.Resolve(DistillGem)
	if !ok {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(gemRoot, filepath.FromSlash(DistillRuntimeFile)))
	if err != nil {
		return nil
	}
	return c.scan(data, DistillGem+":"+DistillRuntimeFile)
}

func (c *DistillPolicy) scan(data []byte, label string) []types.Finding {
	var findings []types.Finding
	for i, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, DistillRemoteURL) {
			findings = append(findings, types.Finding{
				ID:       types.FindingRemoteDistillLoader,
				Severity: types.SeverityBlocking,
				Message:  "loads the distill template runtime from the remote URL",
				File:     label,
				Line:     i + 1,
				Snippet:  strings.TrimSpace(line),
			})
		}
	}
	return findings
}
