package checks

import (
	"fmt"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/types"
)

// Contract namespace keys and the required style-engine value.
const (
	FrontendKey     = "frontend"
	CSSEngineKey    = "css_engine"
	RequiredEngine  = "tailwind"
	TailwindKey     = "tailwind"
	DistillKey      = "distill"
	RemoteLoaderKey = "allow_remote_loader"
)

// ConfigContract validates the frontend namespace of _config.yml against
// the upgrade contract. The four sub-checks are independent: a missing
// namespace does not suppress the engine or sub-namespace checks, so one
// report surfaces every contract gap at once.
type ConfigContract struct{}

func (c *ConfigContract) ID() string { return "config_contract" }

func (c *ConfigContract) Description() string {
	return "_config.yml matches the frontend upgrade contract"
}

func (c *ConfigContract) Run(env *Env) []types.Finding {
	tree, exists, err := config.Load(env.Root)
	if !exists {
		// No config means no findings from this source.
		return nil
	}
	if err != nil {
		return []types.Finding{{
			ID:       types.FindingInvalidConfigYAML,
			Severity: types.SeverityBlocking,
			Message:  "cannot parse " + config.FileName,
			File:     config.FileName,
			Line:     1,
			Snippet:  err.Error(),
		}}
	}

	var findings []types.Finding
	frontend := tree.Map(FrontendKey)

	if frontend == nil {
		findings = append(findings, types.Finding{
			ID:       types.FindingMissingFrontendNamespace,
			Severity: types.SeverityBlocking,
			Message:  fmt.Sprintf("%s has no %q mapping", config.FileName, FrontendKey),
			File:     config.FileName,
			Line:     1,
			Snippet:  FrontendKey + ": (absent)",
		})
	}

	if engine := frontend.Str(CSSEngineKey); engine != RequiredEngine {
		findings = append(findings, types.Finding{
			ID:       types.FindingWrongCSSEngine,
			Severity: types.SeverityBlocking,
			Message:  fmt.Sprintf("%s.%s must be %q", FrontendKey, CSSEngineKey, RequiredEngine),
			File:     config.FileName,
			Line:     1,
			Snippet:  fmt.Sprintf("%s: %q", CSSEngineKey, engine),
		})
	}

	if frontend.Map(TailwindKey) == nil {
		findings = append(findings, types.Finding{
			ID:       types.FindingMissingTailwindNamespace,
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("%s.%s mapping is missing", FrontendKey, TailwindKey),
			File:     config.FileName,
			Line:     1,
			Snippet:  TailwindKey + ": (absent)",
		})
	}

	if frontend.Map(DistillKey) == nil {
		findings = append(findings, types.Finding{
			ID:       types.FindingMissingDistillNamespace,
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("%s.%s mapping is missing", FrontendKey, DistillKey),
			File:     config.FileName,
			Line:     1,
			Snippet:  DistillKey + ": (absent)",
		})
	}

	return findings
}
