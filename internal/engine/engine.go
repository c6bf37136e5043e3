// Package engine wires the audit checks, codemod applier, and report
// writer together behind one constructor-injected facade.
//
// An Engine holds no state across invocations: every Audit or Apply call
// is a fresh, complete re-scan of the tree. Trees are small enough that
// rescanning is cheap, and it removes a whole class of stale-state bugs.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/sitecheck/sitecheck/internal/checks"
	"github.com/sitecheck/sitecheck/internal/codemod"
	"github.com/sitecheck/sitecheck/internal/gems"
	"github.com/sitecheck/sitecheck/internal/locator"
	"github.com/sitecheck/sitecheck/internal/logging"
	"github.com/sitecheck/sitecheck/internal/report"
	"github.com/sitecheck/sitecheck/internal/types"
)

// ErrUnsafeApply is returned when a non-safe apply mode is requested.
// The command aborts before touching the filesystem.
var ErrUnsafeApply = errors.New("only --safe apply mode is supported")

// Engine audits a project tree and optionally applies safe codemods.
type Engine struct {
	root     string
	out      io.Writer
	log      *logrus.Entry
	registry gems.Registry
	catalog  checks.ManifestCatalog
	checkSet []checks.Check
	rules    []codemod.Rule
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRegistry injects the companion-gem discovery implementation.
func WithRegistry(r gems.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithCatalog injects the optional migration-catalog collaborator.
func WithCatalog(c checks.ManifestCatalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// WithLogger injects the structured logger.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) { e.log = log }
}

// New builds an Engine for the project at root, writing terminal output
// to out. Defaults: bundler-backed gem discovery, no manifest catalog,
// discarded logs.
func New(root string, out io.Writer, opts ...Option) *Engine {
	e := &Engine{
		root:     root,
		out:      out,
		log:      logging.Discard(),
		registry: gems.NewBundler(root),
		checkSet: checks.DefaultChecks(),
		rules:    codemod.DefaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) env() *checks.Env {
	return &checks.Env{
		Root:     e.root,
		Files:    locator.New(e.root, nil, nil),
		Registry: e.registry,
		Catalog:  e.catalog,
		Log:      e.log,
	}
}

// Audit runs every check in order, printing per-check progress, and
// returns the findings in production order.
func (e *Engine) Audit() []types.Finding {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	return checks.RunAll(e.env(), e.checkSet, func(c checks.Check, got []types.Finding) {
		fmt.Fprintf(e.out, "%s %s\n", cyan("→"), c.Description())
		blocking, warning := types.CountBySeverity(got)
		switch {
		case blocking > 0:
			fmt.Fprintf(e.out, "  %s %d blocking finding(s)\n", red("✗"), blocking)
		case warning > 0:
			fmt.Fprintf(e.out, "  %s %d warning(s)\n", yellow("⚠"), warning)
		default:
			fmt.Fprintf(e.out, "  %s ok\n", green("✓"))
		}
	})
}

// Apply runs the safe codemods over the tree and returns the changed
// files. Any mode other than safe is an unsupported invocation: the call
// fails before any filesystem mutation.
func (e *Engine) Apply(safe bool) ([]string, error) {
	if !safe {
		return nil, ErrUnsafeApply
	}
	applier := codemod.New(e.root, locator.New(e.root, nil, nil), e.rules, e.log)
	changed, err := applier.Apply()
	if err != nil {
		return changed, err
	}
	for _, rel := range changed {
		fmt.Fprintf(e.out, "  rewrote %s\n", rel)
	}
	return changed, nil
}

// WriteReport renders the findings to the report artifact under the
// project root, overwriting any previous report.
func (e *Engine) WriteReport(findings []types.Finding) (string, error) {
	return report.Write(e.root, findings)
}
