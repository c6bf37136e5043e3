// Package gems resolves optionally-installed companion packages (themes and
// plugins shipped as Ruby gems) to their install directories.
//
// Discovery is an injected interface rather than an ambient registry probe
// so check logic stays deterministic and testable without installing real
// gems.
package gems

import (
	"os/exec"
	"strings"
	"sync"
)

// Registry resolves a gem name to its installed root directory.
type Registry interface {
	// Resolve returns the gem's install directory and true when the gem is
	// installed. A missing gem returns ("", false); resolution never
	// returns an error — lookup failures mean "not installed".
	Resolve(name string) (string, bool)
}

// Bundler probes the host Ruby package registry. It consults an in-process
// table of already-resolved gems first, then falls back to an on-demand
// `bundle info` lookup in the project directory. All failures are
// swallowed: a project without bundler, a Gemfile without the gem, and a
// broken ruby install all read as "not installed".
type Bundler struct {
	// Dir is the directory bundle runs in, normally the project root.
	Dir string

	mu     sync.Mutex
	loaded map[string]string
}

// NewBundler returns a registry probing the gem environment rooted at dir.
func NewBundler(dir string) *Bundler {
	return &Bundler{Dir: dir, loaded: make(map[string]string)}
}

// Resolve implements Registry.
func (b *Bundler) Resolve(name string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if path, ok := b.loaded[name]; ok {
		return path, path != ""
	}

	path := b.lookup(name)
	b.loaded[name] = path
	return path, path != ""
}

func (b *Bundler) lookup(name string) string {
	cmd := exec.Command("bundle", "info", "--path", name)
	cmd.Dir = b.Dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Static is a map-backed registry for tests and for environments where gem
// locations are known ahead of time.
type Static map[string]string

// Resolve implements Registry.
func (s Static) Resolve(name string) (string, bool) {
	path, ok := s[name]
	return path, ok
}

// NoOp is a registry that never resolves anything. Used when external
// package discovery is disabled.
type NoOp struct{}

// Resolve implements Registry.
func (NoOp) Resolve(string) (string, bool) { return "", false }
