// Package locator resolves the candidate-file set for checks and codemods.
package locator

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns is the ordered glob set covering everything the audit
// inspects: the config document, layouts, includes, content pages, and
// unbundled site assets. Patterns may mix plain filenames with recursive
// wildcard and brace forms.
var DefaultPatterns = []string{
	"_config.yml",
	"index.html",
	"_layouts/**/*.{html,liquid}",
	"_includes/**/*.{html,liquid}",
	"_pages/**/*.{html,md}",
	"_posts/**/*.{html,md}",
	"assets/js/**/*.js",
	"assets/css/**/*.{css,scss}",
}

// DefaultIgnores excludes vendored, minified, source-map, and
// runtime-bundled assets from scanning and rewriting. Patterns are
// regular expressions matched against the absolute path.
var DefaultIgnores = []string{
	`\.min\.(js|css)$`,
	`\.map$`,
	`/vendor/`,
	`/node_modules/`,
	`/_site/`,
	`/assets/bundled/`,
}

// Locator expands a glob-pattern set under a project root into a
// deterministic file list.
type Locator struct {
	root     string
	patterns []string
	ignores  []*regexp.Regexp
}

// New builds a Locator for root. Passing nil patterns or ignores selects
// the defaults. Ignore patterns must be valid regular expressions; the
// built-in sets are compile-time constants, so New panics only on caller
// supplied garbage.
func New(root string, patterns, ignores []string) *Locator {
	if patterns == nil {
		patterns = DefaultPatterns
	}
	if ignores == nil {
		ignores = DefaultIgnores
	}
	l := &Locator{root: root, patterns: patterns}
	for _, p := range ignores {
		l.ignores = append(l.ignores, regexp.MustCompile(p))
	}
	return l
}

// Locate returns every file matching the pattern set, sorted
// lexicographically within each pattern's expansion and deduplicated
// across patterns. Directories are skipped; paths matching any ignore
// pattern are dropped silently. Paths are returned relative to the root.
func (l *Locator) Locate() []string {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range l.patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(l.root, pattern))
		if err != nil {
			// Bad pattern expands to nothing; the glob set is fixed at
			// construction, so this only fires on caller-supplied patterns.
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				continue
			}
			if info, err := os.Stat(m); err != nil || info.IsDir() {
				continue
			}
			if l.ignored(abs) {
				continue
			}
			rel, err := filepath.Rel(l.root, m)
			if err != nil || seen[rel] {
				continue
			}
			seen[rel] = true
			out = append(out, rel)
		}
	}
	return out
}

func (l *Locator) ignored(abs string) bool {
	abs = filepath.ToSlash(abs)
	for _, re := range l.ignores {
		if re.MatchString(abs) {
			return true
		}
	}
	return false
}
