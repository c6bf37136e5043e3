package gems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic_Resolve(t *testing.T) {
	reg := Static{"jekyll-distill": "/gems/jekyll-distill-1.2.0"}

	path, ok := reg.Resolve("jekyll-distill")
	assert.True(t, ok)
	assert.Equal(t, "/gems/jekyll-distill-1.2.0", path)

	_, ok = reg.Resolve("jekyll-theme-core")
	assert.False(t, ok)
}

func TestNoOp_Resolve(t *testing.T) {
	_, ok := NoOp{}.Resolve("anything")
	assert.False(t, ok)
}

func TestBundler_MissingGemIsNotAnError(t *testing.T) {
	// An empty temp dir has no Gemfile; the probe must read as
	// "not installed" rather than failing.
	reg := NewBundler(t.TempDir())

	_, ok := reg.Resolve("gem-that-cannot-exist-sitecheck")
	assert.False(t, ok)

	// Second lookup hits the loaded table; still not installed.
	_, ok = reg.Resolve("gem-that-cannot-exist-sitecheck")
	assert.False(t, ok)
}
