package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	tree, exists, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, tree)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "title: [unclosed\n")

	_, exists, err := Load(dir)
	assert.True(t, exists)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoad_ToleratesDynamicScalars(t *testing.T) {
	// Bare dates, booleans, and integers all appear in real site configs.
	dir := writeConfig(t, `
title: My Site
launch_date: 2026-01-01
draft: false
port: 4000
frontend:
  css_engine: tailwind
`)

	tree, exists, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "tailwind", tree.Map("frontend").Str("css_engine"))
}

func TestTree_Navigation(t *testing.T) {
	dir := writeConfig(t, `
frontend:
  css_engine: tailwind
  distill:
    allow_remote_loader: true
plugins:
  - jekyll-feed
  - jekyll-theme-core
theme: 42
`)

	tree, _, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, tree.Map("frontend").Map("distill").Bool("allow_remote_loader"))
	assert.Equal(t, []string{"jekyll-feed", "jekyll-theme-core"}, tree.List("plugins"))

	// Wrong-typed and absent values degrade to zero values, never panic.
	assert.Equal(t, "", tree.Str("theme"))
	assert.Nil(t, tree.Map("missing"))
	assert.Equal(t, "", tree.Map("missing").Str("also_missing"))
	assert.False(t, tree.Map("frontend").Bool("css_engine"))
}
