// Package config loads and navigates the project's _config.yml.
//
// The document is parsed fresh by every caller that needs it; nothing is
// cached or shared between checks, so one check's tolerance for malformed
// input never masks another's.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the root configuration document, relative to the project root.
const FileName = "_config.yml"

// ErrInvalidYAML is returned when the configuration document exists but
// cannot be parsed. Callers surface it as an invalid_config_yaml finding
// rather than aborting the audit.
var ErrInvalidYAML = errors.New("invalid config yaml")

// Tree is the parsed configuration document: a nested mapping of plain
// scalars (strings, booleans, integers, timestamps), mappings, and
// sequences. yaml.v3 resolves only the safe core schema when decoding into
// an interface; documents carrying constructor tags fail to parse.
type Tree map[string]any

// Load reads and parses _config.yml under root.
//
// A missing file is not an error: callers get (nil, false, nil) and must
// treat "no config" as "no findings from this source". A file that exists
// but fails to parse returns an error wrapping ErrInvalidYAML.
func Load(root string) (Tree, bool, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var tree Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, true, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return tree, true, nil
}

// Map returns the sub-mapping at key, or nil if the key is absent or not
// a mapping.
func (t Tree) Map(key string) Tree {
	if t == nil {
		return nil
	}
	switch v := t[key].(type) {
	case map[string]any:
		return Tree(v)
	case Tree:
		return v
	default:
		return nil
	}
}

// Str returns the string value at key, or "" if absent or not a string.
func (t Tree) Str(key string) string {
	if t == nil {
		return ""
	}
	s, _ := t[key].(string)
	return s
}

// Bool returns the boolean value at key; absent or non-boolean values
// return false.
func (t Tree) Bool(key string) bool {
	if t == nil {
		return false
	}
	b, _ := t[key].(bool)
	return b
}

// List returns the sequence at key as strings, skipping non-string
// elements. Absent or non-sequence values return nil.
func (t Tree) List(key string) []string {
	if t == nil {
		return nil
	}
	seq, ok := t[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range seq {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
