package codemod

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sitecheck/sitecheck/internal/checks"
)

// Default field values for the inserted sub-namespace blocks. Existing
// structure is never overwritten, only filled in.
var (
	tailwindDefaults = [][2]string{
		{"version", `"3.4"`},
		{"minify", "true"},
		{"entry", "assets/css/tailwind.css"},
	}

	distillDefaults = [][2]string{
		{"engine", "template-v2"},
		{"source", "/assets/js/distill/template.v2.js"},
		{"allow_remote_loader", "false"},
	}
)

var frontendHeaderRe = regexp.MustCompile(`^` + checks.FrontendKey + `:\s*(#.*)?$`)

// EnsureFrontendNamespace makes sure the frontend contract namespace
// exists in the raw _config.yml text:
//
//   - namespace entirely absent: append the complete default block at the
//     end of the document
//   - namespace present but a required sub-namespace missing: insert that
//     sub-namespace's default block right after the frontend: header line,
//     indented to match the namespace's existing children
//   - sub-namespace present: left untouched regardless of its values
//
// Pure function content -> content, idempotent. Malformed documents are
// returned unchanged; the audit reports those separately.
func EnsureFrontendNamespace(content string) string {
	var tree map[string]any
	if err := yaml.Unmarshal([]byte(content), &tree); err != nil {
		return content
	}

	raw, hasKey := tree[checks.FrontendKey]
	if !hasKey {
		return appendBlock(content, defaultFrontendBlock())
	}

	frontend, ok := raw.(map[string]any)
	if !ok {
		// frontend: exists but is not a mapping. Appending a second key
		// would corrupt the document; the contract check reports this.
		return content
	}

	var missing []string
	if _, ok := frontend[checks.TailwindKey].(map[string]any); !ok {
		missing = append(missing, checks.TailwindKey)
	}
	if _, ok := frontend[checks.DistillKey].(map[string]any); !ok {
		missing = append(missing, checks.DistillKey)
	}
	if len(missing) == 0 {
		return content
	}
	return insertAfterHeader(content, missing)
}

// renderBlock lays out one sub-namespace with its fields one level deeper
// than indent.
func renderBlock(key string, fields [][2]string, indent string) string {
	lines := []string{indent + key + ":"}
	for _, f := range fields {
		lines = append(lines, indent+indent+f[0]+": "+f[1])
	}
	return strings.Join(lines, "\n")
}

func blockFor(key, indent string) string {
	if key == checks.TailwindKey {
		return renderBlock(checks.TailwindKey, tailwindDefaults, indent)
	}
	return renderBlock(checks.DistillKey, distillDefaults, indent)
}

func defaultFrontendBlock() string {
	return checks.FrontendKey + ":\n" +
		"  " + checks.CSSEngineKey + ": " + checks.RequiredEngine + "\n" +
		blockFor(checks.TailwindKey, "  ") + "\n" +
		blockFor(checks.DistillKey, "  ") + "\n"
}

func appendBlock(content, block string) string {
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + block
}

// insertAfterHeader places the missing sub-namespace blocks immediately
// after the top-level frontend: header line, indented like the mapping's
// first existing child so the new blocks become siblings of the existing
// keys, leaving everything else byte-identical. A flow-style mapping
// (frontend: {...}) has no header line of its own, and a header whose
// child indentation cannot be determined is left alone; in both cases the
// audit keeps flagging the gap.
func insertAfterHeader(content string, missing []string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !frontendHeaderRe.MatchString(strings.TrimSuffix(line, "\r")) {
			continue
		}
		indent := childIndent(lines[i+1:])
		if indent == "" {
			return content
		}
		var blocks []string
		for _, key := range missing {
			blocks = append(blocks, blockFor(key, indent))
		}
		inserted := append([]string{}, lines[:i+1]...)
		inserted = append(inserted, blocks...)
		inserted = append(inserted, lines[i+1:]...)
		return strings.Join(inserted, "\n")
	}
	return content
}

// childIndent returns the leading whitespace of the first child line
// below the frontend: header, skipping blanks and comments. An empty
// return means no indented child was found.
func childIndent(rest []string) string {
	for _, line := range rest {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		return indent
	}
	return ""
}
