package merger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/apidoc2oas/oas"
)

func TestMergeDisjointKeys(t *testing.T) {
	dst := map[string]any{"a": 1}
	src := map[string]any{"b": 2}

	got := Merge(dst, src)

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
}

func TestMergeSourceWinsOnCollision(t *testing.T) {
	dst := map[string]any{"openapi": "3.0.0"}
	src := map[string]any{"openapi": "3.0.3"}

	got := Merge(dst, src)

	assert.Equal(t, "3.0.3", got["openapi"])
}

func TestMergeNestedMappings(t *testing.T) {
	dst := map[string]any{
		"info": map[string]any{
			"title":   "Template",
			"contact": map[string]any{"email": "api@example.com"},
		},
	}
	src := map[string]any{
		"info": map[string]any{
			"title":   "Generated",
			"version": "1.0.0",
		},
	}

	got := Merge(dst, src)

	info := got["info"].(map[string]any)
	assert.Equal(t, "Generated", info["title"])
	assert.Equal(t, "1.0.0", info["version"])
	// Template-only members survive the merge.
	assert.Equal(t, map[string]any{"email": "api@example.com"}, info["contact"])
}

func TestMergeSequencesReplaced(t *testing.T) {
	dst := map[string]any{"tags": []any{"a", "b"}}
	src := map[string]any{"tags": []any{"c"}}

	got := Merge(dst, src)

	assert.Equal(t, []any{"c"}, got["tags"])
}

func TestMergeTypeMismatchReplaced(t *testing.T) {
	dst := map[string]any{"servers": map[string]any{"url": "x"}}
	src := map[string]any{"servers": []any{map[string]any{"url": "y"}}}

	got := Merge(dst, src)

	assert.Equal(t, src["servers"], got["servers"])
}

func TestMergeNullDoesNotErase(t *testing.T) {
	dst := map[string]any{"externalDocs": map[string]any{"url": "https://docs.example.com"}}
	src := map[string]any{"externalDocs": nil, "extra": nil}

	got := Merge(dst, src)

	assert.Equal(t, map[string]any{"url": "https://docs.example.com"}, got["externalDocs"])
	assert.Contains(t, got, "extra")
}

func TestMergeNilDestination(t *testing.T) {
	got := Merge(nil, map[string]any{"a": 1})

	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")
	content := []byte("openapi: 3.0.3\ncomponents:\n  securitySchemes:\n    bearer:\n      type: http\n      scheme: bearer\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	template, err := LoadTemplate(path)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", template["openapi"])
	components := template["components"].(map[string]any)
	assert.Contains(t, components, "securitySchemes")
}

func TestLoadTemplateMissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTemplateInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{invalid: [yaml"), 0o644))

	_, err := LoadTemplate(path)
	assert.Error(t, err)
}

func TestMergeDocument(t *testing.T) {
	template := map[string]any{
		"info": map[string]any{
			"contact": map[string]any{"email": "api@example.com"},
		},
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"bearer": map[string]any{"type": "http", "scheme": "bearer"},
			},
		},
	}

	doc := &oas.Document{
		OpenAPI: "3.0.3",
		Info:    &oas.Info{Title: "Generated API", Version: "1.0.0"},
		Paths:   oas.Paths{},
	}

	merged, err := MergeDocument(template, doc)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", merged["openapi"])

	info := merged["info"].(map[string]any)
	assert.Equal(t, "Generated API", info["title"])
	assert.Equal(t, map[string]any{"email": "api@example.com"}, info["contact"])

	// The template's security schemes survive alongside generated members.
	components := merged["components"].(map[string]any)
	assert.Contains(t, components, "securitySchemes")
}
