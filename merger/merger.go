package merger

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/erraggy/apidoc2oas/oas"
)

// LoadTemplate reads a YAML (or JSON) template document from path into a
// generic mapping suitable for Merge.
func LoadTemplate(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	var template map[string]any
	if err := yaml.Unmarshal(data, &template); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return template, nil
}

// Merge deep-merges src into dst and returns dst. Nested mappings merge
// key by key; on collisions src wins. Sequences and scalars are treated
// as leaves and replaced wholesale. dst may be nil.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}

	for key, srcVal := range src {
		if srcVal == nil {
			// A null member never erases template content.
			if _, exists := dst[key]; exists {
				continue
			}
		}
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = Merge(dstMap, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}

// MergeDocument overlays a generated document onto a template mapping.
// The document is round-tripped through YAML so its members merge with
// the template's generic structure; generated members win on collision.
func MergeDocument(template map[string]any, doc *oas.Document) (map[string]any, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generated document: %w", err)
	}

	var generated map[string]any
	if err := yaml.Unmarshal(data, &generated); err != nil {
		return nil, fmt.Errorf("failed to decode generated document: %w", err)
	}

	return Merge(template, generated), nil
}
