package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/oas"
)

const (
	// objectTypeName is the exact declared type of an object field.
	// Matching is case-sensitive: "object" is an (unknown) scalar name.
	objectTypeName = "Object"
	// arraySuffix marks an array declaration ("Number[]").
	arraySuffix = "[]"
	// sizeSeparator splits a size constraint into its bounds ("4..20").
	sizeSeparator = ".."
	// maxSchemaDepth caps schema recursion. Well-formed records cannot
	// self-reference, but malformed input must fail safely instead of
	// looping.
	maxSchemaDepth = 32
)

// knownScalarTypes are the declared type names (lowercased) that schema
// inference accepts. Anything else is surfaced as a warning and emitted
// as a permissive untyped schema.
var knownScalarTypes = map[string]bool{
	oas.TypeBoolean: true,
	oas.TypeInteger: true,
	oas.TypeNumber:  true,
	oas.TypeString:  true,
	oas.TypeObject:  true,
}

// fieldIndex groups a flat dot-path field list by parent path, so direct
// children are found with a map lookup instead of re-scanning the sibling
// list at every recursive call. Roots live under the "" key; input order
// is preserved within each parent.
type fieldIndex struct {
	children map[string][]apidoc.Field
}

func newFieldIndex(fields []apidoc.Field) *fieldIndex {
	idx := &fieldIndex{children: make(map[string][]apidoc.Field, len(fields))}
	for _, f := range fields {
		parent := ""
		if i := strings.LastIndex(f.Field, "."); i >= 0 {
			parent = f.Field[:i]
		}
		idx.children[parent] = append(idx.children[parent], f)
	}
	return idx
}

// directChildren returns the fields nested exactly one level under parent.
// Pass "" for the group's direct (un-nested) fields.
func (idx *fieldIndex) directChildren(parent string) []apidoc.Field {
	return idx.children[parent]
}

// resolveSchema builds the Schema Object for one field, using idx as the
// sibling context of the field's group.
func (g *Generator) resolveSchema(idx *fieldIndex, f apidoc.Field, depth int, opPath string, result *GenerationResult) *oas.Schema {
	if depth > maxSchemaDepth {
		g.addIssue(result, opPath,
			fmt.Sprintf("schema nesting for field %q exceeds %d levels, emitting a permissive schema", f.Field, maxSchemaDepth),
			SeverityWarning, nil)
		return &oas.Schema{}
	}

	switch {
	case f.Type == objectTypeName:
		schema := oas.NewObjectSchema()
		for _, child := range idx.directChildren(f.Field) {
			name := strings.TrimPrefix(child.Field, f.Field+".")
			schema.AddProperty(name, g.resolveSchema(idx, child, depth+1, opPath, result), child.Optional)
		}
		return schema

	case strings.HasSuffix(f.Type, arraySuffix):
		element := f
		element.Type = strings.TrimSuffix(f.Type, arraySuffix)
		return &oas.Schema{
			Type:  oas.TypeArray,
			Items: g.resolveSchema(idx, element, depth+1, opPath, result),
		}

	default:
		return g.scalarSchema(f, opPath, result)
	}
}

// scalarSchema builds the schema for a scalar declared type, carrying the
// documented constraints through.
func (g *Generator) scalarSchema(f apidoc.Field, opPath string, result *GenerationResult) *oas.Schema {
	name := strings.ToLower(f.Type)
	if !knownScalarTypes[name] {
		g.addIssue(result, opPath,
			fmt.Sprintf("unknown declared type %q for field %q, emitting a permissive schema", f.Type, f.Field),
			SeverityWarning, nil)
		return &oas.Schema{}
	}

	schema := &oas.Schema{Type: name}

	if name == oas.TypeString && f.Size != "" {
		if _, upper, ok := strings.Cut(f.Size, sizeSeparator); ok {
			// The upper bound is carried as literal text, not parsed.
			schema.MaxLength = upper
		}
	}

	if len(f.AllowedValues) > 0 {
		schema.Enum = make([]any, len(f.AllowedValues))
		for i, v := range f.AllowedValues {
			schema.Enum[i] = v
		}
	}

	return schema
}
