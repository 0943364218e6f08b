package generator

import (
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/httputil"
	"github.com/erraggy/apidoc2oas/oas"
)

const (
	// uriParameterGroup is the distinguished sub-group documented path
	// parameters live under.
	uriParameterGroup = "URI Parameter"
	// headerGroupLabel marks fields documented as request headers.
	headerGroupLabel = "Header"
)

// classifyParameters splits an endpoint's header, path, and generic
// parameter fields into Parameter Objects and an optional request-body
// schema. Every direct field lands in exactly one of the two; dotted
// child fields are never classified on their own.
//
// The returned body schema is nil when the endpoint has no body fields,
// in which case the operation must omit requestBody entirely.
func (g *Generator) classifyParameters(ep *apidoc.Endpoint, method, opPath string, result *GenerationResult) ([]*oas.Parameter, *oas.Schema) {
	params := make([]*oas.Parameter, 0)

	// Path parameters come from the "URI Parameter" sub-group,
	// unconditionally and independent of the method.
	if ep.Parameter != nil {
		uriFields := ep.Parameter.Fields[uriParameterGroup]
		idx := newFieldIndex(uriFields)
		for _, f := range idx.directChildren("") {
			params = append(params, &oas.Parameter{
				Name:        f.Field,
				In:          oas.ParamInPath,
				Description: f.Description,
				Required:    !f.Optional,
				Schema:      g.resolveSchema(idx, f, 0, opPath, result),
			})
		}
	}

	// Remaining fields classify as header, query, or body. Query is only
	// available to methods without a request body.
	queryEligible := method == httputil.MethodGet || method == httputil.MethodDelete

	var body *oas.Schema
	classify := func(fields []apidoc.Field) {
		idx := newFieldIndex(fields)
		for _, f := range idx.directChildren("") {
			switch {
			case isHeaderField(f):
				params = append(params, &oas.Parameter{
					Name:        f.Field,
					In:          oas.ParamInHeader,
					Description: f.Description,
					Required:    !f.Optional,
					Schema:      g.resolveSchema(idx, f, 0, opPath, result),
				})
			case queryEligible:
				params = append(params, &oas.Parameter{
					Name:        f.Field,
					In:          oas.ParamInQuery,
					Description: f.Description,
					Required:    !f.Optional,
					Schema:      g.resolveSchema(idx, f, 0, opPath, result),
				})
			default:
				if body == nil {
					body = oas.NewObjectSchema()
				}
				body.AddProperty(f.Field, g.resolveSchema(idx, f, 0, opPath, result), f.Optional)
			}
		}
	}

	if ep.Header != nil {
		for _, label := range sortedLabels(ep.Header.Fields) {
			classify(ep.Header.Fields[label])
		}
	}
	if ep.Parameter != nil {
		for _, label := range sortedLabels(ep.Parameter.Fields) {
			if label == uriParameterGroup {
				continue // already handled as path parameters
			}
			classify(ep.Parameter.Fields[label])
		}
	}

	return params, body
}

// isHeaderField reports whether a field's group label marks it as a
// request header.
func isHeaderField(f apidoc.Field) bool {
	return strings.EqualFold(f.Group, headerGroupLabel)
}

// sortedLabels returns the group labels in sorted order. Field groups are
// decoded into maps, so a fixed iteration order keeps the generated
// parameter list deterministic.
func sortedLabels(groups map[string][]apidoc.Field) []string {
	return slices.Sorted(maps.Keys(groups))
}
