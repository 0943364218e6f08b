package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/httputil"
	"github.com/erraggy/apidoc2oas/oas"
)

// pathParamSigil marks a path parameter segment in documented route
// templates ("/users/:id").
const pathParamSigil = ":"

// NormalizePathKey rewrites a route template's colon-style parameters into
// brace-style parameters: "/users/:id/:postId" becomes
// "/users/{id}/{postId}". Segments without the sigil are unchanged.
func NormalizePathKey(route string) string {
	segments := strings.Split(route, "/")
	for i, segment := range segments {
		if rest, ok := strings.CutPrefix(segment, pathParamSigil); ok {
			segments[i] = "{" + rest + "}"
		}
	}
	return strings.Join(segments, "/")
}

// buildPaths folds each endpoint's operation into the document's paths
// map, keyed by normalized route and HTTP method. Invalid records are
// rejected with an error issue and skipped.
func (g *Generator) buildPaths(endpoints []apidoc.Endpoint, doc *oas.Document, result *GenerationResult) {
	for i := range endpoints {
		ep := &endpoints[i]

		if !g.validateEndpoint(ep, i, result) {
			result.SkippedCount++
			continue
		}

		method := httputil.NormalizeMethod(ep.Type)
		key := NormalizePathKey(ep.URL)
		opPath := fmt.Sprintf("paths.%s.%s", key, method)

		item := doc.Paths[key]
		if item == nil {
			item = &oas.PathItem{}
			doc.Paths[key] = item
		}

		if item.Operation(method) != nil {
			g.addIssue(result, opPath,
				fmt.Sprintf("duplicate operation for %s %s, the later record wins", method, key),
				SeverityWarning, endpointContext(ep))
		}

		op := g.buildOperation(ep, method, opPath, result)
		item.SetOperation(method, op)
		result.EndpointCount++

		g.logger().Debug("assembled operation",
			"method", method, "path", key, "operationId", op.OperationID)
	}
}

// buildOperation builds one Operation from an already-validated endpoint
// record: schemas bottom-up via classification and response grouping, the
// operation metadata around them.
func (g *Generator) buildOperation(ep *apidoc.Endpoint, method, opPath string, result *GenerationResult) *oas.Operation {
	op := &oas.Operation{
		Tags:        []string{ep.Group},
		Summary:     ep.Title,
		Description: ep.Description,
		OperationID: ep.Group + "." + ep.Name,
		Parameters:  make([]*oas.Parameter, 0),
	}

	if ep.Deprecated != nil {
		op.Deprecated = true
	}

	params, body := g.classifyParameters(ep, method, opPath, result)
	op.Parameters = params
	if body != nil {
		op.RequestBody = &oas.RequestBody{
			Content: map[string]*oas.MediaType{
				oas.MediaTypeJSON: {Schema: body},
			},
		}
	}

	op.Responses = g.groupResponses(ep, opPath, result)

	return op
}
