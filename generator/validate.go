package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/httputil"
)

// validateEndpoint checks the structural fields a record needs before it
// can be assembled: url, httpMethod, group, and name. Invalid records are
// reported with an error issue and rejected rather than producing a
// partial operation.
func (g *Generator) validateEndpoint(ep *apidoc.Endpoint, index int, result *GenerationResult) bool {
	recordPath := fmt.Sprintf("endpoints[%d]", index)

	var missing []string
	if ep.URL == "" {
		missing = append(missing, "url")
	}
	if ep.Type == "" {
		missing = append(missing, "type")
	}
	if ep.Group == "" {
		missing = append(missing, "group")
	}
	if ep.Name == "" {
		missing = append(missing, "name")
	}

	if len(missing) > 0 {
		g.addIssue(result, recordPath,
			fmt.Sprintf("structurally invalid endpoint record: missing %s", strings.Join(missing, ", ")),
			SeverityError, endpointContext(ep))
		return false
	}

	if httputil.NormalizeMethod(ep.Type) == "" {
		g.addIssue(result, recordPath,
			fmt.Sprintf("unsupported HTTP method %q", ep.Type),
			SeverityError, endpointContext(ep))
		return false
	}

	if ep.Title == "" {
		g.addIssue(result, recordPath,
			"endpoint has no title, operation summary will be empty",
			SeverityInfo, endpointContext(ep))
	}

	return true
}
