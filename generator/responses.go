package generator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/httputil"
	"github.com/erraggy/apidoc2oas/oas"
)

const (
	successLabelPrefix = "Success "
	errorLabelPrefix   = "Error "
)

var codeCaser = cases.Upper(language.English)

// deriveStatusCode turns a response group label into its status-code key:
// the literal "Success "/"Error " prefix is stripped and the remainder is
// upper-cased, so "Success 200" yields "200" and "Error 4xx" yields "4XX".
func deriveStatusCode(label string) string {
	code := strings.TrimPrefix(label, successLabelPrefix)
	code = strings.TrimPrefix(code, errorLabelPrefix)
	return codeCaser.String(code)
}

// groupResponses builds the responses map from the endpoint's success and
// error field groups. Success groups are folded in first; when two groups
// derive the same status code the last write wins, surfaced as a warning.
func (g *Generator) groupResponses(ep *apidoc.Endpoint, opPath string, result *GenerationResult) oas.Responses {
	responses := oas.Responses{}
	responsesPath := opPath + ".responses"

	g.addResponseGroup(responses, ep.Success, responsesPath, result)
	g.addResponseGroup(responses, ep.Error, responsesPath, result)

	return responses
}

// addResponseGroup folds one field-group map into the responses map. A
// group with zero direct fields produces no entry at all.
func (g *Generator) addResponseGroup(responses oas.Responses, group *apidoc.FieldGroup, responsesPath string, result *GenerationResult) {
	if group == nil {
		return
	}

	for _, label := range sortedLabels(group.Fields) {
		fields := group.Fields[label]
		idx := newFieldIndex(fields)

		direct := idx.directChildren("")
		if len(direct) == 0 {
			continue
		}

		code := deriveStatusCode(label)
		if !httputil.ValidStatusCode(code) {
			g.addIssue(result, responsesPath,
				fmt.Sprintf("group label %q derives status code %q, which does not look like an HTTP status code", label, code),
				SeverityWarning, nil)
		}
		if _, exists := responses[code]; exists {
			g.addIssue(result, responsesPath,
				fmt.Sprintf("duplicate derived status code %q, the last group wins", code),
				SeverityWarning, nil)
		}

		schema := oas.NewObjectSchema()
		for _, f := range direct {
			schema.AddProperty(f.Field, g.resolveSchema(idx, f, 0, responsesPath, result), f.Optional)
		}

		responses[code] = &oas.Response{
			Description: label,
			Content: map[string]*oas.MediaType{
				oas.MediaTypeJSON: {Schema: schema},
			},
		}
	}
}
