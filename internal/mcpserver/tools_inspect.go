package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/generator"
)

type inspectInput struct {
	Data    artifactInput `json:"data"              jsonschema:"The endpoint records artifact (api_data.json)"`
	Project artifactInput `json:"project,omitempty" jsonschema:"The project metadata artifact (api_project.json)"`
}

type inspectGroup struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type inspectOutput struct {
	ProjectTitle    string          `json:"project_title,omitempty"`
	ProjectVersion  string          `json:"project_version,omitempty"`
	EndpointCount   int             `json:"endpoint_count"`
	DeprecatedCount int             `json:"deprecated_count"`
	Groups          []inspectGroup  `json:"groups,omitempty"`
	Methods         []inspectGroup  `json:"methods,omitempty"`
	Problems        []generateIssue `json:"problems,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	p := apidoc.NewParser()
	endpoints, err := input.Data.resolveEndpoints(p)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{EndpointCount: len(endpoints)}

	var project apidoc.Project
	if input.Project.isSet() {
		proj, err := input.Project.resolveProject(p)
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		project = *proj
		output.ProjectTitle = project.Title
		output.ProjectVersion = project.Version
	}

	groups := make(map[string]int)
	methods := make(map[string]int)
	for _, ep := range endpoints {
		groups[ep.Group]++
		methods[ep.Type]++
		if ep.Deprecated != nil {
			output.DeprecatedCount++
		}
	}
	output.Groups = sortedCounts(groups)
	output.Methods = sortedCounts(methods)

	// A dry-run generation surfaces the structural problems the records
	// carry: rejected endpoints, unknown types, duplicate operations.
	g := generator.New()
	g.IncludeInfo = false
	result, err := g.Generate(endpoints, project)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	output.Problems = makeSlice[generateIssue](len(result.Issues))
	for _, issue := range result.Issues {
		gi := generateIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		}
		if issue.Endpoint != nil {
			gi.Endpoint = issue.Endpoint.String()
		}
		output.Problems = append(output.Problems, gi)
	}

	return nil, output, nil
}

// sortedCounts flattens a count map into groups sorted by count
// descending, ties broken alphabetically.
func sortedCounts(counts map[string]int) []inspectGroup {
	groups := makeSlice[inspectGroup](len(counts))
	for name, count := range counts {
		groups = append(groups, inspectGroup{Name: name, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}
