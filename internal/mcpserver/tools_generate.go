package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/generator"
	"github.com/erraggy/apidoc2oas/merger"
)

type generateInput struct {
	Data       artifactInput `json:"data"                  jsonschema:"The endpoint records artifact (api_data.json)"`
	Project    artifactInput `json:"project,omitempty"     jsonschema:"The project metadata artifact (api_project.json)"`
	Template   string        `json:"template,omitempty"    jsonschema:"Path to a base document the generated members are merged onto"`
	Strict     bool          `json:"strict,omitempty"      jsonschema:"Fail generation on any warning"`
	NoWarnings bool          `json:"no_warnings,omitempty" jsonschema:"Suppress warnings and info messages from the result"`
	Format     string        `json:"format,omitempty"      jsonschema:"Output encoding: yaml (default) or json"`
	Output     string        `json:"output,omitempty"      jsonschema:"File path to write the generated document. If omitted the document is returned inline."`
}

type generateIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint,omitempty"`
}

type generateOutput struct {
	Success       bool            `json:"success"`
	EndpointCount int             `json:"endpoint_count"`
	SkippedCount  int             `json:"skipped_count"`
	IssueCount    int             `json:"issue_count"`
	Issues        []generateIssue `json:"issues,omitempty"`
	WrittenTo     string          `json:"written_to,omitempty"`
	Document      string          `json:"document,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	format, err := normalizeFormat(input.Format)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	p := apidoc.NewParser()
	endpoints, err := input.Data.resolveEndpoints(p)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	var project apidoc.Project
	if input.Project.isSet() {
		proj, err := input.Project.resolveProject(p)
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		project = *proj
	}

	g := generator.New()
	g.StrictMode = input.Strict
	g.IncludeInfo = !input.NoWarnings

	result, genErr := g.Generate(endpoints, project)
	if genErr != nil && result == nil {
		return errResult(genErr), generateOutput{}, nil
	}

	output := generateOutput{
		Success:       result.Success,
		EndpointCount: result.EndpointCount,
		SkippedCount:  result.SkippedCount,
		IssueCount:    len(result.Issues),
	}
	output.Issues = makeSlice[generateIssue](len(result.Issues))
	for _, issue := range result.Issues {
		if input.NoWarnings && issue.Severity != generator.SeverityError {
			continue
		}
		gi := generateIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		}
		if issue.Endpoint != nil {
			gi.Endpoint = issue.Endpoint.String()
		}
		output.Issues = append(output.Issues, gi)
	}

	if genErr != nil {
		// Strict mode failed; report the issues without a document.
		return errResult(genErr), output, nil
	}

	var document any = result.Document
	if input.Template != "" {
		template, err := merger.LoadTemplate(input.Template)
		if err != nil {
			return errResult(err), output, nil
		}
		merged, err := merger.MergeDocument(template, result.Document)
		if err != nil {
			return errResult(err), output, nil
		}
		document = merged
	}

	data, err := encodeDocument(document, format)
	if err != nil {
		return errResult(err), output, nil
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), output, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

// normalizeFormat validates the requested output encoding, defaulting to
// YAML when unset.
func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return "yaml", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("invalid format %q; valid values: yaml, json", format)
	}
}

// encodeDocument marshals the document (or merged mapping) in the
// requested encoding.
func encodeDocument(document any, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode document as JSON: %w", err)
		}
		return data, nil
	default:
		data, err := yaml.Marshal(document)
		if err != nil {
			return nil, fmt.Errorf("failed to encode document as YAML: %w", err)
		}
		return data, nil
	}
}
