package generator

import (
	"fmt"

	"github.com/erraggy/apidoc2oas/apidoc"
	"github.com/erraggy/apidoc2oas/internal/issues"
	"github.com/erraggy/apidoc2oas/internal/severity"
	"github.com/erraggy/apidoc2oas/oas"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates best-effort output that should be reviewed
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates a structurally invalid endpoint record that was rejected
	SeverityError = severity.SeverityError
)

// Issue represents a single generation issue or limitation
type Issue = issues.Issue

// EndpointContext identifies the source endpoint an issue relates to
type EndpointContext = issues.EndpointContext

// DefaultOASVersion is the OpenAPI version generated documents declare.
const DefaultOASVersion = "3.0.3"

// GenerationResult contains the results of generating an OpenAPI document
// from documented endpoint records.
type GenerationResult struct {
	// Document is the generated OpenAPI document
	Document *oas.Document
	// EndpointCount is the number of endpoint records assembled into the document
	EndpointCount int
	// SkippedCount is the number of endpoint records rejected as invalid
	SkippedCount int
	// Issues contains all generation issues grouped by severity
	Issues []Issue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of errors
	ErrorCount int
	// Success is true if generation completed without errors
	Success bool
}

// HasErrors returns true if there are any error issues
func (r *GenerationResult) HasErrors() bool {
	return r.ErrorCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerationResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Generator transforms endpoint records into an OpenAPI document
type Generator struct {
	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// OASVersion is the OpenAPI version string the document declares.
	// Defaults to DefaultOASVersion if not set.
	OASVersion string
	// Logger receives diagnostic output. Defaults to apidoc.NopLogger.
	Logger apidoc.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		StrictMode:  false,
		IncludeInfo: true,
		OASVersion:  DefaultOASVersion,
		Logger:      apidoc.NopLogger{},
	}
}

// Generate is a convenience function that reads the documentation
// artifacts from files and generates an OpenAPI document with default
// settings. It's equivalent to creating a Generator with New() and
// calling GenerateFiles().
//
// Example:
//
//	result, err := generator.Generate("doc/api_data.json", "doc/api_project.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasWarnings() {
//	    // Review warnings
//	}
func Generate(dataPath, projectPath string) (*GenerationResult, error) {
	g := New()
	return g.GenerateFiles(dataPath, projectPath)
}

// GenerateFiles reads the documentation artifacts from files and generates
// an OpenAPI document. projectPath may be empty, in which case the
// document's info block is generated from zero-valued project metadata.
func (g *Generator) GenerateFiles(dataPath, projectPath string) (*GenerationResult, error) {
	p := &apidoc.Parser{Logger: g.logger()}

	parseResult, err := p.Parse(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint records: %w", err)
	}

	var project apidoc.Project
	if projectPath != "" {
		proj, err := p.ParseProject(projectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse project metadata: %w", err)
		}
		project = *proj
	}

	return g.Generate(parseResult.Endpoints, project)
}

// Generate transforms already-decoded endpoint records into an OpenAPI
// document. Endpoints are processed in input order.
func (g *Generator) Generate(endpoints []apidoc.Endpoint, project apidoc.Project) (*GenerationResult, error) {
	result := &GenerationResult{
		Issues: make([]Issue, 0),
	}

	doc := g.newDocument(project, result)
	g.buildPaths(endpoints, doc, result)
	result.Document = doc

	g.updateCounts(result)
	result.Success = result.ErrorCount == 0

	// In strict mode, fail on any issues
	if g.StrictMode && (result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generation failed in strict mode: %d error(s), %d warning(s)",
			result.ErrorCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]Issue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// newDocument assembles the document skeleton around the paths: the info
// and servers members come from the project metadata, and the extension
// points (components, security, tags, externalDocs) are present but empty.
func (g *Generator) newDocument(project apidoc.Project, result *GenerationResult) *oas.Document {
	version := g.OASVersion
	if version == "" {
		version = DefaultOASVersion
	}

	info := &oas.Info{
		Title:       project.Title,
		Description: project.Description,
		Version:     project.Version,
	}
	if info.Title == "" {
		info.Title = project.Name
	}

	doc := &oas.Document{
		OpenAPI:      version,
		Info:         info,
		Paths:        oas.Paths{},
		Components:   &oas.Components{},
		Security:     []oas.SecurityRequirement{},
		Tags:         []*oas.Tag{},
		ExternalDocs: &oas.ExternalDocs{},
	}

	if project.URL != "" {
		doc.Servers = []*oas.Server{{URL: project.URL}}
	} else {
		g.addIssue(result, "servers", "project metadata has no url, servers list left empty", SeverityInfo, nil)
	}

	return doc
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerationResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		}
	}
}

// addIssue is a helper to add a generation issue to the result
func (g *Generator) addIssue(result *GenerationResult, path, message string, sev Severity, ep *EndpointContext) {
	result.Issues = append(result.Issues, Issue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Endpoint: ep,
	})
}

func (g *Generator) logger() apidoc.Logger {
	if g.Logger == nil {
		return apidoc.NopLogger{}
	}
	return g.Logger
}

// endpointContext captures the source record identifiers for issues.
func endpointContext(ep *apidoc.Endpoint) *EndpointContext {
	return &EndpointContext{
		Method: ep.Type,
		URL:    ep.URL,
		Group:  ep.Group,
		Name:   ep.Name,
	}
}
