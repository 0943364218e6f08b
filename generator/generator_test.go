package generator

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/apidoc2oas/apidoc"
)

func sampleEndpoints() []apidoc.Endpoint {
	return []apidoc.Endpoint{
		{
			Type:  "get",
			URL:   "/users/:id",
			Title: "Read data of a User",
			Name:  "GetUser",
			Group: "User",
			Header: &apidoc.FieldGroup{Fields: map[string][]apidoc.Field{
				"Header": {
					{Group: "Header", Field: "Authorization", Type: "String", Optional: false},
				},
			}},
			Parameter: &apidoc.FieldGroup{Fields: map[string][]apidoc.Field{
				"URI Parameter": {
					{Group: "URI Parameter", Field: "id", Type: "Number", Optional: false},
				},
			}},
			Success: &apidoc.FieldGroup{Fields: map[string][]apidoc.Field{
				"Success 200": {
					{Group: "Success 200", Field: "id", Type: "Number", Optional: false},
					{Group: "Success 200", Field: "address", Type: "Object", Optional: false},
					{Group: "Success 200", Field: "address.city", Type: "String", Optional: false},
				},
			}},
		},
		{
			Type:  "post",
			URL:   "/users",
			Title: "Create a User",
			Name:  "CreateUser",
			Group: "User",
			Parameter: &apidoc.FieldGroup{Fields: map[string][]apidoc.Field{
				"Parameter": {
					{Group: "Parameter", Field: "name", Type: "String", Optional: false, Size: "2..64"},
				},
			}},
			Success: &apidoc.FieldGroup{Fields: map[string][]apidoc.Field{
				"Success 201": {
					{Group: "Success 201", Field: "id", Type: "Number", Optional: false},
				},
			}},
		},
	}
}

func sampleProject() apidoc.Project {
	return apidoc.Project{
		Name:        "example-api",
		Title:       "Example API",
		Description: "Example",
		Version:     "1.0.0",
		URL:         "https://api.example.com/v1",
	}
}

// TestGeneratorNew tests the New() constructor
func TestGeneratorNew(t *testing.T) {
	g := New()

	if g == nil {
		t.Fatal("Expected non-nil Generator")
	}

	if g.StrictMode {
		t.Error("Expected StrictMode to be false by default")
	}

	if !g.IncludeInfo {
		t.Error("Expected IncludeInfo to be true by default")
	}

	if g.OASVersion != DefaultOASVersion {
		t.Errorf("Expected OASVersion %s, got %s", DefaultOASVersion, g.OASVersion)
	}
}

// TestGenerateDocument tests end-to-end generation from records
func TestGenerateDocument(t *testing.T) {
	g := New()
	result, err := g.Generate(sampleEndpoints(), sampleProject())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !result.Success {
		t.Errorf("Expected successful generation, got Success=false: %v", result.Issues)
	}

	if result.EndpointCount != 2 {
		t.Errorf("Expected 2 assembled endpoints, got %d", result.EndpointCount)
	}

	doc := result.Document
	if doc.OpenAPI != "3.0.3" {
		t.Errorf("Expected OpenAPI version 3.0.3, got %s", doc.OpenAPI)
	}

	if doc.Info.Title != "Example API" {
		t.Errorf("Expected info title from project metadata, got %q", doc.Info.Title)
	}

	if len(doc.Servers) != 1 || doc.Servers[0].URL != "https://api.example.com/v1" {
		t.Errorf("Expected one server from project url, got %+v", doc.Servers)
	}

	if len(doc.Paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d", len(doc.Paths))
	}

	get := doc.Paths["/users/{id}"].Get
	if get == nil {
		t.Fatal("Expected GET operation at /users/{id}")
	}
	if get.OperationID != "User.GetUser" {
		t.Errorf("Expected operationId User.GetUser, got %s", get.OperationID)
	}
	if len(get.Parameters) != 2 {
		t.Errorf("Expected 2 parameters (path + header), got %d", len(get.Parameters))
	}
	if get.RequestBody != nil {
		t.Error("Expected no requestBody on the GET operation")
	}
	if _, ok := get.Responses["200"]; !ok {
		t.Error("Expected a 200 response")
	}

	post := doc.Paths["/users"].Post
	if post == nil {
		t.Fatal("Expected POST operation at /users")
	}
	if post.RequestBody == nil {
		t.Fatal("Expected a requestBody on the POST operation")
	}
	body := post.RequestBody.Content["application/json"].Schema
	if body.Properties["name"].MaxLength != "64" {
		t.Errorf("Expected maxLength \"64\", got %q", body.Properties["name"].MaxLength)
	}

	// The extension points are present but empty.
	if doc.Components == nil || doc.Tags == nil || doc.Security == nil || doc.ExternalDocs == nil {
		t.Error("Expected components/tags/security/externalDocs stubs to be present")
	}
}

// TestGenerateInvalidEndpointRejected tests structural validation
func TestGenerateInvalidEndpointRejected(t *testing.T) {
	endpoints := []apidoc.Endpoint{
		{Type: "get", URL: "/ok", Title: "ok", Name: "Ok", Group: "G"},
		{Type: "get", Title: "missing url", Name: "Bad", Group: "G"},
		{Type: "fetch", URL: "/bad-method", Title: "bad", Name: "BadMethod", Group: "G"},
	}

	g := New()
	result, err := g.Generate(endpoints, sampleProject())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.Success {
		t.Error("Expected Success=false when records are rejected")
	}
	if result.EndpointCount != 1 {
		t.Errorf("Expected 1 assembled endpoint, got %d", result.EndpointCount)
	}
	if result.SkippedCount != 2 {
		t.Errorf("Expected 2 skipped endpoints, got %d", result.SkippedCount)
	}
	if result.ErrorCount != 2 {
		t.Errorf("Expected 2 error issues, got %d", result.ErrorCount)
	}
	if len(result.Document.Paths) != 1 {
		t.Errorf("Expected rejected records to produce no paths, got %d", len(result.Document.Paths))
	}
}

// TestGenerateStrictMode tests strict-mode failure on warnings
func TestGenerateStrictMode(t *testing.T) {
	endpoints := []apidoc.Endpoint{
		{
			Type: "get", URL: "/x", Title: "x", Name: "X", Group: "G",
			Parameter: &apidoc.FieldGroup{Fields: map[string][]apidoc.Field{
				"Parameter": {{Group: "Parameter", Field: "amount", Type: "Decimal"}},
			}},
		},
	}

	g := New()
	g.StrictMode = true
	result, err := g.Generate(endpoints, sampleProject())
	if err == nil {
		t.Fatal("Expected strict mode to fail on warnings")
	}
	if !strings.Contains(err.Error(), "strict mode") {
		t.Errorf("Expected strict mode error, got: %v", err)
	}
	if result == nil {
		t.Fatal("Expected result alongside strict-mode error")
	}
	if result.WarningCount != 1 {
		t.Errorf("Expected 1 warning, got %d", result.WarningCount)
	}
}

// TestGenerateIncludeInfoFilter tests info-message filtering
func TestGenerateIncludeInfoFilter(t *testing.T) {
	endpoints := []apidoc.Endpoint{
		// No title triggers an info issue.
		{Type: "get", URL: "/x", Name: "X", Group: "G"},
	}

	g := New()
	g.IncludeInfo = false
	// No project url triggers another info issue.
	result, err := g.Generate(endpoints, apidoc.Project{Title: "t", Version: "1"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if result.InfoCount != 0 {
		t.Errorf("Expected InfoCount 0 after filtering, got %d", result.InfoCount)
	}
	for _, issue := range result.Issues {
		if issue.Severity == SeverityInfo {
			t.Errorf("Expected no info issues in filtered result, found: %v", issue)
		}
	}
}

// TestGenerateFiles tests the file-based convenience path
func TestGenerateFiles(t *testing.T) {
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "api_data.json")
	data, err := json.Marshal(sampleEndpoints())
	if err != nil {
		t.Fatalf("marshal endpoints: %v", err)
	}
	if err := os.WriteFile(dataPath, data, 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	projectPath := filepath.Join(dir, "api_project.json")
	project, err := json.Marshal(sampleProject())
	if err != nil {
		t.Fatalf("marshal project: %v", err)
	}
	if err := os.WriteFile(projectPath, project, 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}

	result, err := Generate(dataPath, projectPath)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.EndpointCount != 2 {
		t.Errorf("Expected 2 endpoints, got %d", result.EndpointCount)
	}
	if result.Document.Info.Title != "Example API" {
		t.Errorf("Expected project title, got %q", result.Document.Info.Title)
	}
}

// TestGenerateFilesWithoutProject tests generation with no project metadata
func TestGenerateFilesWithoutProject(t *testing.T) {
	dir := t.TempDir()

	dataPath := filepath.Join(dir, "api_data.json")
	data, _ := json.Marshal(sampleEndpoints())
	if err := os.WriteFile(dataPath, data, 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	g := New()
	result, err := g.GenerateFiles(dataPath, "")
	if err != nil {
		t.Fatalf("GenerateFiles failed: %v", err)
	}
	if result.Document.Info.Title != "" {
		t.Errorf("Expected empty title without project metadata, got %q", result.Document.Info.Title)
	}
	if len(result.Document.Servers) != 0 {
		t.Errorf("Expected no servers without project url, got %d", len(result.Document.Servers))
	}
}

// TestGenerateDeterministic verifies byte-identical output for the same input
func TestGenerateDeterministic(t *testing.T) {
	g := New()

	first, err := g.Generate(sampleEndpoints(), sampleProject())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := g.Generate(sampleEndpoints(), sampleProject())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	a, err := json.Marshal(first.Document)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b, err := json.Marshal(second.Document)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("Expected byte-identical documents for identical input")
	}
}
