package apidoc

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// Parser decodes documentation-parser artifacts into typed records.
// The zero value is usable; NewParser sets the default logger.
type Parser struct {
	// Logger receives diagnostic output. Defaults to NopLogger.
	Logger Logger
}

// NewParser creates a new Parser with default settings.
func NewParser() *Parser {
	return &Parser{Logger: NopLogger{}}
}

// ParseResult contains the decoded endpoint records.
type ParseResult struct {
	// Endpoints is the ordered list of documented endpoints
	Endpoints []Endpoint
	// SourcePath is the artifact the records were read from ("" for readers)
	SourcePath string
}

// Parse reads and decodes an api_data artifact from a file.
// Both JSON and YAML encodings are accepted.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("apidoc: failed to read %s: %w", path, err)
	}

	result, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("apidoc: %s: %w", path, err)
	}
	result.SourcePath = path
	return result, nil
}

// ParseReader decodes an api_data artifact from a reader.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("apidoc: failed to read input: %w", err)
	}
	return p.ParseData(data)
}

// ParseData decodes an api_data artifact from raw bytes.
func (p *Parser) ParseData(data []byte) (*ParseResult, error) {
	var endpoints []Endpoint
	if err := yaml.Unmarshal(data, &endpoints); err != nil {
		return nil, fmt.Errorf("failed to decode endpoint records: %w", err)
	}

	p.logger().Debug("decoded endpoint records", "count", len(endpoints))
	return &ParseResult{Endpoints: endpoints}, nil
}

// ParseProject reads and decodes an api_project artifact from a file.
func (p *Parser) ParseProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("apidoc: failed to read %s: %w", path, err)
	}

	project, err := p.ParseProjectData(data)
	if err != nil {
		return nil, fmt.Errorf("apidoc: %s: %w", path, err)
	}
	return project, nil
}

// ParseProjectData decodes an api_project artifact from raw bytes.
func (p *Parser) ParseProjectData(data []byte) (*Project, error) {
	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project metadata: %w", err)
	}
	return &project, nil
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}
