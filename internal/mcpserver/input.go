package mcpserver

import (
	"fmt"

	"github.com/erraggy/apidoc2oas/apidoc"
)

// artifactInput represents the two ways a documentation artifact can be
// provided to a tool. Exactly one of File or Content must be set.
type artifactInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an artifact file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline artifact content (JSON or YAML)"`
}

func (a artifactInput) validate() error {
	if a.File != "" && a.Content != "" {
		return fmt.Errorf("exactly one of file or content must be provided (got both)")
	}
	if a.File == "" && a.Content == "" {
		return fmt.Errorf("exactly one of file or content must be provided (got neither)")
	}
	return nil
}

func (a artifactInput) isSet() bool {
	return a.File != "" || a.Content != ""
}

// resolveEndpoints decodes the endpoint records from whichever input was
// provided.
func (a artifactInput) resolveEndpoints(p *apidoc.Parser) ([]apidoc.Endpoint, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.File != "" {
		result, err := p.Parse(a.File)
		if err != nil {
			return nil, err
		}
		return result.Endpoints, nil
	}
	result, err := p.ParseData([]byte(a.Content))
	if err != nil {
		return nil, err
	}
	return result.Endpoints, nil
}

// resolveProject decodes the project metadata from whichever input was
// provided.
func (a artifactInput) resolveProject(p *apidoc.Parser) (*apidoc.Project, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.File != "" {
		return p.ParseProject(a.File)
	}
	return p.ParseProjectData([]byte(a.Content))
}
