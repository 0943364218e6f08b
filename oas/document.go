package oas

// Document represents a generated OpenAPI 3.x document.
//
// Components, Security, Tags, and ExternalDocs are documented extension
// points of the generated output: they are always present and initially
// empty, which is why they carry no omitempty. Callers who want to fill
// them do so through a template merged over the generated document.
type Document struct {
	OpenAPI      string                `yaml:"openapi" json:"openapi"` // Required: "3.0.x"
	Info         *Info                 `yaml:"info" json:"info"`       // Required
	Servers      []*Server             `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths                 `yaml:"paths" json:"paths"`
	Components   *Components           `yaml:"components" json:"components"`
	Security     []SecurityRequirement `yaml:"security" json:"security"`
	Tags         []*Tag                `yaml:"tags" json:"tags"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs" json:"externalDocs"`
}

// Info provides metadata about the documented API.
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version" json:"version"`
}

// Contact information for the documented API.
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// License information for the documented API.
type License struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Server represents a Server object.
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ExternalDocs allows referencing external documentation.
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
}

// SecurityRequirement lists required security schemes by name.
type SecurityRequirement map[string][]string

// Components holds reusable objects. Generated documents emit it empty;
// the maps exist so templates and downstream tooling have somewhere to
// merge shared definitions into.
type Components struct {
	Schemas         map[string]*Schema    `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	SecuritySchemes map[string]any        `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
}
