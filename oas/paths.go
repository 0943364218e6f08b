package oas

// Paths holds the relative paths to the individual endpoints.
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
type PathItem struct {
	Summary     string     `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
}

// Operation describes a single API operation on a path.
//
// Parameters has no omitempty: an empty parameters list is kept in the
// generated output, while an absent request body is dropped entirely.
type Operation struct {
	Tags        []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string       `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter `yaml:"parameters" json:"parameters"`
	RequestBody *RequestBody `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   Responses    `yaml:"responses" json:"responses"`
	Deprecated  bool         `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Responses maps status codes (or wildcard patterns such as "4XX") to the
// Response objects of an operation.
type Responses map[string]*Response

// Response describes a single response from an API operation.
type Response struct {
	Description string                `yaml:"description" json:"description"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"` // "query", "header", or "path"
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content" json:"content"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
}

// MediaType provides the schema for one media type of a request or
// response body.
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}
