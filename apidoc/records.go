package apidoc

import (
	"encoding/json"
	"fmt"
)

// Endpoint represents one documented API operation.
type Endpoint struct {
	// Type is the documented HTTP method (e.g., "get", "post")
	Type string `yaml:"type" json:"type"`
	// URL is the route template with colon-style parameters (e.g., "/users/:id")
	URL string `yaml:"url" json:"url"`
	// Title is a one-line summary of the operation
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	// Name is the documented endpoint name, unique within its group
	Name string `yaml:"name" json:"name"`
	// Group is the documentation group the endpoint belongs to
	Group string `yaml:"group" json:"group"`
	// Version is the documented endpoint version (e.g., "1.0.0")
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Deprecated is non-nil when the endpoint is marked deprecated
	Deprecated *Deprecation `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Header holds documented request header fields
	Header *FieldGroup `yaml:"header,omitempty" json:"header,omitempty"`
	// Parameter holds documented request parameters, including the
	// distinguished "URI Parameter" sub-group for path parameters
	Parameter *FieldGroup `yaml:"parameter,omitempty" json:"parameter,omitempty"`
	// Success holds response field groups keyed by label (e.g., "Success 200")
	Success *FieldGroup `yaml:"success,omitempty" json:"success,omitempty"`
	// Error holds response field groups keyed by label (e.g., "Error 4xx")
	Error *FieldGroup `yaml:"error,omitempty" json:"error,omitempty"`
}

// FieldGroup holds documented fields grouped by label. Request parameters
// usually live under "Parameter" (path parameters under "URI Parameter"),
// response fields under labels like "Success 200" or "Error 4xx".
type FieldGroup struct {
	Fields map[string][]Field `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Field represents one documented parameter or response field.
type Field struct {
	// Group is the label of the group the field was documented under
	// (e.g., "Parameter", "Header", "Success 200")
	Group string `yaml:"group,omitempty" json:"group,omitempty"`
	// Type is the declared type: a scalar name ("String", "Number"), the
	// literal "Object", or a scalar name with the "[]" array suffix
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	// Optional is true when the field is not required at its nesting level
	Optional bool `yaml:"optional,omitempty" json:"optional,omitempty"`
	// Field is the dot-delimited field path (e.g., "address.city")
	Field       string `yaml:"field" json:"field"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Size is an optional size constraint of the form "min..max"
	Size string `yaml:"size,omitempty" json:"size,omitempty"`
	// AllowedValues is an optional list of allowed value literals
	AllowedValues []string `yaml:"allowedValues,omitempty" json:"allowedValues,omitempty"`
	// DefaultValue is the documented default, carried as written
	DefaultValue string `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
}

// IsDirect reports whether the field path contains no dot, i.e. the field
// is not nested under another field in its group.
func (f Field) IsDirect() bool {
	for i := 0; i < len(f.Field); i++ {
		if f.Field[i] == '.' {
			return false
		}
	}
	return true
}

// Deprecation marks an endpoint as deprecated. Documentation parsers emit
// either a bare boolean or an object carrying replacement advice, so the
// type accepts both shapes.
type Deprecation struct {
	// Content is the optional deprecation note (e.g., "use GetUser instead")
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

// UnmarshalJSON accepts true/false, a bare string, or {"content": "..."}.
func (d *Deprecation) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*d = Deprecation{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Deprecation{Content: s}
		return nil
	}

	var obj struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("deprecated marker must be a boolean, string, or object: %w", err)
	}
	*d = Deprecation{Content: obj.Content}
	return nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON for YAML input.
func (d *Deprecation) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		*d = Deprecation{}
		return nil
	}

	var s string
	if err := unmarshal(&s); err == nil {
		*d = Deprecation{Content: s}
		return nil
	}

	var obj struct {
		Content string `yaml:"content"`
	}
	if err := unmarshal(&obj); err != nil {
		return fmt.Errorf("deprecated marker must be a boolean, string, or object: %w", err)
	}
	*d = Deprecation{Content: obj.Content}
	return nil
}

// Project holds the project metadata used to populate the generated
// document's info and servers members.
type Project struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	// URL is the base URL the documented API is served from
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
	// SampleURL is the base URL used for sample requests, if any
	SampleURL string `yaml:"sampleUrl,omitempty" json:"sampleUrl,omitempty"`
}
