package oas

// Schema is the recursive type descriptor for a documented field: an
// object (properties + required), an array (items), or a scalar (type
// plus optional constraints).
type Schema struct {
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// Scalar constraints.
	// MaxLength is carried as the literal text of the size constraint's
	// upper bound ("4..20" yields "20"); it is not parsed as a number.
	MaxLength string `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Enum      []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Array members.
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Object members.
	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string           `yaml:"required,omitempty" json:"required,omitempty"`
}

// Scalar type names emitted by schema inference.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// NewObjectSchema returns an object schema with an initialized, empty
// properties map.
func NewObjectSchema() *Schema {
	return &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema),
	}
}

// AddProperty stores a property schema under name and appends name to the
// required list unless optional.
func (s *Schema) AddProperty(name string, prop *Schema, optional bool) {
	if s.Properties == nil {
		s.Properties = make(map[string]*Schema)
	}
	s.Properties[name] = prop
	if !optional {
		s.Required = append(s.Required, name)
	}
}
