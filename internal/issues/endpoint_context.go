package issues

import "fmt"

// EndpointContext identifies the source documentation record an issue
// relates to. The route and method come from the record itself, before
// any normalization, so the user can find the offending doc block.
type EndpointContext struct {
	// Method is the documented HTTP method (may be empty for invalid records)
	Method string
	// URL is the documented route template (colon-style parameters)
	URL string
	// Group is the documentation group the endpoint belongs to
	Group string
	// Name is the documented endpoint name
	Name string
}

// String returns a formatted string representation of the endpoint context.
// Returns empty string if the context is empty.
func (c EndpointContext) String() string {
	if c.IsEmpty() {
		return ""
	}

	var primary string
	switch {
	case c.Method != "" && c.URL != "":
		primary = fmt.Sprintf("%s %s", c.Method, c.URL)
	case c.URL != "":
		primary = c.URL
	default:
		primary = fmt.Sprintf("%s.%s", c.Group, c.Name)
	}

	if c.Group != "" && c.Name != "" && primary != fmt.Sprintf("%s.%s", c.Group, c.Name) {
		return fmt.Sprintf("(%s, %s.%s)", primary, c.Group, c.Name)
	}
	return fmt.Sprintf("(%s)", primary)
}

// IsEmpty returns true if the context has no meaningful information.
func (c EndpointContext) IsEmpty() bool {
	return c.Method == "" && c.URL == "" && c.Group == "" && c.Name == ""
}
