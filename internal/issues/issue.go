// Package issues provides a unified issue type for problems found while
// generating OpenAPI documents from documentation records.
package issues

import (
	"fmt"

	"github.com/erraggy/apidoc2oas/internal/severity"
)

// Issue represents a single problem found during generation or merging.
type Issue struct {
	// Path is the JSON path to the problematic output member
	// (e.g., "paths./users/{id}.get.responses")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the documented field name the issue relates to (optional)
	Field string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
	// Endpoint provides the source endpoint context when the issue relates
	// to a single documented endpoint. Nil when not applicable.
	Endpoint *EndpointContext
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	pathWithContext := i.Path
	if i.Endpoint != nil && !i.Endpoint.IsEmpty() {
		pathWithContext = fmt.Sprintf("%s %s", i.Path, i.Endpoint.String())
	}

	result := fmt.Sprintf("%s %s: %s", symbol, pathWithContext, i.Message)

	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}

	return result
}
