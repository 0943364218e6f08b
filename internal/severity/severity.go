// Package severity provides severity level constants and utilities
// for issues reported by the generator and merger packages.
//
// All three severity levels are exported by each public package that uses them:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Best-effort output that should be reviewed
//   - SeverityError: Structurally invalid input that was rejected
//
// The severity levels are ordered from most to least severe:
// Error > Warning > Info
package severity

// Severity indicates the severity level of an issue found while turning
// documentation records into an OpenAPI document.
type Severity int

const (
	// SeverityError indicates a structurally invalid input record that was
	// rejected rather than assembled into the output document.
	SeverityError Severity = iota

	// SeverityWarning indicates best-effort output, such as a permissive
	// schema emitted for an unknown declared type. The document is still
	// produced but should be reviewed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
