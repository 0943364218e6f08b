// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import "strings"

// HTTP method constants, in the lowercase form used as Path Item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// Status code shape constants
const (
	statusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	wildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// NormalizeMethod lowercases a documented HTTP method and returns it if it is
// one of the methods an Operation can be stored under. Returns "" for anything
// else, including the empty string.
func NormalizeMethod(method string) string {
	switch m := strings.ToLower(strings.TrimSpace(method)); m {
	case MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch:
		return m
	default:
		return ""
	}
}

// ValidStatusCode checks whether a derived status code has a usable shape:
// either a numeric code in 100-599 or a wildcard pattern such as "2XX".
// Derived codes come from documentation group labels, so this is a shape
// check, not a lookup against registered codes.
func ValidStatusCode(code string) bool {
	if len(code) != statusCodeLength {
		return false
	}
	if code[0] < '1' || code[0] > '5' {
		return false
	}

	// Wildcard patterns (e.g., "2XX", "4XX")
	if code[1] == wildcardChar && code[2] == wildcardChar {
		return true
	}

	return isDigit(code[1]) && isDigit(code[2])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
