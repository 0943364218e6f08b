package oas

import "github.com/erraggy/apidoc2oas/internal/httputil"

// Operations extracts a map of all operations from a PathItem, keyed by
// lowercase HTTP method. Methods without an operation map to nil.
func (p *PathItem) Operations() map[string]*Operation {
	return map[string]*Operation{
		httputil.MethodGet:     p.Get,
		httputil.MethodPut:     p.Put,
		httputil.MethodPost:    p.Post,
		httputil.MethodDelete:  p.Delete,
		httputil.MethodOptions: p.Options,
		httputil.MethodHead:    p.Head,
		httputil.MethodPatch:   p.Patch,
	}
}

// Operation returns the operation stored under the given lowercase method,
// or nil when the method is unknown or unset.
func (p *PathItem) Operation(method string) *Operation {
	switch method {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodPatch:
		return p.Patch
	default:
		return nil
	}
}

// SetOperation stores op under the given lowercase method key.
// Returns false when the method is not one a PathItem can hold.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	switch method {
	case httputil.MethodGet:
		p.Get = op
	case httputil.MethodPut:
		p.Put = op
	case httputil.MethodPost:
		p.Post = op
	case httputil.MethodDelete:
		p.Delete = op
	case httputil.MethodOptions:
		p.Options = op
	case httputil.MethodHead:
		p.Head = op
	case httputil.MethodPatch:
		p.Patch = op
	default:
		return false
	}
	return true
}
