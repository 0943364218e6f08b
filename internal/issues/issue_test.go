package issues

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/apidoc2oas/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string // Strings that must be present in output
		notContains []string // Strings that must NOT be present in output
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "endpoints[3]",
				Message:  "missing url",
				Severity: severity.SeverityError,
			},
			contains: []string{
				"✗",
				"endpoints[3]",
				"missing url",
			},
			notContains: []string{"Context:"},
		},
		{
			name: "warning severity with basic fields",
			issue: Issue{
				Path:     "paths./users/{id}.get",
				Message:  "unknown declared type \"Decimal\"",
				Severity: severity.SeverityWarning,
			},
			contains: []string{
				"⚠",
				"paths./users/{id}.get",
				"unknown declared type",
			},
		},
		{
			name: "info severity with basic fields",
			issue: Issue{
				Path:     "servers",
				Message:  "project metadata has no url, servers list left empty",
				Severity: severity.SeverityInfo,
			},
			contains: []string{"ℹ", "servers"},
		},
		{
			name: "issue with context",
			issue: Issue{
				Path:     "paths./orders.post.responses",
				Message:  "duplicate derived status code \"200\"",
				Severity: severity.SeverityWarning,
				Context:  "the last group wins",
			},
			contains: []string{"⚠", "Context: the last group wins"},
		},
		{
			name: "issue with endpoint context",
			issue: Issue{
				Path:     "paths./users/{id}.get",
				Message:  "something",
				Severity: severity.SeverityError,
				Endpoint: &EndpointContext{Method: "get", URL: "/users/:id", Group: "User", Name: "GetUser"},
			},
			contains: []string{"get /users/:id", "User.GetUser"},
		},
		{
			name: "unknown severity uses question mark",
			issue: Issue{
				Path:     "x",
				Message:  "y",
				Severity: severity.Severity(99),
			},
			contains: []string{"?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.issue.String()
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(got, want), "output %q should contain %q", got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.False(t, strings.Contains(got, unwanted), "output %q should not contain %q", got, unwanted)
			}
		})
	}
}

func TestEndpointContextString(t *testing.T) {
	tests := []struct {
		name string
		ctx  EndpointContext
		want string
	}{
		{
			name: "method and url with group and name",
			ctx:  EndpointContext{Method: "post", URL: "/orders", Group: "Order", Name: "CreateOrder"},
			want: "(post /orders, Order.CreateOrder)",
		},
		{
			name: "url only",
			ctx:  EndpointContext{URL: "/orders"},
			want: "(/orders)",
		},
		{
			name: "group and name only",
			ctx:  EndpointContext{Group: "Order", Name: "CreateOrder"},
			want: "(Order.CreateOrder)",
		},
		{
			name: "empty",
			ctx:  EndpointContext{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ctx.String())
		})
	}
}

func TestEndpointContextIsEmpty(t *testing.T) {
	assert.True(t, EndpointContext{}.IsEmpty())
	assert.False(t, EndpointContext{Method: "get"}.IsEmpty())
	assert.False(t, EndpointContext{Name: "GetUser"}.IsEmpty())
}
