package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMethod(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "get", want: "get"},
		{in: "GET", want: "get"},
		{in: "Post", want: "post"},
		{in: " delete ", want: "delete"},
		{in: "put", want: "put"},
		{in: "options", want: "options"},
		{in: "head", want: "head"},
		{in: "patch", want: "patch"},
		{in: "trace", want: ""},
		{in: "query", want: ""},
		{in: "fetch", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMethod(tt.in))
		})
	}
}

func TestValidStatusCode(t *testing.T) {
	valid := []string{"100", "200", "201", "404", "4XX", "5XX", "599"}
	for _, code := range valid {
		assert.True(t, ValidStatusCode(code), "expected %q to be valid", code)
	}

	invalid := []string{"", "20", "2000", "600", "099", "ABC", "2X0", "X00", "4xX", "OK"}
	for _, code := range invalid {
		assert.False(t, ValidStatusCode(code), "expected %q to be invalid", code)
	}
}
