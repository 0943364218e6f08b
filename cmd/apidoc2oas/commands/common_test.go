package commands

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("expected %q to be valid, got %v", format, err)
		}
	}

	for _, format := range []string{"", "xml", "TEXT", "Json"} {
		if err := ValidateOutputFormat(format); err == nil {
			t.Errorf("expected %q to be invalid", format)
		}
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]any{"a": 1}

	if err := OutputStructured(data, FormatJSON); err != nil {
		t.Errorf("unexpected error for json: %v", err)
	}
	if err := OutputStructured(data, FormatYAML); err != nil {
		t.Errorf("unexpected error for yaml: %v", err)
	}
	if err := OutputStructured(data, FormatText); err == nil {
		t.Error("expected error for text format")
	}
}
