package errors

import (
	"strings"
	"testing"
)

func TestValidateArtistName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Jane Doe", false},
		{"unicode", "Zoë Ångström", false},
		{"exactly max", strings.Repeat("é", 256), false},

		{"empty", "", true},
		{"spaces only", "   ", true},
		{"too long", strings.Repeat("a", 257), true},
		{"newline", "Jane\nDoe", true},
		{"null byte", "Jane\x00", true},
		{"invalid utf8", "Jane\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArtistName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArtistName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateElementID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"rect12", false},
		{"layer-1", false},
		{"_a.b", false},

		{"1rect", true},
		{"a b", true},
		{"a\"b", true},
		{"#rect", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateElementID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateElementID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "art/drawing.svg", false},
		{"absolute", "/tmp/drawing.svg", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "a\x00.svg", true},
		{"newline", "a\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
