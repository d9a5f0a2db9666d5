package errors

import (
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"numeric", "1", false},
		{"uuid", "6f1c1f1e-4f55-4b8a-9d8e-0a5d5f2e7c11", false},
		{"unicode", "ちーず", false},

		{"empty", "", true},
		{"too long", strings.Repeat("k", MaxKeyLength+1), true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidKey) {
				t.Errorf("ValidateKey(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidKey)
			}
		})
	}
}

func TestValidateSpan(t *testing.T) {
	for _, span := range []int{1, MaxSpan} {
		if err := ValidateSpan("column", span); err != nil {
			t.Errorf("ValidateSpan(%d) = %v, want nil", span, err)
		}
	}
	for _, span := range []int{0, -3, MaxSpan + 1, 2_000_000_000} {
		if err := ValidateSpan("row", span); !Is(err, ErrCodeInvalidLayout) {
			t.Errorf("ValidateSpan(%d) = %v, want %v", span, err, ErrCodeInvalidLayout)
		}
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "grid.toml", false},
		{"absolute", "/etc/resizegrid/grid.toml", false},
		{"upper ext", "GRID.TOML", false},

		{"empty", "", true},
		{"wrong ext", "grid.json", true},
		{"no ext", "grid", true},
		{"control char", "gr\x01id.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
