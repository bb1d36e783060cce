package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestLoadStyleDefault(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error: %v", DefaultStyleName, err)
	}
	if !strings.Contains(css, "body") {
		t.Errorf("LoadStyle(%q) missing body rule", DefaultStyleName)
	}
}

func TestLoadStyleErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "unknown style", style: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "empty name", style: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", style: "../styles/chat", wantErr: ErrInvalidAssetName},
		{name: "extension included", style: "chat.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	if !slices.Contains(names, DefaultStyleName) {
		t.Errorf("StyleNames() = %v, want to contain %q", names, DefaultStyleName)
	}
	for _, name := range names {
		if strings.HasSuffix(name, ".css") {
			t.Errorf("StyleNames() entry %q keeps extension", name)
		}
	}
}
