package fileutil

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error: %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("WriteTempFile() path = %q, want .html suffix", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(content) != "<html></html>" {
		t.Errorf("temp file content = %q, want %q", content, "<html></html>")
	}
}

func TestWriteTempFileCleanup(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("data", "txt")
	if err != nil {
		t.Fatalf("WriteTempFile() error: %v", err)
	}

	cleanup()

	if FileExists(path) {
		t.Errorf("temp file %q still exists after cleanup", path)
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid html", extension: "html", wantErr: nil},
		{name: "valid pdf", extension: "pdf", wantErr: nil},
		{name: "empty", extension: "", wantErr: ErrExtensionEmpty},
		{name: "forward slash", extension: "a/b", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", extension: "a\\b", wantErr: ErrExtensionPathTraversal},
		{name: "null byte", extension: "a\x00b", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "chat", want: false},
		{input: "my-style", want: false},
		{input: "./custom.css", want: true},
		{input: "../shared/style.css", want: true},
		{input: "/absolute/path.css", want: true},
		{input: "C:\\windows\\style.css", want: true},
		{input: "override.css", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
