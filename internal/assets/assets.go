// Package assets holds the embedded stylesheets for transcript export.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed styles/*
var styles embed.FS

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// DefaultStyleName is the stylesheet used when none is requested.
const DefaultStyleName = "chat"

// LoadStyle returns an embedded CSS style by name. The name should not
// include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// StyleNames lists the embedded styles, without extensions.
func StyleNames() []string {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".css"))
	}
	return names
}

// validateAssetName rejects names that could escape the embedded tree.
func validateAssetName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
