// Package config loads and validates YAML configuration for the
// streammd CLI. Config files are optional: the zero value of every
// field maps to the library defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pollyhq/go-streammd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength = 200  // Transcript document title
	MaxStyleLength = 100  // Style name or path
	MaxCSSLength   = 2048 // Path to a custom stylesheet
)

// Config holds all configuration for the streammd CLI.
type Config struct {
	Render Render `yaml:"render"`
	Export Export `yaml:"export"`
	Stream Stream `yaml:"stream"`
	Log    Log    `yaml:"log"`
}

// Render defines terminal rendering options.
type Render struct {
	Width         int  `yaml:"width"`         // 0 = detect from terminal
	NoCitations   bool `yaml:"noCitations"`   // Keep [n] markers as plain text
	NoMath        bool `yaml:"noMath"`        // Keep dollar signs literal
	ColorProfile  bool `yaml:"colorProfile"`  // Force styled output when not a TTY
	ShowRawOutput bool `yaml:"showRawOutput"` // Print normalized markdown instead of styled text
}

// Export defines transcript export options.
type Export struct {
	Style   string        `yaml:"style"`   // Embedded style name or path to a .css file
	CSS     string        `yaml:"css"`     // Extra CSS appended after the base stylesheet
	Title   string        `yaml:"title"`   // Document title (default derived from input)
	Timeout time.Duration `yaml:"timeout"` // PDF generation timeout (0 = library default)
}

// Stream defines chunked replay options for the stream subcommand.
type Stream struct {
	ChunkSize int           `yaml:"chunkSize"` // Bytes per simulated chunk (0 = 12)
	Delay     time.Duration `yaml:"delay"`     // Pause between chunks (0 = 30ms)
}

// Log defines logging options.
type Log struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error" (default "info")
	Format string `yaml:"format"` // "text" or "json" (default "text")
}

// Validate checks field values and lengths.
// Called automatically by Load, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("export.style", c.Export.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("export.css", c.Export.CSS, MaxCSSLength); err != nil {
		return err
	}
	if err := validateFieldLength("export.title", c.Export.Title, MaxTitleLength); err != nil {
		return err
	}
	if c.Export.Timeout < 0 {
		return fmt.Errorf("export.timeout: must not be negative, got %s", c.Export.Timeout)
	}

	if c.Render.Width < 0 {
		return fmt.Errorf("render.width: must not be negative, got %d", c.Render.Width)
	}

	if c.Stream.ChunkSize < 0 {
		return fmt.Errorf("stream.chunkSize: must not be negative, got %d", c.Stream.ChunkSize)
	}
	if c.Stream.Delay < 0 {
		return fmt.Errorf("stream.delay: must not be negative, got %s", c.Stream.Delay)
	}

	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("log.level: invalid value %q (must be debug, info, warn, or error)", c.Log.Level)
		}
	}
	if c.Log.Format != "" {
		switch strings.ToLower(c.Log.Format) {
		case "text", "json":
		default:
			return fmt.Errorf("log.format: invalid value %q (must be text or json)", c.Log.Format)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Default returns a configuration with all fields at their zero,
// library-default values.
func Default() *Config {
	return &Config{}
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found; there is no
// silent fallback.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/streammd/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "streammd", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
