package main

import (
	"errors"
	"os"

	streammd "github.com/pollyhq/go-streammd"
	"github.com/pollyhq/go-streammd/internal/config"
	"github.com/pollyhq/go-streammd/internal/dateutil"
)

// Exit codes for the streammd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errorsIsBrowser(err) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrBadFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, streammd.ErrEmptyTranscript) ||
		errors.Is(err, streammd.ErrStyleNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}

// errorsIsBrowser reports whether the error came from headless Chrome.
func errorsIsBrowser(err error) bool {
	return errors.Is(err, streammd.ErrBrowserConnect) ||
		errors.Is(err, streammd.ErrPageCreate) ||
		errors.Is(err, streammd.ErrPageLoad) ||
		errors.Is(err, streammd.ErrPDFGeneration)
}
