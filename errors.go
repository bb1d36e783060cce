package streammd

import (
	"errors"

	"github.com/pollyhq/go-streammd/internal/assets"
)

// Sentinel errors for library operations. The normalization stages
// themselves never fail: every string input, including truncated or
// adversarial markup, has a defined passthrough result. Errors here
// belong to transcript export, which touches templates, files, and a
// browser.
var (
	ErrEmptyTranscript = errors.New("transcript content cannot be empty")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")

	// ErrStyleNotFound is re-exported so callers can match style
	// lookup failures without importing the internal assets package.
	ErrStyleNotFound = assets.ErrStyleNotFound
)
