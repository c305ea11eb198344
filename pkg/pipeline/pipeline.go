// Package pipeline provides the core document pipeline for laser-pdf.
//
// This package implements the complete load → build → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and parse the TOML document description
//  2. Build: Resolve fonts and turn the description into an element tree
//  3. Render: Lay the tree out across pages in various formats (PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:    "report.toml",
//	    Formats: []string{"pdf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"]
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/laser-pdf/laser-pdf/pkg/doc"
	"github.com/laser-pdf/laser-pdf/pkg/layout"
)

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF:  true,
	FormatJSON: true,
}

// DefaultFormat is used when no formats are requested.
const DefaultFormat = FormatPDF

// Options contains all configuration for the document pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Path names a description file on disk; Source carries
	// inline description bytes. Exactly one must be set.
	Path   string `json:"path,omitempty"`
	Source []byte `json:"source,omitempty"`

	// Geometry overrides. Zero values defer to the description, which in
	// turn falls back to A4 with a 36pt margin.
	PageWidth  float64 `json:"page_width,omitempty"`
	PageHeight float64 `json:"page_height,omitempty"`
	Margin     float64 `json:"margin,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the parsed description.
	Document *doc.Document

	// DocHash is the content hash of the description bytes.
	DocHash string

	// Size is the size the root element reported while drawing.
	Size layout.Size

	// Pages is the number of pages the document spans.
	Pages int

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount int
	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" && len(o.Source) == 0 {
		return fmt.Errorf("path or source is required")
	}
	if o.Path != "" && len(o.Source) > 0 {
		return fmt.Errorf("path and source are mutually exclusive")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.PageWidth < 0 || o.PageHeight < 0 || o.Margin < 0 {
		return fmt.Errorf("page geometry must be non-negative")
	}
	o.validated = true
	return nil
}

// sourceName names the description for logs and hooks.
func (o *Options) sourceName() string {
	if o.Path != "" {
		return o.Path
	}
	return "inline"
}
