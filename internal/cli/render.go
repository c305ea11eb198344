package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/laser-pdf/laser-pdf/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats: "pdf", "json"
	pageWidth  float64  // page width override in points
	pageHeight float64  // page height override in points
	margin     float64  // page margin override in points
	refresh    bool     // re-render even when cached
	noCache    bool     // disable the artifact cache entirely
}

// renderCommand creates the render command.
//
// Default settings:
//   - format: pdf
//   - page geometry: whatever the description declares (A4 when silent)
//   - caching: enabled, keyed by description content and geometry
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document description to PDF or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), json (comma-separated)")
	cmd.Flags().Float64Var(&opts.pageWidth, "page-width", 0, "page width in points (overrides the description)")
	cmd.Flags().Float64Var(&opts.pageHeight, "page-height", 0, "page height in points (overrides the description)")
	cmd.Flags().Float64Var(&opts.margin, "margin", 0, "page margin in points (overrides the description)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender executes the pipeline for input and writes one file per format.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	start := time.Now()
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Path:       input,
		Formats:    opts.formats,
		PageWidth:  opts.pageWidth,
		PageHeight: opts.pageHeight,
		Margin:     opts.margin,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Rendered %s (%s)", filepath.Base(input), time.Since(start).Round(time.Millisecond))
	printStats(result.Stats.BlockCount, result.Pages, result.CacheInfo.RenderHit)
	return nil
}

// outputPath derives the file to write for a format. With multiple formats
// the base path gets the format as extension; a single format uses --output
// verbatim when given.
func outputPath(output, input, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(base); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}
