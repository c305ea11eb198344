package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/laser-pdf/laser-pdf/pkg/cache"
	"github.com/laser-pdf/laser-pdf/pkg/doc"
	"github.com/laser-pdf/laser-pdf/pkg/fonts"
	"github.com/laser-pdf/laser-pdf/pkg/layout"
	"github.com/laser-pdf/laser-pdf/pkg/observability"
	"github.com/laser-pdf/laser-pdf/pkg/sink/pdf"
	"github.com/laser-pdf/laser-pdf/pkg/sink/record"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.sourceName())
	document, raw, err := r.Load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.sourceName(),
		blockCount(document), result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Document = document
	result.DocHash = cache.Hash(raw)
	result.Stats.BlockCount = len(document.Blocks)

	logger.Info("loaded document",
		"source", opts.sourceName(),
		"blocks", len(document.Blocks),
		"fonts", len(document.Fonts),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(document.Blocks))
	root, registry, err := r.Build(document)
	result.Stats.BuildTime = time.Since(buildStart)
	observability.Pipeline().OnBuildComplete(ctx, result.Stats.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	logger.Debug("built element tree",
		"blocks", len(document.Blocks),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderHit, err := r.render(ctx, result, document, root, registry, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats,
		result.Pages, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered document",
		"formats", opts.Formats,
		"pages", result.Pages,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and parses the description named by the options. It returns the
// raw description bytes alongside, for content hashing.
func (r *Runner) Load(opts Options) (*doc.Document, []byte, error) {
	if opts.Path != "" {
		d, err := doc.Load(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		// Hash the file the loader already validated.
		raw, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, nil, err
		}
		return d, raw, nil
	}
	d, err := doc.Parse(opts.Source)
	if err != nil {
		return nil, nil, err
	}
	return d, opts.Source, nil
}

// Build resolves the description's fonts into a fresh registry and builds
// the element tree.
func (r *Runner) Build(document *doc.Document) (layout.Element, *fonts.Registry, error) {
	registry := fonts.NewRegistry()
	if err := document.LoadFonts(registry); err != nil {
		return nil, nil, err
	}
	root, err := document.Build(registry)
	if err != nil {
		return nil, nil, err
	}
	return root, registry, nil
}

// render fills result.Artifacts for every requested format, consulting the
// cache first. It reports whether every artifact came from the cache; on a
// full hit result.Size and result.Pages stay zero, since nothing was laid
// out.
func (r *Runner) render(ctx context.Context, result *Result, document *doc.Document,
	root layout.Element, registry *fonts.Registry, opts Options) (bool, error) {

	geom := r.geometry(document, opts)

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(result.DocHash, geom.keyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				artifacts = nil
				break
			}
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if artifacts != nil {
			result.Artifacts = artifacts
			return true, nil
		}
	}

	// Render all formats
	for _, format := range opts.Formats {
		data, size, pages, err := r.renderFormat(root, registry, geom, format)
		if err != nil {
			return false, fmt.Errorf("%s: %w", format, err)
		}
		result.Artifacts[format] = data
		result.Size = size
		result.Pages = pages

		key := r.Keyer.ArtifactKey(result.DocHash, geom.keyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return false, nil
}

func (r *Runner) renderFormat(root layout.Element, registry *fonts.Registry,
	geom geometry, format string) ([]byte, layout.Size, int, error) {

	switch format {
	case FormatPDF:
		document, err := pdf.New(registry,
			pdf.WithPageSize(geom.width, geom.height),
			pdf.WithMargins(geom.margins))
		if err != nil {
			return nil, layout.Size{}, 0, err
		}
		size := document.Render(root)
		data, err := document.Output()
		if err != nil {
			return nil, layout.Size{}, 0, err
		}
		return data, size, document.PageCount(), nil

	case FormatJSON:
		rec := record.New(
			geom.width-geom.margins.Horizontal(),
			geom.height-geom.margins.Vertical())
		size := layout.Render(root, rec)
		data, err := rec.JSON()
		if err != nil {
			return nil, layout.Size{}, 0, err
		}
		return data, size, rec.PageCount(), nil

	default:
		return nil, layout.Size{}, 0, fmt.Errorf("invalid format: %q", format)
	}
}

// geometry is the resolved page geometry: option overrides win over the
// description's page section, which falls back to A4.
type geometry struct {
	width   float64
	height  float64
	margins layout.Edges
}

func (r *Runner) geometry(document *doc.Document, opts Options) geometry {
	g := geometry{
		width:   document.PageWidth(),
		height:  document.PageHeight(),
		margins: document.Margins(),
	}
	if opts.PageWidth > 0 {
		g.width = opts.PageWidth
	}
	if opts.PageHeight > 0 {
		g.height = opts.PageHeight
	}
	if opts.Margin > 0 {
		g.margins = layout.EdgeAll(opts.Margin)
	}
	return g
}

func (g geometry) keyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		PageWidth:  g.width,
		PageHeight: g.height,
		Margin:     g.margins.Top,
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// logger prefers the per-call logger over the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func blockCount(d *doc.Document) int {
	if d == nil {
		return 0
	}
	return len(d.Blocks)
}
