// Package pkg provides the core libraries for laser-pdf document composition.
//
// # Overview
//
// laser-pdf turns a declarative document description into paginated output.
// Elements measure themselves against the space a page offers, decide where
// to break, and draw onto whatever surface the chosen sink provides. The
// pkg directory is organized into these areas:
//
//  1. [layout] - The element protocol (measure, break, draw) and page driver
//  2. [layout/elements] - Concrete elements (text, columns, rows, boxes, tables)
//  3. [text] - Line breaking and styled text shaping
//  4. [fonts] - TrueType font loading and metrics
//  5. [sink] - Output backends (PDF via gofpdf, JSON operation recorder)
//  6. [doc] - TOML document descriptions and element tree construction
//  7. [pipeline] - Orchestration (load → build → render) with artifact caching
//
// # Architecture
//
// The typical data flow through laser-pdf:
//
//	TOML description
//	         ↓
//	    [doc] package (parse + build element tree)
//	         ↓
//	    [layout] package (measure, paginate, break)
//	         ↓
//	    [sink] package (draw onto PDF or record)
//	         ↓
//	    PDF/JSON output
//
// # Quick Start
//
// Load a description and render it to PDF:
//
//	import (
//	    "github.com/laser-pdf/laser-pdf/pkg/doc"
//	    "github.com/laser-pdf/laser-pdf/pkg/fonts"
//	    "github.com/laser-pdf/laser-pdf/pkg/sink/pdf"
//	)
//
//	// 1. Load the description
//	document, _ := doc.Load("report.toml")
//
//	// 2. Register fonts
//	registry := fonts.NewRegistry()
//	_ = document.LoadFonts(registry)
//
//	// 3. Build the element tree
//	root, _ := document.Build(registry)
//
//	// 4. Render
//	d, _ := pdf.New(registry,
//	    pdf.WithPageSize(document.PageWidth(), document.PageHeight()))
//	_ = d.Render(root)
//	out, _ := d.Output()
//
// # Main Packages
//
// [layout] - The element protocol. Every element answers three questions:
// would it use a first location at all (FirstLocationUsage), how tall is it
// given a width and available heights (Measure), and how does it place its
// content across one or more locations (Draw). [layout.Render] drives a root
// element across the pages a sink provides.
//
// [layout/elements] - The element library: styled text, columns with gaps,
// weighted rows, padded and framed boxes, rules, spacers, and titled table
// sections that repeat or change their title after a page break.
//
// [text] - Greedy line breaking over measured text pieces. Elements in
// [layout/elements] delegate their width-dependent height math here.
//
// [fonts] - TrueType loading via golang.org/x/image/font/sfnt and a registry
// keyed by family name. Faces expose ascent, line height, and string widths
// in the document's point units.
//
// [sink/pdf] - PDF output built on github.com/jung-kurt/gofpdf. Allocates
// pages on demand as the layout driver asks for locations.
//
// [sink/record] - Records draw operations as JSON for tests and for the
// pipeline's "json" artifact format.
//
// [doc] - TOML document descriptions ([page], [[fonts]], [[blocks]]) and the
// builder that turns them into an element tree.
//
// [pipeline] - The load → build → render pipeline used by both CLI and HTTP
// server, with content-addressed artifact caching ([cache]) and per-stage
// [observability] hooks.
//
// [cache] - File-backed artifact cache keyed by description hash plus page
// geometry and output format.
//
// [errors] - Coded errors shared across packages so callers can map failures
// to user messages and HTTP statuses.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/layout/...       # Specific package
//
// [layout]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/layout
// [layout/elements]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/layout/elements
// [text]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/text
// [fonts]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/fonts
// [sink]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/sink
// [sink/pdf]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/sink/pdf
// [sink/record]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/sink/record
// [doc]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/doc
// [pipeline]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/cache
// [observability]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/observability
// [errors]: https://pkg.go.dev/github.com/laser-pdf/laser-pdf/pkg/errors
package pkg
