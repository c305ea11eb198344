package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to pdf", "", []string{"pdf"}},
		{"single", "json", []string{"json"}},
		{"multiple", "pdf,json", []string{"pdf", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		input    string
		format   string
		multiple bool
		want     string
	}{
		{"single format uses output verbatim", "out.pdf", "doc.toml", "pdf", false, "out.pdf"},
		{"no output derives from input", "", "doc.toml", "pdf", false, "doc.pdf"},
		{"no output json", "", "report.toml", "json", false, "report.json"},
		{"multiple formats use output as base", "out", "doc.toml", "json", true, "out.json"},
		{"multiple formats strip known extension", "out.pdf", "doc.toml", "json", true, "out.json"},
		{"multiple formats no output", "", "doc.toml", "pdf", true, "doc.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.input, tt.format, tt.multiple)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
					tt.output, tt.input, tt.format, tt.multiple, got, tt.want)
			}
		})
	}
}

const renderTestDoc = `
[page]
width = 300.0
height = 200.0
margin = 20.0

[[blocks]]
type = "heading"
text = "Hello"

[[blocks]]
type = "paragraph"
text = "A short paragraph."
`

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.toml")
	if err := os.WriteFile(docPath, []byte(renderTestDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.pdf")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", docPath, "-o", outPath, "--no-cache"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF, starts with %q", data[:min(8, len(data))])
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "doc.toml", "-f", "docx"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRenderCommandMissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", filepath.Join(t.TempDir(), "absent.toml"), "--no-cache"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for missing input file")
	}
}
