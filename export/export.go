// Package export renders a deck.Deck into Office and PDF files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LGhoull/priemer-aufgabe-1/deck"
	"github.com/LGhoull/priemer-aufgabe-1/logger"
)

// Format is an output file format.
type Format string

const (
	FormatPPTX Format = "pptx"
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// AllFormats lists every supported format in write order.
var AllFormats = []Format{FormatPPTX, FormatDOCX, FormatXLSX, FormatPDF}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ParseFormats parses a comma separated list such as "pptx,pdf".
// Duplicates are dropped and order is preserved. "all" selects every format.
// The presentation itself is always written and always comes first, so
// "docx" yields pptx and docx.
func ParseFormats(s string) ([]Format, error) {
	out := []Format{FormatPPTX}
	seen := map[Format]bool{FormatPPTX: true}
	given := 0
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == "all" {
			return append([]Format(nil), AllFormats...), nil
		}
		f := Format(strings.TrimPrefix(name, "."))
		if !f.valid() {
			return nil, fmt.Errorf("unknown format %q", part)
		}
		given++
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if given == 0 {
		return nil, fmt.Errorf("no output format given")
	}
	return out, nil
}

func (f Format) valid() bool {
	for _, known := range AllFormats {
		if f == known {
			return true
		}
	}
	return false
}

// Renderer turns a deck into the bytes of one file format.
type Renderer interface {
	Render(d *deck.Deck) ([]byte, error)
	Format() Format
}

// NewRenderer returns the renderer for f.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatPPTX:
		return NewPPTRenderer(), nil
	case FormatDOCX:
		return NewWordRenderer(), nil
	case FormatXLSX:
		return NewExcelRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// Exporter writes a deck to disk in one or more formats.
type Exporter struct {
	log *logger.Logger
}

// NewExporter creates an exporter. A nil logger disables logging.
func NewExporter(log *logger.Logger) *Exporter {
	if log == nil {
		log = logger.NewLogger()
	}
	return &Exporter{log: log}
}

// OutputPaths derives one path per format from output. The pptx path is
// output itself when it already carries the .pptx extension.
func OutputPaths(output string, formats []Format) []string {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + f.Extension()
	}
	return paths
}

// WriteAll validates d, renders every format and writes the files,
// overwriting existing ones. It returns the written paths in format order.
func (e *Exporter) WriteAll(d *deck.Deck, output string, formats []Format) ([]string, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	paths := OutputPaths(output, formats)
	for i, f := range formats {
		r, err := NewRenderer(f)
		if err != nil {
			return nil, err
		}
		data, err := r.Render(d)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(paths[i], data, 0644); err != nil {
			return nil, wrapError(f, "write", err)
		}
		e.log.Logf("wrote %s (%d bytes, %d slides)", paths[i], len(data), d.Len())
	}
	return paths, nil
}
