package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DocumentExporter turns an assembled document into a durable artifact and
// returns its path. Implementations must not mutate the document.
type DocumentExporter interface {
	Export(doc Document, filename string) (string, error)
}

// ExcelExporter is a placeholder. A real implementation would produce an
// .xlsx workbook; until then it writes the document as indented JSON with a
// marker header so downstream tooling can spot the stub output.
type ExcelExporter struct {
	// Dir overrides the output directory; empty means os.TempDir.
	Dir string
}

func (x ExcelExporter) Export(doc Document, filename string) (string, error) {
	return writePlaceholder(x.Dir, doc, filename, "xlsx", "EXCEL EXPORT PLACEHOLDER")
}

// PDFExporter is a placeholder, same contract as ExcelExporter.
type PDFExporter struct {
	Dir string
}

func (p PDFExporter) Export(doc Document, filename string) (string, error) {
	return writePlaceholder(p.Dir, doc, filename, "pdf", "PDF EXPORT PLACEHOLDER")
}

// ExporterFor maps a format string to its exporter.
func ExporterFor(format string) (DocumentExporter, bool) {
	switch format {
	case "excel":
		return ExcelExporter{}, true
	case "pdf":
		return PDFExporter{}, true
	}
	return nil, false
}

func writePlaceholder(dir string, doc Document, filename, ext, header string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if filename == "" {
		filename = fmt.Sprintf("report_%s.%s", time.Now().UTC().Format("20060102_150405"), ext)
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	content := header + "\nGenerated: " + time.Now().UTC().Format(time.RFC3339) + "\n\n" + string(body) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
