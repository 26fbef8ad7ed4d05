package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExporterFor(t *testing.T) {
	if _, ok := ExporterFor("excel"); !ok {
		t.Error("excel exporter missing")
	}
	if _, ok := ExporterFor("pdf"); !ok {
		t.Error("pdf exporter missing")
	}
	if _, ok := ExporterFor("docx"); ok {
		t.Error("docx should not resolve to an exporter")
	}
}

func TestExcelExporterWritesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	doc := Document{"report_type": "Sponsor Report", "sponsor_count": 2}

	path, err := ExcelExporter{Dir: dir}.Export(doc, "out.xlsx")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Base(path) != "out.xlsx" {
		t.Errorf("path = %q", path)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !strings.Contains(string(body), "EXCEL EXPORT PLACEHOLDER") {
		t.Error("placeholder marker missing")
	}
	if !strings.Contains(string(body), "Sponsor Report") {
		t.Error("document body missing from artifact")
	}
}

func TestPDFExporterDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	path, err := PDFExporter{Dir: dir}.Export(Document{"x": 1}, "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "report_") || !strings.HasSuffix(name, ".pdf") {
		t.Errorf("generated filename = %q", name)
	}
}

func TestExportDoesNotMutateDocument(t *testing.T) {
	doc := Document{"report_type": "Event Report"}
	if _, err := (PDFExporter{Dir: t.TempDir()}).Export(doc, "r.pdf"); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(doc) != 1 || doc["report_type"] != "Event Report" {
		t.Errorf("document mutated: %v", doc)
	}
}
