// Package report assembles aggregation outputs and raw entity fields into
// named report documents. Builders are pure: they take materialized
// collections and a timestamp and return a renderable document. The
// Assembler layers repository fetches on top for the HTTP handlers.
package report

// Document is a renderable report body, serialized to JSON as-is by the
// route layer. A failed build yields a document whose only key is "error";
// builders never propagate faults upward.
type Document map[string]interface{}

// Err reports whether the document is an error document.
func (d Document) Err() (string, bool) {
	if len(d) != 1 {
		return "", false
	}
	msg, ok := d["error"].(string)
	return msg, ok
}

func errDoc(msg string) Document {
	return Document{"error": msg}
}

// Sponsor report kinds.
const (
	KindSummary     = "summary"
	KindDetailed    = "detailed"
	KindROIAnalysis = "roi_analysis"
	KindFinancial   = "financial"
)

func validSponsorKind(k string) bool {
	return k == KindSummary || k == KindDetailed || k == KindROIAnalysis
}

func validEventKind(k string) bool {
	return k == KindSummary || k == KindDetailed || k == KindFinancial
}
