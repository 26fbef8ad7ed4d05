package config

// ReportingConfig carries the default parameters used by the report
// assembler and the analytics endpoints. The values are read once at
// startup and passed explicitly into the components that need them, so the
// reporting core never consults shared mutable state for its defaults.
type ReportingConfig struct {
	TrendWindowMonths  int // trailing window for financial summaries
	ProjectionMonths   int // forward horizon for revenue projections
	ProjectionBaseline int // trailing months of history feeding a projection
	TopSponsorLimit    int // top-N cutoff for sponsor rankings
}

// LoadReportingConfig builds a ReportingConfig from environment variables,
// falling back to the documented defaults when unset.
func LoadReportingConfig() ReportingConfig {
	cfg := ReportingConfig{
		TrendWindowMonths:  envInt("REPORT_TREND_WINDOW_MONTHS", 12),
		ProjectionMonths:   envInt("REPORT_PROJECTION_MONTHS", 6),
		ProjectionBaseline: envInt("REPORT_PROJECTION_BASELINE_MONTHS", 6),
		TopSponsorLimit:    envInt("REPORT_TOP_SPONSOR_LIMIT", 10),
	}
	if cfg.TrendWindowMonths < 1 {
		cfg.TrendWindowMonths = 12
	}
	if cfg.ProjectionMonths < 1 {
		cfg.ProjectionMonths = 6
	}
	if cfg.ProjectionBaseline < 2 {
		cfg.ProjectionBaseline = 6
	}
	if cfg.TopSponsorLimit < 1 {
		cfg.TopSponsorLimit = 10
	}
	return cfg
}
