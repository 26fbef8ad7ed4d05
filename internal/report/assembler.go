package report

import (
	"context"
	"time"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/repository"
)

// Assembler fetches entity collections and feeds them to the pure builders.
// Fetch failures become error documents; nothing here returns a Go error to
// the route layer.
type Assembler struct {
	Sponsors     *repository.SponsorRepo
	Events       *repository.EventRepo
	Sponsorships *repository.SponsorshipRepo
	Cfg          config.ReportingConfig

	now func() time.Time
}

func NewAssembler(sponsors *repository.SponsorRepo, events *repository.EventRepo, ships *repository.SponsorshipRepo, cfg config.ReportingConfig) *Assembler {
	return &Assembler{
		Sponsors:     sponsors,
		Events:       events,
		Sponsorships: ships,
		Cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SponsorReport builds a sponsor report; sponsorID 0 covers all sponsors.
func (a *Assembler) SponsorReport(ctx context.Context, kind string, sponsorID uint64) Document {
	if !validSponsorKind(kind) {
		return BuildSponsorReport(kind, nil, nil, a.now())
	}

	var sponsors []model.Sponsor
	if sponsorID != 0 {
		sp, err := a.Sponsors.GetByID(ctx, sponsorID)
		if err != nil {
			return errDoc("failed to generate sponsor report: " + err.Error())
		}
		sponsors = []model.Sponsor{sp}
	} else {
		var err error
		sponsors, err = a.Sponsors.List(ctx)
		if err != nil {
			return errDoc("failed to generate sponsor report: " + err.Error())
		}
	}

	shipsBySponsor := map[uint64][]model.Sponsorship{}
	if kind == KindDetailed || kind == KindROIAnalysis {
		ships, err := a.Sponsorships.List(ctx, repository.Filter{SponsorID: sponsorID})
		if err != nil {
			return errDoc("failed to generate sponsor report: " + err.Error())
		}
		for _, sh := range ships {
			shipsBySponsor[sh.SponsorID] = append(shipsBySponsor[sh.SponsorID], sh)
		}
	}
	return BuildSponsorReport(kind, sponsors, shipsBySponsor, a.now())
}

// EventReport builds an event report; eventID 0 covers all events.
func (a *Assembler) EventReport(ctx context.Context, kind string, eventID uint64) Document {
	if !validEventKind(kind) {
		return BuildEventReport(kind, nil, nil, a.now())
	}

	var events []model.Event
	if eventID != 0 {
		e, err := a.Events.GetByID(ctx, eventID)
		if err != nil {
			return errDoc("failed to generate event report: " + err.Error())
		}
		events = []model.Event{e}
	} else {
		var err error
		events, err = a.Events.List(ctx)
		if err != nil {
			return errDoc("failed to generate event report: " + err.Error())
		}
	}

	shipsByEvent := map[uint64][]model.Sponsorship{}
	if kind == KindDetailed || kind == KindFinancial {
		ships, err := a.Sponsorships.List(ctx, repository.Filter{EventID: eventID})
		if err != nil {
			return errDoc("failed to generate event report: " + err.Error())
		}
		for _, sh := range ships {
			shipsByEvent[sh.EventID] = append(shipsByEvent[sh.EventID], sh)
		}
	}
	return BuildEventReport(kind, events, shipsByEvent, a.now())
}

// FinancialSummary builds the trailing-window rollup; months <= 0 falls back
// to the configured trend window.
func (a *Assembler) FinancialSummary(ctx context.Context, months int) Document {
	if months <= 0 {
		months = a.Cfg.TrendWindowMonths
	}
	now := a.now()
	start := now.AddDate(0, 0, -months*30)

	events, err := a.Events.ListBetween(ctx, start, now)
	if err != nil {
		return errDoc("failed to generate financial summary: " + err.Error())
	}
	ships, err := a.Sponsorships.ListCreatedBetween(ctx, start, now)
	if err != nil {
		return errDoc("failed to generate financial summary: " + err.Error())
	}
	sponsors, err := a.Sponsors.List(ctx)
	if err != nil {
		return errDoc("failed to generate financial summary: " + err.Error())
	}
	return BuildFinancialSummary(months, events, ships, sponsors, a.Cfg, now)
}

// MonthlyReport builds the fixed calendar-month report.
func (a *Assembler) MonthlyReport(ctx context.Context, year, month int) Document {
	if month < 1 || month > 12 {
		return BuildMonthlyReport(year, month, nil, nil, nil, a.now())
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	events, err := a.Events.ListBetween(ctx, start, end)
	if err != nil {
		return errDoc("failed to generate monthly report: " + err.Error())
	}
	newSponsors, err := a.Sponsors.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return errDoc("failed to generate monthly report: " + err.Error())
	}
	ships, err := a.Sponsorships.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return errDoc("failed to generate monthly report: " + err.Error())
	}
	return BuildMonthlyReport(year, month, events, newSponsors, ships, a.now())
}

// ROIAnalysis builds the platform-wide ROI report.
func (a *Assembler) ROIAnalysis(ctx context.Context) Document {
	ships, err := a.Sponsorships.List(ctx, repository.Filter{})
	if err != nil {
		return errDoc("failed to generate roi analysis: " + err.Error())
	}
	sponsors, err := a.Sponsors.List(ctx)
	if err != nil {
		return errDoc("failed to generate roi analysis: " + err.Error())
	}
	return BuildROIAnalysis(ships, sponsors, a.now())
}
