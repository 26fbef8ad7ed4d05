package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/fincommittee/platform/internal/model"
)

// EventRepo manages persistence for events.
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const eventColumns = "id,name,date,budget,footfall,revenue,created_at"

// Create inserts an event and assigns the generated ID back to the struct.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO events (name, date, budget, footfall, revenue) VALUES (?,?,?,?,?)",
		e.Name, e.Date, e.Budget, e.Footfall, e.Revenue)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM events WHERE id=?", e.ID).Scan(&e.CreatedAt)
}

// GetByID retrieves an event, returning ErrEventNotFound when absent.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	e, err := scanEvent(r.DB.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// List returns all events, most recent first.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ListBetween returns events dated inside [from, to), oldest first. Events
// with a NULL date never match a window, so time-based aggregation silently
// excludes them.
func (r *EventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE date >= ? AND date < ? ORDER BY date", from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// Update rewrites the mutable event fields.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE events SET name=?, date=?, budget=?, footfall=?, revenue=? WHERE id=?",
		e.Name, e.Date, e.Budget, e.Footfall, e.Revenue, e.ID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrEventNotFound)
}

// Delete removes an event row.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrEventNotFound)
}

// Count returns the total number of events.
func (r *EventRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

// CountSince returns events dated on or after the cutoff.
func (r *EventRepo) CountSince(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM events WHERE date >= ?", cutoff).Scan(&n)
	return n, err
}

// TopByRevenue returns the highest-revenue events, capped at limit.
func (r *EventRepo) TopByRevenue(ctx context.Context, limit int) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE revenue IS NOT NULL ORDER BY revenue DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func scanEvent(row *sql.Row) (model.Event, error) {
	var e model.Event
	var date sql.NullTime
	var budget, revenue sql.NullFloat64
	var footfall sql.NullInt64
	err := row.Scan(&e.ID, &e.Name, &date, &budget, &footfall, &revenue, &e.CreatedAt)
	if err != nil {
		return model.Event{}, err
	}
	applyEventNulls(&e, date, budget, footfall, revenue)
	return e, nil
}

func collectEvents(rows *sql.Rows) ([]model.Event, error) {
	var out []model.Event
	for rows.Next() {
		var e model.Event
		var date sql.NullTime
		var budget, revenue sql.NullFloat64
		var footfall sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &date, &budget, &footfall, &revenue, &e.CreatedAt); err != nil {
			return nil, err
		}
		applyEventNulls(&e, date, budget, footfall, revenue)
		out = append(out, e)
	}
	return out, rows.Err()
}

// applyEventNulls maps NULL numerics to zero; the aggregation layer treats
// a missing amount as 0 rather than an error.
func applyEventNulls(e *model.Event, date sql.NullTime, budget sql.NullFloat64, footfall sql.NullInt64, revenue sql.NullFloat64) {
	if date.Valid {
		t := date.Time
		e.Date = &t
	}
	e.Budget = budget.Float64
	e.Footfall = int(footfall.Int64)
	e.Revenue = revenue.Float64
}
