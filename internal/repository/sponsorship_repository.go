package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/fincommittee/platform/internal/model"
)

// SponsorshipRepo manages persistence for sponsorships. List queries join
// sponsor and event names so handlers can render them without extra
// round-trips.
type SponsorshipRepo struct{ DB *sql.DB }

func NewSponsorshipRepo(db *sql.DB) *SponsorshipRepo { return &SponsorshipRepo{DB: db} }

const sponsorshipSelect = `SELECT sp.id, sp.sponsor_id, sp.event_id, sp.amount, sp.status, sp.roi,
       sp.created_at, sp.updated_at, s.name, e.name
FROM sponsorships sp
LEFT JOIN sponsors s ON s.id = sp.sponsor_id
LEFT JOIN events e ON e.id = sp.event_id`

// Filter narrows List results. Zero values mean "no filter".
type Filter struct {
	SponsorID uint64
	EventID   uint64
	Status    string
}

// Create inserts a sponsorship after checking the (sponsor, event) pair is
// not already linked. The uniqueness check lives here rather than in a DB
// constraint, matching the platform's historical schema.
func (r *SponsorshipRepo) Create(ctx context.Context, sp *model.Sponsorship) error {
	var existing uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM sponsorships WHERE sponsor_id=? AND event_id=? LIMIT 1",
		sp.SponsorID, sp.EventID).Scan(&existing)
	if err == nil {
		return ErrDuplicateSponsorship
	}
	if err != sql.ErrNoRows {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sponsorships (sponsor_id, event_id, amount, status, roi) VALUES (?,?,?,?,?)",
		sp.SponsorID, sp.EventID, sp.Amount, sp.Status, sp.ROI)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	sp.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM sponsorships WHERE id=?", sp.ID).
		Scan(&sp.CreatedAt, &sp.UpdatedAt)
}

// GetByID retrieves one sponsorship with joined names.
func (r *SponsorshipRepo) GetByID(ctx context.Context, id uint64) (model.Sponsorship, error) {
	sp, err := scanSponsorship(r.DB.QueryRowContext(ctx, sponsorshipSelect+" WHERE sp.id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Sponsorship{}, ErrSponsorshipNotFound
	}
	return sp, err
}

// List returns sponsorships matching the filter, most recent first.
func (r *SponsorshipRepo) List(ctx context.Context, f Filter) ([]model.Sponsorship, error) {
	q := sponsorshipSelect + " WHERE 1=1"
	args := []interface{}{}
	if f.SponsorID != 0 {
		q += " AND sp.sponsor_id=?"
		args = append(args, f.SponsorID)
	}
	if f.EventID != 0 {
		q += " AND sp.event_id=?"
		args = append(args, f.EventID)
	}
	if f.Status != "" {
		q += " AND sp.status=?"
		args = append(args, f.Status)
	}
	q += " ORDER BY sp.created_at DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSponsorships(rows)
}

// ListCreatedBetween returns sponsorships created inside [from, to).
func (r *SponsorshipRepo) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]model.Sponsorship, error) {
	rows, err := r.DB.QueryContext(ctx,
		sponsorshipSelect+" WHERE sp.created_at >= ? AND sp.created_at < ? ORDER BY sp.created_at", from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSponsorships(rows)
}

// Update rewrites amount, status and roi.
func (r *SponsorshipRepo) Update(ctx context.Context, sp *model.Sponsorship) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE sponsorships SET amount=?, status=?, roi=? WHERE id=?",
		sp.Amount, sp.Status, sp.ROI, sp.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res, ErrSponsorshipNotFound); err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx,
		"SELECT updated_at FROM sponsorships WHERE id=?", sp.ID).Scan(&sp.UpdatedAt)
}

// Delete removes a sponsorship row.
func (r *SponsorshipRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM sponsorships WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSponsorshipNotFound)
}

// Count returns the total number of sponsorships.
func (r *SponsorshipRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM sponsorships").Scan(&n)
	return n, err
}

// CountCreatedSince returns sponsorships created on or after the cutoff.
func (r *SponsorshipRepo) CountCreatedSince(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sponsorships WHERE created_at >= ?", cutoff).Scan(&n)
	return n, err
}

func scanSponsorship(row *sql.Row) (model.Sponsorship, error) {
	var sp model.Sponsorship
	var amount, roi sql.NullFloat64
	var sponsorName, eventName sql.NullString
	err := row.Scan(&sp.ID, &sp.SponsorID, &sp.EventID, &amount, &sp.Status, &roi,
		&sp.CreatedAt, &sp.UpdatedAt, &sponsorName, &eventName)
	if err != nil {
		return model.Sponsorship{}, err
	}
	sp.Amount, sp.ROI = amount.Float64, roi.Float64
	sp.SponsorName, sp.EventName = sponsorName.String, eventName.String
	return sp, nil
}

func collectSponsorships(rows *sql.Rows) ([]model.Sponsorship, error) {
	var out []model.Sponsorship
	for rows.Next() {
		var sp model.Sponsorship
		var amount, roi sql.NullFloat64
		var sponsorName, eventName sql.NullString
		if err := rows.Scan(&sp.ID, &sp.SponsorID, &sp.EventID, &amount, &sp.Status, &roi,
			&sp.CreatedAt, &sp.UpdatedAt, &sponsorName, &eventName); err != nil {
			return nil, err
		}
		sp.Amount, sp.ROI = amount.Float64, roi.Float64
		sp.SponsorName, sp.EventName = sponsorName.String, eventName.String
		out = append(out, sp)
	}
	return out, rows.Err()
}
