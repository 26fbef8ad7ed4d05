package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/fincommittee/platform/internal/model"
)

// SponsorRepo manages persistence for sponsors.
type SponsorRepo struct{ DB *sql.DB }

func NewSponsorRepo(db *sql.DB) *SponsorRepo { return &SponsorRepo{DB: db} }

const sponsorColumns = "id,name,industry,contact_person,email,phone,total_invested,created_at,updated_at"

// Create inserts a sponsor and assigns the generated ID back to the struct.
func (r *SponsorRepo) Create(ctx context.Context, s *model.Sponsor) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO sponsors (name, industry, contact_person, email, phone, total_invested) VALUES (?,?,?,?,?,?)",
		s.Name, nullIfEmpty(s.Industry), nullIfEmpty(s.ContactPerson), nullIfEmpty(s.Email), nullIfEmpty(s.Phone), s.TotalInvested)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM sponsors WHERE id=?", s.ID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetByID retrieves a sponsor, returning ErrSponsorNotFound when absent.
func (r *SponsorRepo) GetByID(ctx context.Context, id uint64) (model.Sponsor, error) {
	s, err := scanSponsor(r.DB.QueryRowContext(ctx,
		"SELECT "+sponsorColumns+" FROM sponsors WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Sponsor{}, ErrSponsorNotFound
	}
	return s, err
}

// List returns all sponsors ordered by name.
func (r *SponsorRepo) List(ctx context.Context) ([]model.Sponsor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sponsorColumns+" FROM sponsors ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSponsors(rows)
}

// ListCreatedBetween returns sponsors onboarded inside [from, to).
func (r *SponsorRepo) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]model.Sponsor, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sponsorColumns+" FROM sponsors WHERE created_at >= ? AND created_at < ? ORDER BY created_at", from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSponsors(rows)
}

// Update rewrites the mutable sponsor fields.
func (r *SponsorRepo) Update(ctx context.Context, s *model.Sponsor) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE sponsors SET name=?, industry=?, contact_person=?, email=?, phone=? WHERE id=?",
		s.Name, nullIfEmpty(s.Industry), nullIfEmpty(s.ContactPerson), nullIfEmpty(s.Email), nullIfEmpty(s.Phone), s.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res, ErrSponsorNotFound); err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx,
		"SELECT updated_at FROM sponsors WHERE id=?", s.ID).Scan(&s.UpdatedAt)
}

// AddInvested bumps the cached total_invested figure. Called by the
// sponsorship write path when money is committed.
func (r *SponsorRepo) AddInvested(ctx context.Context, id uint64, delta float64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE sponsors SET total_invested = total_invested + ? WHERE id=?", delta, id)
	return err
}

// Delete removes a sponsor row.
func (r *SponsorRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM sponsors WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSponsorNotFound)
}

// Count returns the total number of sponsors.
func (r *SponsorRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM sponsors").Scan(&n)
	return n, err
}

// CountWithSponsorships returns how many distinct sponsors have at least
// one sponsorship.
func (r *SponsorRepo) CountWithSponsorships(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT sponsor_id) FROM sponsorships").Scan(&n)
	return n, err
}

func scanSponsor(row *sql.Row) (model.Sponsor, error) {
	var s model.Sponsor
	var industry, contact, email, phone sql.NullString
	err := row.Scan(&s.ID, &s.Name, &industry, &contact, &email, &phone, &s.TotalInvested, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return model.Sponsor{}, err
	}
	s.Industry, s.ContactPerson, s.Email, s.Phone = industry.String, contact.String, email.String, phone.String
	return s, nil
}

func collectSponsors(rows *sql.Rows) ([]model.Sponsor, error) {
	var out []model.Sponsor
	for rows.Next() {
		var s model.Sponsor
		var industry, contact, email, phone sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &industry, &contact, &email, &phone, &s.TotalInvested, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Industry, s.ContactPerson, s.Email, s.Phone = industry.String, contact.String, email.String, phone.String
		out = append(out, s)
	}
	return out, rows.Err()
}

// nullIfEmpty maps "" to SQL NULL so optional columns stay nullable.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
