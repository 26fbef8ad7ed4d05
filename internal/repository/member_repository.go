package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/utils"
)

// MemberRepo manages persistence for finance-committee members.
type MemberRepo struct{ DB *sql.DB }

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{DB: db} }

const memberColumns = "id,name,email,password_hash,role,is_active,created_at,last_login"

// Create inserts a member and returns its ID. The password is hashed with
// bcrypt before it touches the database.
func (r *MemberRepo) Create(ctx context.Context, name, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO members (name, email, password_hash, role) VALUES (?,?,?,?)",
		name, email, hash, role)
	if err != nil {
		// 1062 is MySQL's duplicate-key error; the email column is unique.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a member by normalized email.
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (model.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE email=? LIMIT 1", email))
}

// GetByID fetches a member by id.
func (r *MemberRepo) GetByID(ctx context.Context, id uint64) (model.Member, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id=? LIMIT 1", id))
}

// List returns all members ordered by creation time.
func (r *MemberRepo) List(ctx context.Context) ([]model.Member, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+memberColumns+" FROM members ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		var last sql.NullTime
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Role, &m.IsActive, &m.CreatedAt, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			t := last.Time
			m.LastLogin = &t
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CountActiveAdmins returns the number of active members holding the admin
// role. Used to protect the last admin account from demotion/deactivation.
func (r *MemberRepo) CountActiveAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE role=? AND is_active=1", model.RoleAdmin).Scan(&n)
	return n, err
}

// CountActive returns the number of active members.
func (r *MemberRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE is_active=1").Scan(&n)
	return n, err
}

// Count returns the total number of members.
func (r *MemberRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM members").Scan(&n)
	return n, err
}

// UpdateProfile updates name and email for a member.
func (r *MemberRepo) UpdateProfile(ctx context.Context, id uint64, name, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE members SET name=?, email=? WHERE id=?", name, email, id)
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
		return ErrEmailExists
	}
	return err
}

// UpdatePassword replaces the stored password hash.
func (r *MemberRepo) UpdatePassword(ctx context.Context, id uint64, password string, cost int) error {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE members SET password_hash=? WHERE id=?", hash, id)
	return err
}

// UpdateRole changes a member's role.
func (r *MemberRepo) UpdateRole(ctx context.Context, id uint64, role string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE members SET role=? WHERE id=?", role, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrMemberNotFound)
}

// SetActive toggles the is_active flag. Deactivation is the soft-delete
// path for members; rows are never removed.
func (r *MemberRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE members SET is_active=? WHERE id=?", active, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrMemberNotFound)
}

// TouchLastLogin records a successful login time.
func (r *MemberRepo) TouchLastLogin(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE members SET last_login=? WHERE id=?", time.Now().UTC(), id)
	return err
}

func (r *MemberRepo) scanOne(row *sql.Row) (model.Member, error) {
	var m model.Member
	var last sql.NullTime
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Role, &m.IsActive, &m.CreatedAt, &last)
	if err != nil {
		return model.Member{}, err
	}
	if last.Valid {
		t := last.Time
		m.LastLogin = &t
	}
	return m, nil
}

// requireRow converts a zero-rows-affected result into notFound.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
