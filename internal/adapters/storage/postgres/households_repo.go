package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-tracker/internal/domain/households"
)

type HouseholdsRepo struct {
	db *sql.DB
}

func NewHouseholdsRepo(db *sql.DB) *HouseholdsRepo {
	return &HouseholdsRepo{db: db}
}

func (r *HouseholdsRepo) Create(ctx context.Context, h households.Household) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO household (uuid, name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`, h.ID, h.Name, h.Email, h.CreatedAt)
	return err
}

func (r *HouseholdsRepo) GetByID(ctx context.Context, id string) (households.Household, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return households.Household{}, ErrNotFound
	}

	var h households.Household
	err := r.db.QueryRowContext(ctx, `
		SELECT uuid, name, email, created_at
		FROM household
		WHERE uuid = $1
	`, id).Scan(&h.ID, &h.Name, &h.Email, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return households.Household{}, ErrNotFound
	}
	return h, err
}

func (r *HouseholdsRepo) AddMember(ctx context.Context, m households.Member) error {
	// Idempotente: si ya es miembro, no pasa nada.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO household_member (user_id, household_uuid, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, household_uuid) DO NOTHING
	`, m.UserID, m.HouseholdID, m.AddedAt)
	return err
}

func (r *HouseholdsRepo) ListForUser(ctx context.Context, userID string) ([]households.Household, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.uuid, h.name, h.email, h.created_at
		FROM household h
		JOIN household_member m ON m.household_uuid = h.uuid
		WHERE m.user_id = $1
		ORDER BY m.added_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]households.Household, 0)
	for rows.Next() {
		var h households.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.Email, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HouseholdsRepo) ListMembers(ctx context.Context, householdID string) ([]households.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, household_uuid, added_at
		FROM household_member
		WHERE household_uuid = $1
		ORDER BY added_at
	`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]households.Member, 0)
	for rows.Next() {
		var m households.Member
		if err := rows.Scan(&m.ID, &m.UserID, &m.HouseholdID, &m.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *HouseholdsRepo) IsMember(ctx context.Context, householdID, userID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM household_member
		WHERE household_uuid = $1 AND user_id = $2
	`, householdID, userID).Scan(&n)
	return n > 0, err
}
