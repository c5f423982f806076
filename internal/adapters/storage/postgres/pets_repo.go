package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-tracker/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet (uuid, household_uuid, species, name, birthdate, photo_addr, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		p.ID,
		p.HouseholdID,
		string(p.Species),
		p.Name,
		p.BirthDate,
		p.PhotoAddr,
		p.CreatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT uuid, household_uuid, species, name, birthdate, photo_addr, created_at
		FROM pet
		WHERE uuid = $1
	`, id)

	p, err := scanPet(row)
	if err == sql.ErrNoRows {
		return pets.Pet{}, ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByHousehold(ctx context.Context, householdID string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uuid, household_uuid, species, name, birthdate, photo_addr, created_at
		FROM pet
		WHERE household_uuid = $1
		ORDER BY name
	`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		species string
	)
	if err := row.Scan(
		&p.ID,
		&p.HouseholdID,
		&species,
		&p.Name,
		&p.BirthDate,
		&p.PhotoAddr,
		&p.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Species = pets.Species(species)
	return p, nil
}
