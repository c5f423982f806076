package postgres

import (
	"context"
	"database/sql"

	"pet-care-tracker/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) CreateFood(ctx context.Context, f catalog.FoodItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO food_meta (uuid, household_uuid, name, type, serving_size, unit, calories, archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		f.ID,
		f.HouseholdID,
		f.Name,
		f.FoodType,
		f.ServingSize,
		f.Unit,
		f.Calories,
		f.Archived,
	)
	return err
}

func (r *CatalogRepo) ListFood(ctx context.Context, householdID string, activeOnly bool) ([]catalog.FoodItem, error) {
	q := `
		SELECT uuid, household_uuid, name, type, serving_size, unit, calories, archived
		FROM food_meta
		WHERE household_uuid = $1
	`
	if activeOnly {
		q += " AND NOT archived"
	}
	q += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.FoodItem, 0)
	for rows.Next() {
		var f catalog.FoodItem
		if err := rows.Scan(
			&f.ID,
			&f.HouseholdID,
			&f.Name,
			&f.FoodType,
			&f.ServingSize,
			&f.Unit,
			&f.Calories,
			&f.Archived,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) FoodExists(ctx context.Context, householdID, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM food_meta
		WHERE household_uuid = $1 AND LOWER(name) = LOWER($2)
	`, householdID, name).Scan(&n)
	return n > 0, err
}

func (r *CatalogRepo) ArchiveFood(ctx context.Context, householdID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE food_meta
		SET archived = TRUE
		WHERE uuid = $1 AND household_uuid = $2
	`, id, householdID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) CreateMedicine(ctx context.Context, m catalog.MedicineItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medicine_meta (uuid, household_uuid, name, archived)
		VALUES ($1, $2, $3, $4)
	`, m.ID, m.HouseholdID, m.Name, m.Archived)
	return err
}

func (r *CatalogRepo) ListMedicine(ctx context.Context, householdID string, activeOnly bool) ([]catalog.MedicineItem, error) {
	q := `
		SELECT uuid, household_uuid, name, archived
		FROM medicine_meta
		WHERE household_uuid = $1
	`
	if activeOnly {
		q += " AND NOT archived"
	}
	q += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, q, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.MedicineItem, 0)
	for rows.Next() {
		var m catalog.MedicineItem
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.Name, &m.Archived); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) MedicineExists(ctx context.Context, householdID, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM medicine_meta
		WHERE household_uuid = $1 AND LOWER(name) = LOWER($2)
	`, householdID, name).Scan(&n)
	return n > 0, err
}

func (r *CatalogRepo) ArchiveMedicine(ctx context.Context, householdID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medicine_meta
		SET archived = TRUE
		WHERE uuid = $1 AND household_uuid = $2
	`, id, householdID)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
