package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-care-tracker/internal/domain/events"
	"pet-care-tracker/internal/domain/savedevents"
)

type SavedEventsRepo struct {
	db *sql.DB
}

func NewSavedEventsRepo(db *sql.DB) *SavedEventsRepo {
	return &SavedEventsRepo{db: db}
}

func (r *SavedEventsRepo) Create(ctx context.Context, se savedevents.SavedEvent) error {
	var meta []byte
	if se.Meta != nil {
		b, err := json.Marshal(se.Meta)
		if err != nil {
			return err
		}
		meta = b
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saved_event (uuid, household_uuid, pet_uuid, name, type, meta)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		se.ID,
		se.HouseholdID,
		se.PetID,
		se.Name,
		string(se.Type),
		meta,
	)
	return err
}

func (r *SavedEventsRepo) GetByID(ctx context.Context, id string) (savedevents.SavedEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return savedevents.SavedEvent{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT uuid, household_uuid, pet_uuid, name, type, meta
		FROM saved_event
		WHERE uuid = $1
	`, id)

	se, err := scanSavedEvent(row)
	if err == sql.ErrNoRows {
		return savedevents.SavedEvent{}, ErrNotFound
	}
	return se, err
}

func (r *SavedEventsRepo) ListByHousehold(ctx context.Context, householdID string) ([]savedevents.SavedEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uuid, household_uuid, pet_uuid, name, type, meta
		FROM saved_event
		WHERE household_uuid = $1
		ORDER BY name
	`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]savedevents.SavedEvent, 0)
	for rows.Next() {
		se, err := scanSavedEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, se)
	}
	return out, rows.Err()
}

func scanSavedEvent(row rowScanner) (savedevents.SavedEvent, error) {
	var (
		se   savedevents.SavedEvent
		typ  string
		meta []byte
	)
	if err := row.Scan(&se.ID, &se.HouseholdID, &se.PetID, &se.Name, &typ, &meta); err != nil {
		return savedevents.SavedEvent{}, err
	}

	se.Type = events.EventType(typ)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &se.Meta); err != nil {
			return savedevents.SavedEvent{}, err
		}
	}
	return se, nil
}
