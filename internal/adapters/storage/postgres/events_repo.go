package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-care-tracker/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// Create inserta el evento y su tabla lateral en una sola transacción:
// si falla la lateral, el evento también se revierte.
func (r *EventsRepo) Create(ctx context.Context, e *events.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO event (household_uuid, pet_uuid, type, ts, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		e.HouseholdID,
		e.PetID,
		string(e.Type),
		e.Timestamp,
		e.CreatedAt,
		e.CreatedBy,
	)
	if err := row.Scan(&e.ID); err != nil {
		return err
	}

	switch m := e.Meta.(type) {
	case events.FoodMeta:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO event_food (event_id, name, food_type, amount, unit, calories)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, e.ID, m.Name, m.FoodType, m.Amount, m.Unit, m.Calories)
	case events.MedicineMeta:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO event_medicine (event_id, name, dose)
			VALUES ($1, $2, $3)
		`, e.ID, m.Name, m.Dose)
	case events.VitalsMeta:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO event_vitals (event_id, kind, value, unit)
			VALUES ($1, $2, $3, $4)
		`, e.ID, m.Kind, m.Value, m.Unit)
	case nil:
		// Litter: sin meta
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventsRepo) ListByHousehold(ctx context.Context, householdID string, f events.ListFilter) ([]events.Event, error) {
	householdID = strings.TrimSpace(householdID)
	if householdID == "" {
		// Mismo contrato que el repo in-memory: slice vacío, no nil.
		return []events.Event{}, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			e.id, e.household_uuid, e.pet_uuid,
			e.type, e.ts, e.created_at, e.created_by,
			f.name, f.food_type, f.amount, f.unit, f.calories,
			m.name, m.dose,
			v.kind, v.value, v.unit
		FROM event e
		LEFT JOIN event_food f     ON f.event_id = e.id
		LEFT JOIN event_medicine m ON m.event_id = e.id
		LEFT JOIN event_vitals v   ON v.event_id = e.id
		WHERE e.household_uuid = $1
	`)

	args := []any{householdID}
	argN := 2

	// Rango [From, To): From inclusivo, To exclusivo.
	if f.From != nil {
		sb.WriteString(fmt.Sprintf(" AND e.ts >= $%d", argN))
		args = append(args, *f.From)
		argN++
	}
	if f.To != nil {
		sb.WriteString(fmt.Sprintf(" AND e.ts < $%d", argN))
		args = append(args, *f.To)
		argN++
	}

	sb.WriteString(" ORDER BY e.ts DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		var (
			e   events.Event
			typ string

			foodName, foodType, foodAmount, foodUnit, foodCalories sql.NullString
			medName, medDose                                       sql.NullString
			vitKind, vitValue, vitUnit                             sql.NullString
		)

		if err := rows.Scan(
			&e.ID,
			&e.HouseholdID,
			&e.PetID,
			&typ,
			&e.Timestamp,
			&e.CreatedAt,
			&e.CreatedBy,
			&foodName, &foodType, &foodAmount, &foodUnit, &foodCalories,
			&medName, &medDose,
			&vitKind, &vitValue, &vitUnit,
		); err != nil {
			return nil, err
		}

		e.Type = events.EventType(typ)
		switch e.Type {
		case events.EventTypeFood:
			e.Meta = events.FoodMeta{
				Name:     foodName.String,
				FoodType: foodType.String,
				Amount:   foodAmount.String,
				Unit:     foodUnit.String,
				Calories: foodCalories.String,
			}
		case events.EventTypeMedicine:
			e.Meta = events.MedicineMeta{
				Name: medName.String,
				Dose: medDose.String,
			}
		case events.EventTypeVitals:
			e.Meta = events.VitalsMeta{
				Kind:  vitKind.String,
				Value: vitValue.String,
				Unit:  vitUnit.String,
			}
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
