package events

import (
	"strings"
	"time"
)

// NewEvent construye un Event canónico a partir de un payload suelto
// (campo → valor, tal cual llega del formulario).
//
// - timestamp: si ts == nil se usa now() (hora de la app).
// - pet: solo para tipos que llevan mascota (Food/Medicine/Vitals);
//   Litter la descarta aunque venga en el payload.
// - meta: se extraen exactamente los campos del tipo; los que falten
//   quedan vacíos, no son error.
//
// Construcción pura: persistir es responsabilidad del caller, y debe
// ser atómica (evento + tabla lateral en una sola transacción).
func NewEvent(householdID, createdBy string, typ EventType, payload map[string]string, ts *time.Time, now func() time.Time) (*Event, error) {
	if !typ.IsValid() {
		return nil, ErrInvalidEventType
	}

	n := now()

	e := &Event{
		HouseholdID: householdID,
		Type:        typ,
		Timestamp:   n,
		CreatedAt:   n,
		CreatedBy:   createdBy,
	}
	if ts != nil && !ts.IsZero() {
		e.Timestamp = *ts
	}

	if typ.HasPet() {
		if pet := strings.TrimSpace(payload["pet"]); pet != "" {
			e.PetID = &pet
		}
	}

	switch typ {
	case EventTypeFood:
		e.Meta = FoodMeta{
			Name:     payload["food-name"],
			FoodType: payload["food-type"],
			Amount:   payload["food-amount"],
			Unit:     payload["food-unit"],
			Calories: payload["food-calories"],
		}
	case EventTypeMedicine:
		e.Meta = MedicineMeta{
			Name: payload["medicine-name"],
			Dose: payload["medicine-dose"],
		}
	case EventTypeVitals:
		e.Meta = VitalsMeta{
			Kind:  payload["vitals-kind"],
			Value: payload["vitals-value"],
			Unit:  payload["vitals-unit"],
		}
	case EventTypeLitter:
		// sin meta por ahora para este tipo de evento
	}

	return e, nil
}
