package events

import "time"

// Event es una acción de cuidado registrada (comida, arenero, medicina,
// vitales). Pertenece siempre a un household; la mascota es opcional
// según el tipo. Los eventos son inmutables una vez guardados.
type Event struct {
	ID          int64
	HouseholdID string
	PetID       *string // nil para Litter

	Type EventType

	// Timestamp es cuándo ocurrió el evento (puede ser backdated).
	// CreatedAt es cuándo se registró.
	Timestamp time.Time
	CreatedAt time.Time
	CreatedBy string

	Meta Meta // nil para Litter
}
