package savedevents

import "pet-care-tracker/internal/domain/events"

// SavedEvent es un "favorito": una plantilla con nombre de tipo de
// evento + meta, por household y con mascota opcional, para volver a
// loguear rápido sin recargar el formulario.
type SavedEvent struct {
	ID          string
	HouseholdID string
	PetID       *string

	Name string
	Type events.EventType
	Meta map[string]string // payload en formato de formulario
}
