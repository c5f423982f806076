package events

import (
	"context"
	"time"
)

type Repository interface {
	// Create persiste el evento y su meta como unidad atómica,
	// y asigna e.ID. Si falla cualquier parte, no queda nada.
	Create(ctx context.Context, e *Event) error

	// ListByHousehold devuelve eventos del household ordenados por
	// timestamp descendente (más reciente primero).
	ListByHousehold(ctx context.Context, householdID string, f ListFilter) ([]Event, error)
}

type ListFilter struct {
	// From inclusivo, To exclusivo (rangos [From, To)).
	From *time.Time
	To   *time.Time
}

// PetInfo es lo mínimo que la agregación necesita de una mascota.
type PetInfo struct {
	Name string
	Icon string // photo_addr; '' si no tiene
}

// PetDirectory resuelve nombres/íconos de mascotas de un household.
// Lo implementa el módulo de pets; acá solo se consume.
type PetDirectory interface {
	ByHousehold(ctx context.Context, householdID string) (map[string]PetInfo, error)
}
