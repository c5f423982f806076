package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-tracker/internal/domain/events"
)

type eventRepo struct {
	mu     sync.RWMutex
	byID   map[int64]events.Event
	nextID int64
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[int64]events.Event),
	}
}

func (r *eventRepo) Create(ctx context.Context, e *events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// En memoria la unidad atómica es trivial: un solo insert.
	r.nextID++
	e.ID = r.nextID
	r.byID[e.ID] = *e
	return nil
}

func (r *eventRepo) ListByHousehold(ctx context.Context, householdID string, f events.ListFilter) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, e := range r.byID {
		if e.HouseholdID != householdID {
			continue
		}

		// Rango [From, To): From inclusivo, To exclusivo.
		if f.From != nil && e.Timestamp.Before(*f.From) {
			continue
		}
		if f.To != nil && !e.Timestamp.Before(*f.To) {
			continue
		}

		out = append(out, e)
	}

	// Más reciente primero.
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}
