package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-care-tracker/internal/domain/savedevents"
)

type savedEventRepo struct {
	mu   sync.RWMutex
	byID map[string]savedevents.SavedEvent
}

func NewSavedEventRepo() savedevents.Repository {
	return &savedEventRepo{
		byID: make(map[string]savedevents.SavedEvent),
	}
}

func (r *savedEventRepo) Create(ctx context.Context, se savedevents.SavedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if se.ID == "" {
		return errors.New("saved event id required")
	}
	r.byID[se.ID] = se
	return nil
}

func (r *savedEventRepo) GetByID(ctx context.Context, id string) (savedevents.SavedEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	se, ok := r.byID[id]
	if !ok {
		return savedevents.SavedEvent{}, ErrNotFound
	}
	return se, nil
}

func (r *savedEventRepo) ListByHousehold(ctx context.Context, householdID string) ([]savedevents.SavedEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]savedevents.SavedEvent, 0)
	for _, se := range r.byID {
		if se.HouseholdID == householdID {
			out = append(out, se)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}
