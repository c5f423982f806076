package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pet-care-tracker/internal/domain/catalog"
)

type catalogRepo struct {
	mu        sync.RWMutex
	foods     map[string]catalog.FoodItem
	medicines map[string]catalog.MedicineItem
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		foods:     make(map[string]catalog.FoodItem),
		medicines: make(map[string]catalog.MedicineItem),
	}
}

func (r *catalogRepo) CreateFood(ctx context.Context, f catalog.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.foods[f.ID] = f
	return nil
}

func (r *catalogRepo) ListFood(ctx context.Context, householdID string, activeOnly bool) ([]catalog.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.FoodItem, 0)
	for _, f := range r.foods {
		if f.HouseholdID != householdID {
			continue
		}
		if activeOnly && f.Archived {
			continue
		}
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *catalogRepo) FoodExists(ctx context.Context, householdID, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.foods {
		if f.HouseholdID == householdID && strings.EqualFold(f.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *catalogRepo) ArchiveFood(ctx context.Context, householdID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.foods[id]
	if !ok || f.HouseholdID != householdID {
		return ErrNotFound
	}
	f.Archived = true
	r.foods[id] = f
	return nil
}

func (r *catalogRepo) CreateMedicine(ctx context.Context, m catalog.MedicineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.medicines[m.ID] = m
	return nil
}

func (r *catalogRepo) ListMedicine(ctx context.Context, householdID string, activeOnly bool) ([]catalog.MedicineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.MedicineItem, 0)
	for _, m := range r.medicines {
		if m.HouseholdID != householdID {
			continue
		}
		if activeOnly && m.Archived {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *catalogRepo) MedicineExists(ctx context.Context, householdID, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.medicines {
		if m.HouseholdID == householdID && strings.EqualFold(m.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *catalogRepo) ArchiveMedicine(ctx context.Context, householdID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.medicines[id]
	if !ok || m.HouseholdID != householdID {
		return ErrNotFound
	}
	m.Archived = true
	r.medicines[id] = m
	return nil
}
