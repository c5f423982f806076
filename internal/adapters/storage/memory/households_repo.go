package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-care-tracker/internal/domain/households"
)

type householdRepo struct {
	mu      sync.RWMutex
	byID    map[string]households.Household
	members []households.Member
	nextID  int64
}

func NewHouseholdRepo() households.Repository {
	return &householdRepo{
		byID: make(map[string]households.Household),
	}
}

func (r *householdRepo) Create(ctx context.Context, h households.Household) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.ID == "" {
		return errors.New("household id required")
	}
	if _, exists := r.byID[h.ID]; exists {
		return errors.New("household already exists")
	}

	r.byID[h.ID] = h
	return nil
}

func (r *householdRepo) GetByID(ctx context.Context, id string) (households.Household, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return households.Household{}, ErrNotFound
	}
	return h, nil
}

func (r *householdRepo) AddMember(ctx context.Context, m households.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.HouseholdID]; !ok {
		return ErrNotFound
	}
	for _, existing := range r.members {
		if existing.UserID == m.UserID && existing.HouseholdID == m.HouseholdID {
			return nil // ya es miembro, idempotente
		}
	}

	r.nextID++
	m.ID = r.nextID
	r.members = append(r.members, m)
	return nil
}

func (r *householdRepo) ListForUser(ctx context.Context, userID string) ([]households.Household, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]households.Household, 0)
	for _, m := range r.members {
		if m.UserID != userID {
			continue
		}
		if h, ok := r.byID[m.HouseholdID]; ok {
			out = append(out, h)
		}
	}

	// Más antiguo primero: el orden de alta es el orden de los ids.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *householdRepo) ListMembers(ctx context.Context, householdID string) ([]households.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]households.Member, 0)
	for _, m := range r.members {
		if m.HouseholdID == householdID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *householdRepo) IsMember(ctx context.Context, householdID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.HouseholdID == householdID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}
