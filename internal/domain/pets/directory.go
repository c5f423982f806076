package pets

import (
	"context"

	"pet-care-tracker/internal/domain/events"
)

// Directory adapta el repo de pets al PetDirectory que consume el
// motor de agregación (id → nombre/ícono, una sola consulta por vista).
type Directory struct {
	repo Repository
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) ByHousehold(ctx context.Context, householdID string) (map[string]events.PetInfo, error) {
	ps, err := d.repo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]events.PetInfo, len(ps))
	for _, p := range ps {
		out[p.ID] = events.PetInfo{
			Name: p.Name,
			Icon: p.PhotoAddr,
		}
	}
	return out, nil
}
