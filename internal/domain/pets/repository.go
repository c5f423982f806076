package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByHousehold(ctx context.Context, householdID string) ([]Pet, error)
}
