package savedevents

import "context"

type Repository interface {
	Create(ctx context.Context, se SavedEvent) error
	GetByID(ctx context.Context, id string) (SavedEvent, error)
	ListByHousehold(ctx context.Context, householdID string) ([]SavedEvent, error)
}
