package households

import "context"

type Repository interface {
	Create(ctx context.Context, h Household) error
	GetByID(ctx context.Context, id string) (Household, error)

	AddMember(ctx context.Context, m Member) error
	// ListForUser devuelve los households del usuario, más antiguo
	// primero (el primero es el "principal").
	ListForUser(ctx context.Context, userID string) ([]Household, error)
	ListMembers(ctx context.Context, householdID string) ([]Member, error)
	IsMember(ctx context.Context, householdID, userID string) (bool, error)
}
