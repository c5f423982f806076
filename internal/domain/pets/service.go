package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	BirthDate *time.Time
	PhotoAddr string
}

func (s *Service) Create(ctx context.Context, householdID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(householdID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}

	sp := Species(strings.ToLower(strings.TrimSpace(in.Species)))
	if sp != SpeciesCat && sp != SpeciesDog {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Species:     sp,
		Name:        strings.TrimSpace(in.Name),
		BirthDate:   in.BirthDate,
		PhotoAddr:   strings.TrimSpace(in.PhotoAddr),
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByHousehold(ctx context.Context, householdID string) ([]Pet, error) {
	return s.repo.ListByHousehold(ctx, householdID)
}
