package households

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoHousehold  = errors.New("no household for user")
	ErrNotMember    = errors.New("user is not a member of the household")
)

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
	Name  string
	Email string
}

// Create crea el household y agrega al creador como primer miembro.
func (s *Service) Create(ctx context.Context, creatorUserID string, in CreateInput) (Household, error) {
	if strings.TrimSpace(creatorUserID) == "" {
		return Household{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Household{}, ErrInvalidInput
	}

	h := Household{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return Household{}, err
	}

	if err := s.repo.AddMember(ctx, Member{
		UserID:      creatorUserID,
		HouseholdID: h.ID,
		AddedAt:     s.now(),
	}); err != nil {
		return Household{}, err
	}

	return h, nil
}

// AddMember agrega un usuario; solo un miembro existente puede invitar.
func (s *Service) AddMember(ctx context.Context, householdID, userID, byUserID string) error {
	if strings.TrimSpace(householdID) == "" || strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}

	ok, err := s.repo.IsMember(ctx, householdID, byUserID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotMember
	}

	return s.repo.AddMember(ctx, Member{
		UserID:      strings.TrimSpace(userID),
		HouseholdID: householdID,
		AddedAt:     s.now(),
	})
}

// HouseholdFor resuelve el household del usuario autenticado (el
// primero si tiene varios). Este es el id que se enhebra explícito a
// todas las operaciones del core.
func (s *Service) HouseholdFor(ctx context.Context, userID string) (Household, error) {
	if strings.TrimSpace(userID) == "" {
		return Household{}, ErrInvalidInput
	}

	hhs, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return Household{}, err
	}
	if len(hhs) == 0 {
		return Household{}, ErrNoHousehold
	}
	return hhs[0], nil
}

// Members lista los miembros; solo visible para otro miembro.
func (s *Service) Members(ctx context.Context, householdID, requesterID string) ([]Member, error) {
	ok, err := s.repo.IsMember(ctx, householdID, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}
	return s.repo.ListMembers(ctx, householdID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Household, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Household{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
