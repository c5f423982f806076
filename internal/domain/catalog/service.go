package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateName = errors.New("an entry with that name already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateFoodInput struct {
	Name        string
	FoodType    string
	ServingSize float64
	Unit        string
	Calories    int
}

// CreateFood crea la entrada; (household, nombre) es único.
func (s *Service) CreateFood(ctx context.Context, householdID string, in CreateFoodInput) (FoodItem, error) {
	name := strings.TrimSpace(in.Name)
	if strings.TrimSpace(householdID) == "" || name == "" {
		return FoodItem{}, ErrInvalidInput
	}

	exists, err := s.repo.FoodExists(ctx, householdID, name)
	if err != nil {
		return FoodItem{}, err
	}
	if exists {
		return FoodItem{}, ErrDuplicateName
	}

	f := FoodItem{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Name:        name,
		FoodType:    strings.TrimSpace(in.FoodType),
		ServingSize: in.ServingSize,
		Unit:        strings.TrimSpace(in.Unit),
		Calories:    in.Calories,
	}

	if err := s.repo.CreateFood(ctx, f); err != nil {
		return FoodItem{}, err
	}
	return f, nil
}

func (s *Service) ListFood(ctx context.Context, householdID string, activeOnly bool) ([]FoodItem, error) {
	return s.repo.ListFood(ctx, householdID, activeOnly)
}

// ArchiveFood marca la entrada como archivada (soft delete).
func (s *Service) ArchiveFood(ctx context.Context, householdID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.ArchiveFood(ctx, householdID, id)
}

func (s *Service) CreateMedicine(ctx context.Context, householdID, name string) (MedicineItem, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(householdID) == "" || name == "" {
		return MedicineItem{}, ErrInvalidInput
	}

	exists, err := s.repo.MedicineExists(ctx, householdID, name)
	if err != nil {
		return MedicineItem{}, err
	}
	if exists {
		return MedicineItem{}, ErrDuplicateName
	}

	m := MedicineItem{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Name:        name,
	}

	if err := s.repo.CreateMedicine(ctx, m); err != nil {
		return MedicineItem{}, err
	}
	return m, nil
}

func (s *Service) ListMedicine(ctx context.Context, householdID string, activeOnly bool) ([]MedicineItem, error) {
	return s.repo.ListMedicine(ctx, householdID, activeOnly)
}

func (s *Service) ArchiveMedicine(ctx context.Context, householdID, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.ArchiveMedicine(ctx, householdID, id)
}
