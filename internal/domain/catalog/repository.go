package catalog

import "context"

type Repository interface {
	CreateFood(ctx context.Context, f FoodItem) error
	ListFood(ctx context.Context, householdID string, activeOnly bool) ([]FoodItem, error)
	FoodExists(ctx context.Context, householdID, name string) (bool, error)
	ArchiveFood(ctx context.Context, householdID, id string) error

	CreateMedicine(ctx context.Context, m MedicineItem) error
	ListMedicine(ctx context.Context, householdID string, activeOnly bool) ([]MedicineItem, error)
	MedicineExists(ctx context.Context, householdID, name string) (bool, error)
	ArchiveMedicine(ctx context.Context, householdID, id string) error
}
