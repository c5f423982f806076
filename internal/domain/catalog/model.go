package catalog

// Entradas de catálogo: plantillas con nombre, por household, que el
// usuario elige al cargar un evento nuevo. Se crean una vez y no se
// mutan, salvo el archivado (flag booleano, sin tombstones ni
// versionado).

// FoodItem es una comida conocida del household con su info
// nutricional de referencia.
type FoodItem struct {
	ID          string
	HouseholdID string

	Name        string
	FoodType    string // wet, dry, treats, other
	ServingSize float64
	Unit        string // grams, cups, oz, cans
	Calories    int

	Archived bool
}

// CalorieCount calcula las calorías para una cantidad dada, en
// proporción al serving de referencia.
func (f FoodItem) CalorieCount(amt float64) int {
	if f.ServingSize == 0 {
		return 0
	}
	return int(float64(f.Calories) * amt / f.ServingSize)
}

// MedicineItem es una medicina conocida del household.
type MedicineItem struct {
	ID          string
	HouseholdID string

	Name string

	Archived bool
}
