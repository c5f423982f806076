package households

import "time"

// Household agrupa usuarios y mascotas que comparten un log de
// cuidado. Es el límite de tenencia de todo el sistema: ninguna vista
// cruza households.
type Household struct {
	ID    string
	Name  string
	Email string

	CreatedAt time.Time
}

// Member vincula un usuario (id externo del IAM) con un household.
// Muchos-a-muchos: un usuario puede estar en varios households.
type Member struct {
	ID          int64
	UserID      string
	HouseholdID string

	AddedAt time.Time
}
