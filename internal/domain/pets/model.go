package pets

import (
	"fmt"
	"time"
)

// Species define las especies soportadas.
// @Enum cat, dog
type Species string

const (
	SpeciesCat Species = "cat"
	SpeciesDog Species = "dog"
)

// Pet es el perfil de una mascota dentro de un household.
type Pet struct {
	ID          string
	HouseholdID string

	Species Species
	Name    string

	BirthDate *time.Time
	PhotoAddr string // ícono; '' si no tiene foto

	CreatedAt time.Time
}

// Age es un valor derivado, no almacenado: meses si la edad es ≤ 2
// años (meses + años*12), si no años enteros. "" sin birthdate.
func (p Pet) Age(now time.Time) string {
	if p.BirthDate == nil {
		return ""
	}

	b := *p.BirthDate
	years := now.Year() - b.Year()
	months := int(now.Month()) - int(b.Month())
	if now.Day() < b.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		return ""
	}

	if years <= 2 {
		return fmt.Sprintf("%d months", months+years*12)
	}
	return fmt.Sprintf("%d years", years)
}
