package events

import (
	"errors"
	"strings"
)

type EventType string

const (
	EventTypeFood     EventType = "Food"
	EventTypeLitter   EventType = "Litter"
	EventTypeMedicine EventType = "Medicine"
	EventTypeVitals   EventType = "Vitals"
)

var (
	ErrInvalidEventType   = errors.New("invalid event type")
	ErrMalformedEventType = errors.New("malformed event type")
)

// ParseEventType acepta el nombre del tipo ("Food") o su código numérico
// histórico ("1".."4", heredado de los formularios viejos).
func ParseEventType(s string) (EventType, error) {
	switch strings.TrimSpace(s) {
	case "Food", "food", "1":
		return EventTypeFood, nil
	case "Litter", "litter", "2":
		return EventTypeLitter, nil
	case "Medicine", "medicine", "3":
		return EventTypeMedicine, nil
	case "Vitals", "vitals", "4":
		return EventTypeVitals, nil
	default:
		return "", ErrMalformedEventType
	}
}

// IsValid reporta si t es uno de los cuatro tipos soportados.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeFood, EventTypeLitter, EventTypeMedicine, EventTypeVitals:
		return true
	}
	return false
}

// HasPet reporta si el tipo lleva mascota asociada.
// Litter nunca lleva mascota, aunque el payload la traiga.
func (t EventType) HasPet() bool {
	return t == EventTypeFood || t == EventTypeMedicine || t == EventTypeVitals
}

type FoodType string

const (
	FoodTypeWet    FoodType = "wet"
	FoodTypeDry    FoodType = "dry"
	FoodTypeTreats FoodType = "treats"
	FoodTypeOther  FoodType = "other"
)

type FoodUnit string

const (
	UnitGrams FoodUnit = "grams"
	UnitCups  FoodUnit = "cups"
	UnitOz    FoodUnit = "oz"
	UnitCans  FoodUnit = "cans"
)

type VitalsKind string

const (
	VitalsWeight VitalsKind = "weight"
	VitalsLength VitalsKind = "length"
)
