package events

import (
	"errors"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
}

func TestNewEvent_Food_BuildsMetaAndPet(t *testing.T) {
	e, err := NewEvent("hh-1", "user-1", EventTypeFood, map[string]string{
		"pet":           "pet-1",
		"food-name":     "Salmon Feast",
		"food-type":     "wet",
		"food-amount":   "1",
		"food-unit":     "cans",
		"food-calories": "95",
	}, nil, fixedNow)
	if err != nil {
		t.Fatalf("NewEvent error: %v", err)
	}

	if e.PetID == nil || *e.PetID != "pet-1" {
		t.Fatalf("expected pet attached, got %v", e.PetID)
	}
	if e.Timestamp != fixedNow() || e.CreatedAt != fixedNow() {
		t.Fatalf("expected now() for timestamp and created_at")
	}

	m := MetaMap(e.Meta)
	want := map[string]string{
		"name":     "Salmon Feast",
		"type":     "wet",
		"amount":   "1",
		"unit":     "cans",
		"calories": "95",
	}
	for k, v := range want {
		if m[k] != v {
			t.Fatalf("meta[%q] = %q, want %q", k, m[k], v)
		}
	}
	if len(m) != len(want) {
		t.Fatalf("meta has extra keys: %#v", m)
	}
}

func TestNewEvent_Litter_DropsPetAndMeta(t *testing.T) {
	e, err := NewEvent("hh-1", "user-1", EventTypeLitter, map[string]string{
		"pet": "pet-1", // viene en el form, pero Litter no lleva mascota
	}, nil, fixedNow)
	if err != nil {
		t.Fatalf("NewEvent error: %v", err)
	}
	if e.PetID != nil {
		t.Fatalf("expected no pet for litter, got %q", *e.PetID)
	}
	if e.Meta != nil {
		t.Fatalf("expected nil meta for litter, got %#v", e.Meta)
	}
}

func TestNewEvent_Medicine_MissingFieldsAreEmptyNotError(t *testing.T) {
	e, err := NewEvent("hh-1", "user-1", EventTypeMedicine, map[string]string{
		"medicine-name": "Gabapentin",
	}, nil, fixedNow)
	if err != nil {
		t.Fatalf("NewEvent error: %v", err)
	}

	m, ok := e.Meta.(MedicineMeta)
	if !ok {
		t.Fatalf("expected MedicineMeta, got %#v", e.Meta)
	}
	if m.Name != "Gabapentin" || m.Dose != "" {
		t.Fatalf("unexpected meta: %#v", m)
	}
}

func TestNewEvent_Vitals_AttachesPet(t *testing.T) {
	e, err := NewEvent("hh-1", "user-1", EventTypeVitals, map[string]string{
		"pet":          "pet-2",
		"vitals-kind":  "weight",
		"vitals-value": "4.2",
		"vitals-unit":  "kg",
	}, nil, fixedNow)
	if err != nil {
		t.Fatalf("NewEvent error: %v", err)
	}
	if e.PetID == nil || *e.PetID != "pet-2" {
		t.Fatalf("expected pet attached for vitals, got %v", e.PetID)
	}
}

func TestNewEvent_ExplicitTimestampWins(t *testing.T) {
	back := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	e, err := NewEvent("hh-1", "user-1", EventTypeLitter, nil, &back, fixedNow)
	if err != nil {
		t.Fatalf("NewEvent error: %v", err)
	}
	if !e.Timestamp.Equal(back) {
		t.Fatalf("expected backdated timestamp, got %v", e.Timestamp)
	}
	if !e.CreatedAt.Equal(fixedNow()) {
		t.Fatalf("expected CreatedAt = now even when backdated")
	}
}

func TestNewEvent_InvalidType(t *testing.T) {
	_, err := NewEvent("hh-1", "user-1", EventType("Grooming"), nil, nil, fixedNow)
	if !errors.Is(err, ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}
}

func TestParseEventType_NamesAndLegacyCodes(t *testing.T) {
	cases := map[string]EventType{
		"Food":     EventTypeFood,
		"litter":   EventTypeLitter,
		"3":        EventTypeMedicine,
		"4":        EventTypeVitals,
		" Vitals ": EventTypeVitals,
	}
	for in, want := range cases {
		got, err := ParseEventType(in)
		if err != nil {
			t.Fatalf("ParseEventType(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseEventType(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseEventType("5"); !errors.Is(err, ErrMalformedEventType) {
		t.Fatalf("expected ErrMalformedEventType for unknown code, got %v", err)
	}
}
