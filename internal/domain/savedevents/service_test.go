package savedevents

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-tracker/internal/domain/events"
)

// -------------------------
// Test repos (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]SavedEvent
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]SavedEvent{}}
}

func (r *testRepo) Create(ctx context.Context, se SavedEvent) error {
	r.byID[se.ID] = se
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (SavedEvent, error) {
	se, ok := r.byID[id]
	if !ok {
		return SavedEvent{}, errRepoNotFound
	}
	return se, nil
}

func (r *testRepo) ListByHousehold(ctx context.Context, householdID string) ([]SavedEvent, error) {
	out := make([]SavedEvent, 0)
	for _, se := range r.byID {
		if se.HouseholdID == householdID {
			out = append(out, se)
		}
	}
	return out, nil
}

type testEventRepo struct {
	events []events.Event
}

func (r *testEventRepo) Create(ctx context.Context, e *events.Event) error {
	e.ID = int64(len(r.events) + 1)
	r.events = append(r.events, *e)
	return nil
}

func (r *testEventRepo) ListByHousehold(ctx context.Context, householdID string, f events.ListFilter) ([]events.Event, error) {
	return r.events, nil
}

type testPetDir map[string]events.PetInfo

func (d testPetDir) ByHousehold(ctx context.Context, householdID string) (map[string]events.PetInfo, error) {
	return d, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AttachesPetOnlyForPetTypes(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	se, err := svc.Create(context.Background(), "hh-1", CreateInput{
		Name:  "Morning kibble",
		Type:  events.EventTypeFood,
		PetID: "pet-1",
		Meta:  map[string]string{"food-name": "Kibble", "food-calories": "80"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if se.PetID == nil || *se.PetID != "pet-1" {
		t.Fatalf("expected pet attached, got %v", se.PetID)
	}

	litter, err := svc.Create(context.Background(), "hh-1", CreateInput{
		Name:  "Scoop",
		Type:  events.EventTypeLitter,
		PetID: "pet-1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if litter.PetID != nil {
		t.Fatalf("expected no pet for litter template, got %q", *litter.PetID)
	}
}

func TestService_Create_RejectsInvalidType(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	_, err := svc.Create(context.Background(), "hh-1", CreateInput{
		Name: "Bad",
		Type: events.EventType("Grooming"),
	})
	if !errors.Is(err, events.ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}
}

func TestService_ListByHousehold_ResolvesPetInfo(t *testing.T) {
	repo := newTestRepo()
	dir := testPetDir{"pet-1": {Name: "Milo", Icon: "milo.png"}}
	svc := NewService(repo, nil, dir)

	if _, err := svc.Create(context.Background(), "hh-1", CreateInput{
		Name:  "Morning kibble",
		Type:  events.EventTypeFood,
		PetID: "pet-1",
	}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	rows, err := svc.ListByHousehold(context.Background(), "hh-1")
	if err != nil {
		t.Fatalf("ListByHousehold error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PetName != "Milo" || rows[0].PetIcon != "milo.png" {
		t.Fatalf("expected pet info resolved, got %#v", rows[0])
	}
}

func TestService_Log_InstantiatesEventFromTemplate(t *testing.T) {
	repo := newTestRepo()
	evRepo := &testEventRepo{}
	evSvc := events.NewService(evRepo, nil, time.UTC)
	svc := NewService(repo, evSvc, nil)

	se, err := svc.Create(context.Background(), "hh-1", CreateInput{
		Name:  "Morning kibble",
		Type:  events.EventTypeFood,
		PetID: "pet-1",
		Meta:  map[string]string{"food-name": "Kibble", "food-calories": "80"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	e, err := svc.Log(context.Background(), "hh-1", se.ID, "user-1")
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if e.Type != events.EventTypeFood {
		t.Fatalf("expected food event, got %s", e.Type)
	}
	if e.PetID == nil || *e.PetID != "pet-1" {
		t.Fatalf("expected pet carried from template, got %v", e.PetID)
	}
	m := events.MetaMap(e.Meta)
	if m["name"] != "Kibble" || m["calories"] != "80" {
		t.Fatalf("expected template meta carried over, got %#v", m)
	}
	if len(evRepo.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(evRepo.events))
	}
}

func TestService_Log_WrongHouseholdIsNotFound(t *testing.T) {
	repo := newTestRepo()
	evSvc := events.NewService(&testEventRepo{}, nil, time.UTC)
	svc := NewService(repo, evSvc, nil)

	se, err := svc.Create(context.Background(), "hh-1", CreateInput{
		Name: "Scoop",
		Type: events.EventTypeLitter,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Log(context.Background(), "hh-2", se.ID, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign household, got %v", err)
	}
}
