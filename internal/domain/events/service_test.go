package events

import (
	"context"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	events []Event
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, e *Event) error {
	e.ID = r.nextID
	r.nextID++
	r.events = append(r.events, *e)
	return nil
}

func (r *testRepo) ListByHousehold(ctx context.Context, householdID string, f ListFilter) ([]Event, error) {
	out := make([]Event, 0)
	for _, e := range r.events {
		if e.HouseholdID != householdID {
			continue
		}
		if f.From != nil && e.Timestamp.Before(*f.From) {
			continue
		}
		if f.To != nil && !e.Timestamp.Before(*f.To) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

type testPetDir map[string]PetInfo

func (d testPetDir) ByHousehold(ctx context.Context, householdID string) (map[string]PetInfo, error) {
	return d, nil
}

// -------------------------
// Helpers
// -------------------------

var testLoc = time.UTC

func newTestService(repo *testRepo, dir testPetDir, now time.Time) *Service {
	svc := NewService(repo, dir, testLoc)
	svc.now = func() time.Time { return now }
	return svc
}

func seed(t *testing.T, repo *testRepo, typ EventType, pet string, ts time.Time, payload map[string]string) {
	t.Helper()
	if payload == nil {
		payload = map[string]string{}
	}
	if pet != "" {
		payload["pet"] = pet
	}
	e, err := NewEvent("hh-1", "user-1", typ, payload, &ts, func() time.Time { return ts })
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("seed create: %v", err)
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_AllEvents_NewestFirstWithPetInfo(t *testing.T) {
	repo := newTestRepo()
	dir := testPetDir{"pet-1": {Name: "Milo", Icon: "milo.png"}}
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, testLoc)
	svc := newTestService(repo, dir, now)

	seed(t, repo, EventTypeFood, "pet-1", now.Add(-2*time.Hour), map[string]string{"food-name": "Kibble"})
	seed(t, repo, EventTypeLitter, "", now.Add(-1*time.Hour), nil)

	rows, err := svc.AllEvents(context.Background(), "hh-1")
	if err != nil {
		t.Fatalf("AllEvents error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Type != EventTypeLitter {
		t.Fatalf("expected newest (litter) first, got %s", rows[0].Type)
	}
	if rows[0].PetName != "" || rows[0].Meta != nil {
		t.Fatalf("litter row should have no pet and no meta: %#v", rows[0])
	}
	if rows[1].PetName != "Milo" || rows[1].PetIcon != "milo.png" {
		t.Fatalf("expected pet info resolved, got %#v", rows[1])
	}
}

func TestService_AllEvents_EmptyHousehold(t *testing.T) {
	svc := newTestService(newTestRepo(), testPetDir{}, time.Now())

	rows, err := svc.AllEvents(context.Background(), "hh-1")
	if err != nil {
		t.Fatalf("AllEvents error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}

func TestService_Summary_LatestPerTypeAndPet(t *testing.T) {
	repo := newTestRepo()
	dir := testPetDir{
		"pet-1": {Name: "Milo", Icon: "milo.png"},
		"pet-2": {Name: "Luna", Icon: "luna.png"},
	}
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, testLoc)
	svc := newTestService(repo, dir, now)

	// Dos comidas de Milo: solo la más reciente debe sobrevivir.
	seed(t, repo, EventTypeFood, "pet-1", now.Add(-5*time.Hour), map[string]string{"food-name": "Old"})
	seed(t, repo, EventTypeFood, "pet-1", now.Add(-2*time.Hour), map[string]string{"food-name": "Fresh"})
	seed(t, repo, EventTypeFood, "pet-2", now.Add(-3*time.Hour), map[string]string{"food-name": "Pate"})
	seed(t, repo, EventTypeLitter, "", now.Add(-26*time.Hour), nil)
	seed(t, repo, EventTypeMedicine, "pet-1", now.Add(-30*time.Second), map[string]string{"medicine-name": "Gabapentin", "medicine-dose": "50mg"})

	rows, err := svc.Summary(context.Background(), "hh-1")
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 summary rows, got %d: %#v", len(rows), rows)
	}

	// Orden estable: tipo, luego nombre de mascota.
	wantOrder := []struct {
		typ  EventType
		pet  string
		ago  string
		meta string
	}{
		{EventTypeFood, "Luna", "3 hours ago", "Pate"},
		{EventTypeFood, "Milo", "2 hours ago", "Fresh"},
		// 26h: days=1 no alcanza la rama de días, el resto (2h) manda.
		{EventTypeLitter, "", "2 hours ago", ""},
		{EventTypeMedicine, "Milo", "30 seconds ago", "Gabapentin"},
	}

	for i, want := range wantOrder {
		got := rows[i]
		if got.Type != want.typ || got.PetName != want.pet {
			t.Fatalf("row %d: got (%s, %q), want (%s, %q)", i, got.Type, got.PetName, want.typ, want.pet)
		}
		if got.TimeAgo != want.ago {
			t.Fatalf("row %d: time_ago = %q, want %q", i, got.TimeAgo, want.ago)
		}
		if want.meta != "" && got.Meta["name"] != want.meta {
			t.Fatalf("row %d: meta name = %q, want %q", i, got.Meta["name"], want.meta)
		}
	}
}

func TestService_DayView_FoodSumsCaloriesPerPet(t *testing.T) {
	repo := newTestRepo()
	dir := testPetDir{"pet-1": {Name: "Milo", Icon: "milo.png"}}
	now := time.Date(2026, 3, 15, 22, 0, 0, 0, testLoc)
	svc := newTestService(repo, dir, now)

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	seed(t, repo, EventTypeFood, "pet-1", day.Add(8*time.Hour), map[string]string{"food-calories": "150"})
	seed(t, repo, EventTypeFood, "pet-1", day.Add(13*time.Hour), map[string]string{}) // sin calorías: aporta 0
	seed(t, repo, EventTypeFood, "pet-1", day.Add(14*time.Hour), map[string]string{"food-calories": "n/a"})
	seed(t, repo, EventTypeFood, "pet-1", day.Add(19*time.Hour), map[string]string{"food-calories": "200"})

	agg, err := svc.DayView(context.Background(), "hh-1", now)
	if err != nil {
		t.Fatalf("DayView error: %v", err)
	}

	key := PetKey{Name: "Milo", Icon: "milo.png"}
	if got := agg.Food[key]; got != 350 {
		t.Fatalf("expected 350 calories, got %v", got)
	}
	if agg.Litter != nil || agg.Medicine != nil || agg.Vitals != nil {
		t.Fatalf("types without events must stay nil: %#v", agg)
	}
}

func TestService_DayView_CountsAndDayBoundary(t *testing.T) {
	repo := newTestRepo()
	dir := testPetDir{"pet-1": {Name: "Milo", Icon: ""}}
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, testLoc)
	svc := newTestService(repo, dir, now)

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	seed(t, repo, EventTypeLitter, "", day, nil)                       // medianoche: inclusivo
	seed(t, repo, EventTypeLitter, "", day.Add(10*time.Hour), nil)
	seed(t, repo, EventTypeLitter, "", day.AddDate(0, 0, 1), nil)      // medianoche siguiente: exclusivo
	seed(t, repo, EventTypeMedicine, "pet-1", day.Add(9*time.Hour), map[string]string{"medicine-name": "Drops", "medicine-dose": "2"})
	seed(t, repo, EventTypeVitals, "pet-1", day.Add(11*time.Hour), map[string]string{"vitals-kind": "weight"})

	agg, err := svc.DayView(context.Background(), "hh-1", now)
	if err != nil {
		t.Fatalf("DayView error: %v", err)
	}

	if got := agg.Litter[PetKey{}]; got != 2 {
		t.Fatalf("expected 2 litter events inside the day, got %d", got)
	}
	milo := PetKey{Name: "Milo"}
	if agg.Medicine[milo] != 1 || agg.Vitals[milo] != 1 {
		t.Fatalf("expected 1 medicine + 1 vitals for Milo, got %#v", agg)
	}
}

func TestService_DaysView_SkipsEmptyDaysUpToTwiceLimit(t *testing.T) {
	repo := newTestRepo()
	dir := testPetDir{"pet-1": {Name: "Milo", Icon: "milo.png"}}
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, testLoc)
	svc := newTestService(repo, dir, now)

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	seed(t, repo, EventTypeLitter, "", today.Add(8*time.Hour), nil)
	seed(t, repo, EventTypeFood, "pet-1", today.AddDate(0, 0, -1).Add(9*time.Hour), map[string]string{"food-calories": "100"})
	// hueco de dos días, luego un día con medicina
	seed(t, repo, EventTypeMedicine, "pet-1", today.AddDate(0, 0, -4).Add(20*time.Hour), map[string]string{"medicine-name": "Drops", "medicine-dose": "1ml"})
	// demasiado atrás: con limit=3 se examinan 6 días (hasta el 10), este queda afuera
	seed(t, repo, EventTypeLitter, "", today.AddDate(0, 0, -8), nil)

	days, err := svc.DaysView(context.Background(), "hh-1", now, 3)
	if err != nil {
		t.Fatalf("DaysView error: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days with data, got %d: %#v", len(days), days)
	}

	if days[0].Label != "Today" || days[0].Date != "2026-03-15" {
		t.Fatalf("day 0: got (%q, %q)", days[0].Label, days[0].Date)
	}
	if days[1].Label != "Yesterday" || days[1].Date != "2026-03-14" {
		t.Fatalf("day 1: got (%q, %q)", days[1].Label, days[1].Date)
	}
	if days[2].Label != "Mar 11" || days[2].Date != "2026-03-11" {
		t.Fatalf("day 2: got (%q, %q)", days[2].Label, days[2].Date)
	}

	// Claves aplanadas "nombre|||ícono".
	if _, ok := days[1].Food["Milo|||milo.png"]; !ok {
		t.Fatalf("expected flattened pet key in food map, got %#v", days[1].Food)
	}

	// Medicina conserva registros {name, dose}, no conteos.
	recs := days[2].Medicine["Milo|||milo.png"]
	if len(recs) != 1 || recs[0].Name != "Drops" || recs[0].Dose != "1ml" {
		t.Fatalf("expected medicine records, got %#v", recs)
	}
}

func TestService_DaysView_ScanCapBeatsLimit(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, testLoc)
	svc := newTestService(repo, testPetDir{}, now)

	// Solo 2 días con datos dentro de la ventana de 2×limit (10 días);
	// el tercero queda 11 días atrás, fuera del alcance del escaneo.
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	seed(t, repo, EventTypeLitter, "", today.Add(time.Hour), nil)
	seed(t, repo, EventTypeLitter, "", today.AddDate(0, 0, -3).Add(time.Hour), nil)
	seed(t, repo, EventTypeLitter, "", today.AddDate(0, 0, -11).Add(time.Hour), nil)

	days, err := svc.DaysView(context.Background(), "hh-1", now, 5)
	if err != nil {
		t.Fatalf("DaysView error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected scan to stop after 10 days with 2 records, got %d: %#v", len(days), days)
	}
	if days[0].Date != "2026-03-15" || days[1].Date != "2026-03-12" {
		t.Fatalf("unexpected days: (%q, %q)", days[0].Date, days[1].Date)
	}
}

func TestService_DaysView_StopsAtLimit(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, testLoc)
	svc := newTestService(repo, testPetDir{}, now)

	today := time.Date(2026, 3, 15, 0, 0, 0, 0, testLoc)
	for i := 0; i < 5; i++ {
		seed(t, repo, EventTypeLitter, "", today.AddDate(0, 0, -i).Add(time.Hour), nil)
	}

	days, err := svc.DaysView(context.Background(), "hh-1", now, 2)
	if err != nil {
		t.Fatalf("DaysView error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected limit to cap result at 2, got %d", len(days))
	}
}

func TestService_Log_PersistsThroughRepo(t *testing.T) {
	repo := newTestRepo()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, testLoc)
	svc := newTestService(repo, testPetDir{}, now)

	e, err := svc.Log(context.Background(), "hh-1", "user-1", EventTypeFood, map[string]string{
		"pet":           "pet-1",
		"food-calories": "80",
	}, nil)
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if e.ID == 0 {
		t.Fatalf("expected repo to assign an ID")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(repo.events))
	}
}

func TestService_Log_RejectsBlankIdentity(t *testing.T) {
	svc := newTestService(newTestRepo(), testPetDir{}, time.Now())

	if _, err := svc.Log(context.Background(), "", "user-1", EventTypeLitter, nil, nil); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank household, got %v", err)
	}
	if _, err := svc.Log(context.Background(), "hh-1", "  ", EventTypeLitter, nil, nil); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank user, got %v", err)
	}
}
