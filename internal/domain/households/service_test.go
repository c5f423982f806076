package households

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID    map[string]Household
	members []Member
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Household{}}
}

func (r *testRepo) Create(ctx context.Context, h Household) error {
	r.byID[h.ID] = h
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Household, error) {
	h, ok := r.byID[id]
	if !ok {
		return Household{}, errRepoNotFound
	}
	return h, nil
}

func (r *testRepo) AddMember(ctx context.Context, m Member) error {
	for _, ex := range r.members {
		if ex.UserID == m.UserID && ex.HouseholdID == m.HouseholdID {
			return nil // idempotente
		}
	}
	r.members = append(r.members, m)
	return nil
}

func (r *testRepo) ListForUser(ctx context.Context, userID string) ([]Household, error) {
	out := make([]Household, 0)
	for _, m := range r.members {
		if m.UserID == userID {
			out = append(out, r.byID[m.HouseholdID])
		}
	}
	return out, nil
}

func (r *testRepo) ListMembers(ctx context.Context, householdID string) ([]Member, error) {
	out := make([]Member, 0)
	for _, m := range r.members {
		if m.HouseholdID == householdID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *testRepo) IsMember(ctx context.Context, householdID, userID string) (bool, error) {
	for _, m := range r.members {
		if m.HouseholdID == householdID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AddsCreatorAsMember(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	h, err := svc.Create(context.Background(), "alice-1", CreateInput{Name: "Casa Gato", Email: "casa@example.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if h.ID == "" || h.CreatedAt != now {
		t.Fatalf("unexpected household: %#v", h)
	}

	ok, _ := repo.IsMember(context.Background(), h.ID, "alice-1")
	if !ok {
		t.Fatalf("expected creator to be a member")
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "alice-1", CreateInput{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_AddMember_OnlyMembersInvite(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	h, err := svc.Create(context.Background(), "alice-1", CreateInput{Name: "Casa Gato"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// un extraño no puede invitar
	if err := svc.AddMember(context.Background(), h.ID, "carol-1", "stranger-1"); !errors.Is(err, ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}

	// alice sí
	if err := svc.AddMember(context.Background(), h.ID, "bob-1", "alice-1"); err != nil {
		t.Fatalf("AddMember error: %v", err)
	}

	hh, err := svc.HouseholdFor(context.Background(), "bob-1")
	if err != nil {
		t.Fatalf("HouseholdFor error: %v", err)
	}
	if hh.ID != h.ID {
		t.Fatalf("expected bob resolved to household %s, got %s", h.ID, hh.ID)
	}
}

func TestService_HouseholdFor_NoMembership(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.HouseholdFor(context.Background(), "nobody-1"); !errors.Is(err, ErrNoHousehold) {
		t.Fatalf("expected ErrNoHousehold, got %v", err)
	}
}

func TestService_HouseholdFor_FirstMembershipWins(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	h1, _ := svc.Create(context.Background(), "alice-1", CreateInput{Name: "Casa Uno"})
	_, _ = svc.Create(context.Background(), "alice-1", CreateInput{Name: "Casa Dos"})

	hh, err := svc.HouseholdFor(context.Background(), "alice-1")
	if err != nil {
		t.Fatalf("HouseholdFor error: %v", err)
	}
	if hh.ID != h1.ID {
		t.Fatalf("expected oldest household, got %s", hh.Name)
	}
}
