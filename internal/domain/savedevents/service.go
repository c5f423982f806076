package savedevents

import (
	"context"
	"errors"
	"strings"

	"pet-care-tracker/internal/domain/events"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("saved event not found")
)

type Service struct {
	repo   Repository
	events *events.Service
	pets   events.PetDirectory
}

func NewService(repo Repository, eventsSvc *events.Service, pets events.PetDirectory) *Service {
	return &Service{
		repo:   repo,
		events: eventsSvc,
		pets:   pets,
	}
}

type CreateInput struct {
	Name  string
	Type  events.EventType
	PetID string
	Meta  map[string]string
}

func (s *Service) Create(ctx context.Context, householdID string, in CreateInput) (SavedEvent, error) {
	if strings.TrimSpace(householdID) == "" || strings.TrimSpace(in.Name) == "" {
		return SavedEvent{}, ErrInvalidInput
	}
	if !in.Type.IsValid() {
		return SavedEvent{}, events.ErrInvalidEventType
	}

	se := SavedEvent{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Name:        strings.TrimSpace(in.Name),
		Type:        in.Type,
		Meta:        in.Meta,
	}
	if pet := strings.TrimSpace(in.PetID); pet != "" && in.Type.HasPet() {
		se.PetID = &pet
	}

	if err := s.repo.Create(ctx, se); err != nil {
		return SavedEvent{}, err
	}
	return se, nil
}

// Row es un saved event con nombre/ícono de mascota resueltos.
type Row struct {
	ID      string            `json:"uuid"`
	Name    string            `json:"name"`
	Type    events.EventType  `json:"event-type"`
	PetID   *string           `json:"pet-uuid,omitempty"`
	PetName string            `json:"pet-name"`
	PetIcon string            `json:"pet-icon"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func (s *Service) ListByHousehold(ctx context.Context, householdID string) ([]Row, error) {
	if strings.TrimSpace(householdID) == "" {
		return []Row{}, nil
	}

	ses, err := s.repo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	dir := map[string]events.PetInfo{}
	if s.pets != nil {
		dir, err = s.pets.ByHousehold(ctx, householdID)
		if err != nil {
			return nil, err
		}
	}

	out := make([]Row, 0, len(ses))
	for _, se := range ses {
		row := Row{
			ID:    se.ID,
			Name:  se.Name,
			Type:  se.Type,
			PetID: se.PetID,
			Meta:  se.Meta,
		}
		if se.PetID != nil {
			info := dir[*se.PetID]
			row.PetName = info.Name
			row.PetIcon = info.Icon
		}
		out = append(out, row)
	}
	return out, nil
}

// Log instancia un evento real desde la plantilla, con timestamp
// "ahora". Pasa por la misma fábrica que un alta manual.
func (s *Service) Log(ctx context.Context, householdID, id, userID string) (*events.Event, error) {
	se, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if se.HouseholdID != householdID {
		return nil, ErrNotFound
	}

	payload := make(map[string]string, len(se.Meta)+1)
	for k, v := range se.Meta {
		payload[k] = v
	}
	if se.PetID != nil {
		payload["pet"] = *se.PetID
	}

	return s.events.Log(ctx, householdID, userID, se.Type, payload, nil)
}
