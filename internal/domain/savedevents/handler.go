package savedevents

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-care-tracker/internal/domain/events"
	"pet-care-tracker/internal/domain/households"
	"pet-care-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, hhSvc *households.Service) {
	r.Route("/saved-events", func(sr chi.Router) {
		sr.Post("/", createSavedEventHandler(svc, hhSvc))
		sr.Get("/", listSavedEventsHandler(svc, hhSvc))
		sr.Post("/{savedID}/log", logSavedEventHandler(svc, hhSvc))
	})
}

type createSavedEventRequest struct {
	Name string            `json:"name"`
	Type string            `json:"type" enums:"Food,Litter,Medicine,Vitals"`
	Pet  string            `json:"pet"` // uuid opcional
	Meta map[string]string `json:"meta"`
}

// createSavedEventHandler godoc
// @Summary Guardar plantilla de evento
// @Description Guarda un favorito (tipo + meta + mascota opcional) para loguear rápido después.
// @Tags saved-events
// @Accept json
// @Produce json
// @Param payload body createSavedEventRequest true "Plantilla"
// @Success 201 {object} Row
// @Failure 400 {string} string "invalid json / tipo inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /saved-events [post]
func createSavedEventHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		var req createSavedEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		typ, err := events.ParseEventType(req.Type)
		if err != nil {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}

		se, err := svc.Create(r.Context(), householdID, CreateInput{
			Name:  req.Name,
			Type:  typ,
			PetID: req.Pet,
			Meta:  req.Meta,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) || errors.Is(err, events.ErrInvalidEventType) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "could not save event template", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, Row{
			ID:    se.ID,
			Name:  se.Name,
			Type:  se.Type,
			PetID: se.PetID,
			Meta:  se.Meta,
		})
	}
}

func listSavedEventsHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		rows, err := svc.ListByHousehold(r.Context(), householdID)
		if err != nil {
			http.Error(w, "could not list saved events", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// logSavedEventHandler godoc
// @Summary Loguear desde plantilla
// @Description Crea un evento real "ahora" a partir de un favorito guardado.
// @Tags saved-events
// @Produce json
// @Param savedID path string true "ID del favorito"
// @Success 201 {object} object
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "favorito no encontrado"
// @Router /saved-events/{savedID}/log [post]
func logSavedEventHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		e, err := svc.Log(r.Context(), householdID, chi.URLParam(r, "savedID"), userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "saved event not found", http.StatusNotFound)
				return
			}
			http.Error(w, "could not log saved event", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"id":        e.ID,
			"type":      e.Type,
			"timestamp": e.Timestamp,
			"meta":      events.MetaMap(e.Meta),
		})
	}
}

func requireHousehold(w http.ResponseWriter, r *http.Request, hhSvc *households.Service) (userID, householdID string, ok bool) {
	claims, found := middleware.GetClaims(r.Context())
	if !found || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	hh, err := hhSvc.HouseholdFor(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "no household for user", http.StatusForbidden)
		return "", "", false
	}
	return claims.UserID, hh.ID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
