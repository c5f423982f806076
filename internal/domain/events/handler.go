package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-tracker/internal/domain/households"
	"pet-care-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, hhSvc *households.Service) {
	r.Route("/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc, hhSvc))
		er.Get("/", listAllEventsHandler(svc, hhSvc))
		er.Get("/summary", summaryHandler(svc, hhSvc))
		er.Get("/day", dayViewHandler(svc, hhSvc))
		er.Get("/days", daysViewHandler(svc, hhSvc))
	})
}

// createEventRequest es el cuerpo para registrar un evento de cuidado.
// payload lleva los campos del formulario tal cual (food-name,
// food-calories, medicine-dose, pet, etc.).
type createEventRequest struct {
	Type      string            `json:"type" enums:"Food,Litter,Medicine,Vitals"`
	Timestamp string            `json:"timestamp"` // RFC3339 o YYYY-MM-DDTHH:MM (hora local); vacío = ahora
	Payload   map[string]string `json:"payload"`
}

type eventResponse struct {
	ID          int64             `json:"id"`
	HouseholdID string            `json:"household_id"`
	PetID       *string           `json:"pet_id,omitempty"`
	Type        EventType         `json:"type"`
	Timestamp   time.Time         `json:"timestamp"`
	CreatedAt   time.Time         `json:"created_at"`
	CreatedBy   string            `json:"created_by"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// dayViewResponse mapea tipo → clave de mascota aplanada → agregado.
// Tipos sin eventos se omiten.
type dayViewResponse struct {
	Food     map[string]float64 `json:"Food,omitempty"`
	Litter   map[string]int     `json:"Litter,omitempty"`
	Medicine map[string]int     `json:"Medicine,omitempty"`
	Vitals   map[string]int     `json:"Vitals,omitempty"`
}

// createEventHandler godoc
// @Summary Registrar evento de cuidado
// @Description Crea un evento (Food, Litter, Medicine, Vitals) para el household del usuario autenticado. timestamp puede ser histórico (backdate). Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Tipo, timestamp opcional y payload del evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / tipo o timestamp inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /events [post]
func createEventHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		typ, err := ParseEventType(req.Type)
		if err != nil {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}

		var ts *time.Time
		if strings.TrimSpace(req.Timestamp) != "" {
			t, err := parseEventTime(req.Timestamp, svc.Location())
			if err != nil {
				http.Error(w, "timestamp must be RFC3339 or YYYY-MM-DDTHH:MM", http.StatusBadRequest)
				return
			}
			ts = &t
		}

		e, err := svc.Log(r.Context(), householdID, userID, typ, req.Payload, ts)
		if err != nil {
			if errors.Is(err, ErrInvalidEventType) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "could not create event", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listAllEventsHandler godoc
// @Summary Historial completo de eventos
// @Description Todos los eventos del household, más reciente primero, con nombre/ícono de mascota resueltos. Sin paginación.
// @Tags events
// @Produce json
// @Success 200 {array} EventRow
// @Failure 401 {string} string "unauthorized"
// @Router /events [get]
func listAllEventsHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		rows, err := svc.AllEvents(r.Context(), householdID)
		if err != nil {
			http.Error(w, "could not list events", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// summaryHandler godoc
// @Summary Summary del dashboard
// @Description El evento más reciente por cada par (tipo, mascota), con etiqueta de antigüedad relativa ("2 days ago").
// @Tags events
// @Produce json
// @Success 200 {array} SummaryRow
// @Failure 401 {string} string "unauthorized"
// @Router /events/summary [get]
func summaryHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		rows, err := svc.Summary(r.Context(), householdID)
		if err != nil {
			http.Error(w, "could not build summary", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// dayViewHandler godoc
// @Summary Vista de un día
// @Description Agregados del día calendario (date=YYYY-MM-DD, default hoy): Food suma calorías por mascota, el resto cuenta eventos.
// @Tags events
// @Produce json
// @Param date query string false "Día a ver, YYYY-MM-DD (default hoy)"
// @Success 200 {object} dayViewResponse
// @Failure 400 {string} string "date inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /events/day [get]
func dayViewHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		date := svc.Now()
		if q := strings.TrimSpace(r.URL.Query().Get("date")); q != "" {
			t, err := time.ParseInLocation("2006-01-02", q, svc.Location())
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = t
		}

		agg, err := svc.DayView(r.Context(), householdID, date)
		if err != nil {
			http.Error(w, "could not build day view", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toDayViewResponse(agg))
	}
}

// daysViewHandler godoc
// @Summary Vista multi-día
// @Description Camina hacia atrás desde start (default hoy) y devuelve hasta limit días con eventos (revisa a lo sumo 2×limit días). Claves de mascota aplanadas como "nombre|||ícono".
// @Tags events
// @Produce json
// @Param start query string false "Día inicial, YYYY-MM-DD (default hoy)"
// @Param limit query int false "Máximo de días con datos (default 10)"
// @Success 200 {array} DayRecord
// @Failure 400 {string} string "start o limit inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /events/days [get]
func daysViewHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		start := svc.Now()
		if q := strings.TrimSpace(r.URL.Query().Get("start")); q != "" {
			t, err := time.ParseInLocation("2006-01-02", q, svc.Location())
			if err != nil {
				http.Error(w, "start must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			start = t
		}

		limit := 10
		if q := strings.TrimSpace(r.URL.Query().Get("limit")); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		days, err := svc.DaysView(r.Context(), householdID, start, limit)
		if err != nil {
			http.Error(w, "could not build days view", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, days)
	}
}

// requireHousehold saca claims del contexto y resuelve el household
// del usuario. Identidad y household siempre explícitos hacia el core,
// nunca estado ambiente.
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

// parseEventTime acepta RFC3339 o el formato del <input datetime-local>
// (YYYY-MM-DDTHH:MM, interpretado en la zona de la app).
func parseEventTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, loc)
}

func toEventResponse(e *Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		HouseholdID: e.HouseholdID,
		PetID:       e.PetID,
		Type:        e.Type,
		Timestamp:   e.Timestamp,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
		Meta:        MetaMap(e.Meta),
	}
}

func toDayViewResponse(agg DayAggregate) dayViewResponse {
	var resp dayViewResponse
	if len(agg.Food) > 0 {
		resp.Food = map[string]float64{}
		for k, v := range agg.Food {
			resp.Food[k.Flatten()] = v
		}
	}
	if len(agg.Litter) > 0 {
		resp.Litter = map[string]int{}
		for k, v := range agg.Litter {
			resp.Litter[k.Flatten()] = v
		}
	}
	if len(agg.Medicine) > 0 {
		resp.Medicine = map[string]int{}
		for k, v := range agg.Medicine {
			resp.Medicine[k.Flatten()] = v
		}
	}
	if len(agg.Vitals) > 0 {
		resp.Vitals = map[string]int{}
		for k, v := range agg.Vitals {
			resp.Vitals[k.Flatten()] = v
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
