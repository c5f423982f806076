package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-care-tracker/internal/domain/households"
	"pet-care-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, hhSvc *households.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, hhSvc))
		pr.Get("/", listPetsHandler(svc, hhSvc))
		pr.Get("/{petID}", getPetHandler(svc, hhSvc))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species" enums:"cat,dog"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD opcional
	PhotoAddr string `json:"photo_addr"`
}

type petResponse struct {
	ID          string     `json:"id"`
	HouseholdID string     `json:"household_id"`
	Name        string     `json:"name"`
	Species     Species    `json:"species"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	PhotoAddr   string     `json:"photo_addr,omitempty"`
	Age         string     `json:"age,omitempty"` // derivado, no almacenado
	CreatedAt   time.Time  `json:"created_at"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota en el household del usuario autenticado.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota; birth_date en YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / especie o nombre inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Create(r.Context(), householdID, CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
			PhotoAddr: req.PhotoAddr,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "could not create pet", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p, time.Now()))
	}
}

// listPetsHandler godoc
// @Summary Mascotas del household
// @Description Lista las mascotas del household con la edad derivada ("7 months" / "4 years").
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		ps, err := svc.ListByHousehold(r.Context(), householdID)
		if err != nil {
			http.Error(w, "could not list pets", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		out := make([]petResponse, 0, len(ps))
		for _, p := range ps {
			out = append(out, toPetResponse(p, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil || p.HouseholdID != householdID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p, time.Now()))
	}
}

func requireHousehold(w http.ResponseWriter, r *http.Request, hhSvc *households.Service) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	hh, err := hhSvc.HouseholdFor(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "no household for user", http.StatusForbidden)
		return "", false
	}
	return hh.ID, true
}

func toPetResponse(p Pet, now time.Time) petResponse {
	return petResponse{
		ID:          p.ID,
		HouseholdID: p.HouseholdID,
		Name:        p.Name,
		Species:     p.Species,
		BirthDate:   p.BirthDate,
		PhotoAddr:   p.PhotoAddr,
		Age:         p.Age(now),
		CreatedAt:   p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
