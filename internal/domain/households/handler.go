package households

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-care-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/households", func(hr chi.Router) {
		hr.Post("/", createHouseholdHandler(svc))
		hr.Get("/mine", myHouseholdHandler(svc))
		hr.Post("/{householdID}/members", addMemberHandler(svc))
		hr.Get("/{householdID}/members", listMembersHandler(svc))
	})
}

type createHouseholdRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type householdResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type addMemberRequest struct {
	UserID string `json:"user_id"`
}

type memberResponse struct {
	UserID  string    `json:"user_id"`
	AddedAt time.Time `json:"added_at"`
}

// createHouseholdHandler godoc
// @Summary Crear household
// @Description Crea un household y agrega al usuario autenticado como primer miembro.
// @Tags households
// @Accept json
// @Produce json
// @Param payload body createHouseholdRequest true "Nombre y email de contacto"
// @Success 201 {object} householdResponse
// @Failure 400 {string} string "invalid json / nombre vacío"
// @Failure 401 {string} string "unauthorized"
// @Router /households [post]
func createHouseholdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req createHouseholdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		h, err := svc.Create(r.Context(), userID, CreateInput{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "could not create household", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toHouseholdResponse(h))
	}
}

// myHouseholdHandler godoc
// @Summary Mi household
// @Description Devuelve el household del usuario autenticado (el primero si tiene varios).
// @Tags households
// @Produce json
// @Success 200 {object} householdResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "sin household"
// @Router /households/mine [get]
func myHouseholdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		h, err := svc.HouseholdFor(r.Context(), userID)
		if err != nil {
			if errors.Is(err, ErrNoHousehold) {
				http.Error(w, "no household", http.StatusNotFound)
				return
			}
			http.Error(w, "could not resolve household", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toHouseholdResponse(h))
	}
}

func addMemberHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req addMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		householdID := chi.URLParam(r, "householdID")
		err := svc.AddMember(r.Context(), householdID, req.UserID, userID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNotMember):
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			http.Error(w, "could not add member", http.StatusInternalServerError)
		}
	}
}

func listMembersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		householdID := chi.URLParam(r, "householdID")
		members, err := svc.Members(r.Context(), householdID, userID)
		if err != nil {
			if errors.Is(err, ErrNotMember) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			http.Error(w, "could not list members", http.StatusInternalServerError)
			return
		}

		out := make([]memberResponse, 0, len(members))
		for _, m := range members {
			out = append(out, memberResponse{UserID: m.UserID, AddedAt: m.AddedAt})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

func toHouseholdResponse(h Household) householdResponse {
	return householdResponse{
		ID:        h.ID,
		Name:      h.Name,
		Email:     h.Email,
		CreatedAt: h.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
