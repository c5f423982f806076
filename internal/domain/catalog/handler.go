package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-care-tracker/internal/domain/households"
	"pet-care-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, hhSvc *households.Service) {
	r.Route("/catalog", func(cr chi.Router) {
		cr.Post("/foods", createFoodHandler(svc, hhSvc))
		cr.Get("/foods", listFoodHandler(svc, hhSvc))
		cr.Post("/foods/{itemID}/archive", archiveFoodHandler(svc, hhSvc))

		cr.Post("/medicines", createMedicineHandler(svc, hhSvc))
		cr.Get("/medicines", listMedicineHandler(svc, hhSvc))
		cr.Post("/medicines/{itemID}/archive", archiveMedicineHandler(svc, hhSvc))
	})
}

type createFoodRequest struct {
	Name        string  `json:"name"`
	FoodType    string  `json:"type" enums:"wet,dry,treats,other"`
	ServingSize float64 `json:"serving_size"`
	Unit        string  `json:"unit" enums:"grams,cups,oz,cans"`
	Calories    int     `json:"calories"`
}

type foodResponse struct {
	ID          string  `json:"uuid"`
	Name        string  `json:"name"`
	FoodType    string  `json:"type"`
	ServingSize float64 `json:"serving_size"`
	Unit        string  `json:"unit"`
	Calories    int     `json:"calories"`
	Archived    bool    `json:"archived"`
}

type createMedicineRequest struct {
	Name string `json:"name"`
}

type medicineResponse struct {
	ID       string `json:"uuid"`
	Name     string `json:"name"`
	Archived bool   `json:"archived"`
}

// createFoodHandler godoc
// @Summary Crear entrada de comida
// @Description Crea una entrada de catálogo de comida para el household. El nombre es único por household.
// @Tags catalog
// @Accept json
// @Produce json
// @Param payload body createFoodRequest true "Datos de la comida"
// @Success 201 {object} foodResponse
// @Failure 400 {string} string "invalid json / nombre vacío"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "nombre duplicado"
// @Router /catalog/foods [post]
func createFoodHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		var req createFoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		f, err := svc.CreateFood(r.Context(), householdID, CreateFoodInput{
			Name:        req.Name,
			FoodType:    req.FoodType,
			ServingSize: req.ServingSize,
			Unit:        req.Unit,
			Calories:    req.Calories,
		})
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toFoodResponse(f))
	}
}

func listFoodHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		activeOnly := r.URL.Query().Get("active") == "1"
		items, err := svc.ListFood(r.Context(), householdID, activeOnly)
		if err != nil {
			http.Error(w, "could not list foods", http.StatusInternalServerError)
			return
		}

		out := make([]foodResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFoodResponse(f))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func archiveFoodHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		if err := svc.ArchiveFood(r.Context(), householdID, chi.URLParam(r, "itemID")); err != nil {
			http.Error(w, "food entry not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// createMedicineHandler godoc
// @Summary Crear entrada de medicina
// @Description Crea una entrada de catálogo de medicina. El nombre es único por household.
// @Tags catalog
// @Accept json
// @Produce json
// @Param payload body createMedicineRequest true "Nombre de la medicina"
// @Success 201 {object} medicineResponse
// @Failure 400 {string} string "invalid json / nombre vacío"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "nombre duplicado"
// @Router /catalog/medicines [post]
func createMedicineHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		var req createMedicineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.CreateMedicine(r.Context(), householdID, req.Name)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicineResponse(m))
	}
}

func listMedicineHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		activeOnly := r.URL.Query().Get("active") == "1"
		items, err := svc.ListMedicine(r.Context(), householdID, activeOnly)
		if err != nil {
			http.Error(w, "could not list medicines", http.StatusInternalServerError)
			return
		}

		out := make([]medicineResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicineResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func archiveMedicineHandler(svc *Service, hhSvc *households.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		householdID, ok := requireHousehold(w, r, hhSvc)
		if !ok {
			return
		}

		if err := svc.ArchiveMedicine(r.Context(), householdID, chi.URLParam(r, "itemID")); err != nil {
			http.Error(w, "medicine entry not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
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

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateName):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "catalog error", http.StatusInternalServerError)
	}
}

func toFoodResponse(f FoodItem) foodResponse {
	return foodResponse{
		ID:          f.ID,
		Name:        f.Name,
		FoodType:    f.FoodType,
		ServingSize: f.ServingSize,
		Unit:        f.Unit,
		Calories:    f.Calories,
		Archived:    f.Archived,
	}
}

func toMedicineResponse(m MedicineItem) medicineResponse {
	return medicineResponse{
		ID:       m.ID,
		Name:     m.Name,
		Archived: m.Archived,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
