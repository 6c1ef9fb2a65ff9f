package checklist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profiles/{profileID}/checklist", func(cr chi.Router) {
		cr.Get("/", getChecklistHandler(svc))
		cr.Put("/{itemID}", setItemHandler(svc))
	})
}

type setItemRequest struct {
	Checked *bool `json:"checked"`
}

type checklistResponse struct {
	ProfileID string `json:"profile_id"`
	Items     State  `json:"items"`
}

// getChecklistHandler godoc
// @Summary Estado de la lista de compras
// @Tags checklist
// @Produce json
// @Param profileID path string true "ID del perfil"
// @Success 200 {object} checklistResponse
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID}/checklist [get]
func getChecklistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")

		state, err := svc.Get(r.Context(), profileID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, checklistResponse{ProfileID: profileID, Items: state})
	}
}

// setItemHandler godoc
// @Summary Marcar artículo de la lista de compras
// @Tags checklist
// @Accept json
// @Produce json
// @Param profileID path string true "ID del perfil"
// @Param itemID path string true "ID del artículo"
// @Param payload body setItemRequest true "checked"
// @Success 200 {object} checklistResponse
// @Failure 400 {string} string "invalid json / unknown shopping list item"
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID}/checklist/{itemID} [put]
func setItemHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Checked == nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		profileID := chi.URLParam(r, "profileID")
		state, err := svc.Set(r.Context(), profileID, chi.URLParam(r, "itemID"), *req.Checked)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, checklistResponse{ProfileID: profileID, Items: state})
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownItem):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
