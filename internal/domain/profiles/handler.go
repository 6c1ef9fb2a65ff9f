package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"colonoscopy-prep/internal/domain/schedule"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profiles", func(pr chi.Router) {
		pr.Post("/", createProfileHandler(svc))
		pr.Get("/{profileID}", getProfileHandler(svc))
		pr.Put("/{profileID}", replaceProfileHandler(svc))
		pr.Delete("/{profileID}", resetProfileHandler(svc))
	})
}

// profileRequest es el resultado del asistente (los 4 pasos).
type profileRequest struct {
	Language      string `json:"language"`
	ExamDate      string `json:"exam_date"` // YYYY-MM-DD
	ExamTime      string `json:"exam_time"` // HH:MM, opcional (08:30)
	Medication    string `json:"medication" enums:"plenvu,moviprep,citrafleet"`
	IsConstipated bool   `json:"is_constipated"`
}

type profileResponse struct {
	ID            string              `json:"id"`
	Language      schedule.Language   `json:"language"`
	ExamDate      string              `json:"exam_date"`
	ExamTime      string              `json:"exam_time"`
	Medication    schedule.Medication `json:"medication"`
	IsConstipated bool                `json:"is_constipated"`
	Completed     bool                `json:"completed"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// decodeProfileRequest es el mismo para POST y PUT: campos desconocidos => 400.
func decodeProfileRequest(r *http.Request) (profileRequest, error) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req profileRequest
	err := dec.Decode(&req)
	return req, err
}

func (req profileRequest) toInput() Input {
	return Input{
		Language:      req.Language,
		ExamDate:      req.ExamDate,
		ExamTime:      req.ExamTime,
		Medication:    req.Medication,
		IsConstipated: req.IsConstipated,
	}
}

// createProfileHandler godoc
// @Summary Crear perfil de preparación
// @Description Guarda las respuestas del asistente. Valida idioma, fecha, hora y medicación.
// @Tags profiles
// @Accept json
// @Produce json
// @Param payload body profileRequest true "Respuestas del asistente"
// @Success 201 {object} profileResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /profiles [post]
func createProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeProfileRequest(r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toProfileResponse(p))
	}
}

// getProfileHandler godoc
// @Summary Obtener perfil
// @Tags profiles
// @Produce json
// @Param profileID path string true "ID del perfil"
// @Success 200 {object} profileResponse
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID} [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// replaceProfileHandler godoc
// @Summary Reemplazar perfil
// @Description Reemplazo completo (no PATCH): se vuelven a validar todos los pasos.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profileID path string true "ID del perfil"
// @Param payload body profileRequest true "Respuestas del asistente"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID} [put]
func replaceProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeProfileRequest(r)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Replace(r.Context(), chi.URLParam(r, "profileID"), req.toInput())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// resetProfileHandler godoc
// @Summary Reiniciar asistente
// @Tags profiles
// @Param profileID path string true "ID del perfil"
// @Success 204
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID} [delete]
func resetProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context(), chi.URLParam(r, "profileID")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:            p.ID,
		Language:      p.Language,
		ExamDate:      p.ExamDate,
		ExamTime:      p.ExamTime,
		Medication:    p.Medication,
		IsConstipated: p.IsConstipated,
		Completed:     p.Completed,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
