package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"colonoscopy-prep/internal/domain/calendar"
	"colonoscopy-prep/internal/domain/presenter"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
	"colonoscopy-prep/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Sin estado: todo por query (enlace para compartir)
	r.Get("/schedule", queryPlanHandler(svc))
	r.Get("/schedule.ics", queryICSHandler(svc))

	// Perfil guardado + overrides por query
	r.Get("/profiles/{profileID}/schedule", profilePlanHandler(svc))
	r.Get("/profiles/{profileID}/schedule.ics", profileICSHandler(svc))
}

type eventResponse struct {
	ID         schedule.EventID    `json:"id"`
	Title      string              `json:"title"`
	Instant    time.Time           `json:"instant"`
	ShowTime   bool                `json:"show_time"`
	Highlight  bool                `json:"highlight"`
	Medication schedule.Medication `json:"medication,omitempty"`
}

type planResponse struct {
	Language     schedule.Language        `json:"language"`
	ExamDate     string                   `json:"exam_date,omitempty"`
	ExamTime     string                   `json:"exam_time,omitempty"`
	Events       []eventResponse          `json:"events"`
	Hero         presenter.HeroSummary    `json:"hero"`
	Timeline     []presenter.TimelineItem `json:"timeline"`
	Links        []presenter.CalendarLink `json:"links"`
	ShareLink    string                   `json:"share_link"`
	CalendarInfo presenter.CalendarInfo   `json:"calendar_info"`
}

// queryPlanHandler godoc
// @Summary Plan de preparación desde la query
// @Description Sin fecha (o fecha inválida) devuelve un plan vacío con placeholders, no un error.
// @Tags schedule
// @Produce json
// @Param exame query string false "Fecha del examen YYYY-MM-DD"
// @Param hora query string false "Hora del examen HH:MM (08:30)"
// @Param lang query string false "pt | en"
// @Param medication query string false "plenvu | moviprep | citrafleet"
// @Param isConstipated query bool false "Añade Dulcolax 48h/24h antes"
// @Success 200 {object} planResponse
// @Router /schedule [get]
func queryPlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan := svc.ForQuery(middleware.LanguageFrom(r.Context()), r.URL.Query())
		writeJSON(w, http.StatusOK, toPlanResponse(plan))
	}
}

// queryICSHandler godoc
// @Summary Exportar plan (query) a iCalendar
// @Tags schedule
// @Produce text/calendar
// @Success 200 {string} string "VCALENDAR"
// @Success 204 "sin plan"
// @Router /schedule.ics [get]
func queryICSHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan := svc.ForQuery(middleware.LanguageFrom(r.Context()), r.URL.Query())
		writeICS(w, svc, plan)
	}
}

// profilePlanHandler godoc
// @Summary Plan de preparación de un perfil
// @Tags schedule
// @Produce json
// @Param profileID path string true "ID del perfil"
// @Success 200 {object} planResponse
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID}/schedule [get]
func profilePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := svc.ForProfile(r.Context(), chi.URLParam(r, "profileID"), r.URL.Query())
		if err != nil {
			writeProfileError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPlanResponse(plan))
	}
}

// profileICSHandler godoc
// @Summary Exportar plan de un perfil a iCalendar
// @Tags schedule
// @Produce text/calendar
// @Param profileID path string true "ID del perfil"
// @Success 200 {string} string "VCALENDAR"
// @Success 204 "sin plan"
// @Failure 404 {string} string "profile not found"
// @Router /profiles/{profileID}/schedule.ics [get]
func profileICSHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := svc.ForProfile(r.Context(), chi.URLParam(r, "profileID"), r.URL.Query())
		if err != nil {
			writeProfileError(w, err)
			return
		}
		writeICS(w, svc, plan)
	}
}

func writeICS(w http.ResponseWriter, svc *Service, plan Plan) {
	filename, body := svc.ICS(plan)
	if body == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", calendar.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, profiles.ErrNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toPlanResponse(p Plan) planResponse {
	events := make([]eventResponse, 0, len(p.Events))
	for _, e := range p.Events {
		events = append(events, eventResponse{
			ID:         e.ID,
			Title:      e.Title,
			Instant:    e.Instant,
			ShowTime:   e.ShowTime,
			Highlight:  e.Highlight,
			Medication: e.Medication,
		})
	}
	return planResponse{
		Language:     p.Profile.Language,
		ExamDate:     p.Profile.ExamDate,
		ExamTime:     p.Profile.ExamTime,
		Events:       events,
		Hero:         p.Hero,
		Timeline:     p.Timeline,
		Links:        p.Links,
		ShareLink:    p.ShareLink,
		CalendarInfo: p.CalendarInfo,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
