package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/presenter"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
	"colonoscopy-prep/internal/i18n"
	"colonoscopy-prep/internal/middleware"
)

type mapRepo struct {
	byID map[string]profiles.Profile
}

func (r *mapRepo) Create(_ context.Context, p profiles.Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *mapRepo) GetByID(_ context.Context, id string) (profiles.Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (r *mapRepo) Update(_ context.Context, p profiles.Profile) error {
	r.byID[p.ID] = p
	return nil
}

func (r *mapRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *profiles.Service) {
	t.Helper()

	profilesSvc := profiles.NewService(&mapRepo{byID: map[string]profiles.Profile{}}, dates.NewParser(time.UTC, ""))
	p := presenter.New(i18n.Default(), presenter.Options{TimeZone: "UTC"})
	svc := NewService(profilesSvc, p, i18n.Default(), Options{PublicBaseURL: "https://prepara.example/?ref=x"})
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, profilesSvc
}

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Language(schedule.DefaultLanguage))
	RegisterRoutes(r, svc)
	return r
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestForQuery_EmptyWithoutDate(t *testing.T) {
	svc, _ := newTestService(t)

	plan := svc.ForQuery(schedule.LanguageEN, url.Values{})
	assert.Empty(t, plan.Events)
	assert.Equal(t, presenter.Placeholder, plan.Hero.Exam)
	assert.NotEmpty(t, plan.CalendarInfo.NoDate)
	assert.Equal(t, "https://prepara.example/?lang=en", plan.ShareLink)

	_, body := svc.ICS(plan)
	assert.Nil(t, body)
}

func TestForQuery_FullPlan(t *testing.T) {
	svc, _ := newTestService(t)

	q := url.Values{
		"exame":         {"2024-06-10"},
		"hora":          {"09:00"},
		"medication":    {"citrafleet"},
		"isConstipated": {"true"},
	}
	plan := svc.ForQuery(schedule.LanguageEN, q)

	require.Len(t, plan.Events, 6)
	assert.Len(t, plan.Timeline, 6)
	assert.Len(t, plan.Links, 6)
	assert.Equal(t, "Mon, 10 Jun 2024 · 09:00", plan.Hero.Exam)
	assert.Equal(t, "https://prepara.example/?exame=2024-06-10&hora=09%3A00&lang=en", plan.ShareLink)

	filename, body := svc.ICS(plan)
	assert.Equal(t, "colonoscopy-prep.ics", filename)
	assert.Equal(t, 6, strings.Count(string(body), "BEGIN:VEVENT"))
}

func TestForProfile_QueryOverridesStoredValues(t *testing.T) {
	svc, profilesSvc := newTestService(t)

	p, err := profilesSvc.Create(context.Background(), profiles.Input{
		Language:   "pt",
		ExamDate:   "2024-06-10",
		Medication: "plenvu",
	})
	require.NoError(t, err)

	plan, err := svc.ForProfile(context.Background(), p.ID, url.Values{"lang": {"en"}})
	require.NoError(t, err)
	assert.Equal(t, schedule.LanguageEN, plan.Profile.Language)
	assert.Equal(t, "08:30", plan.Profile.ExamTime)
	require.Len(t, plan.Events, 3)

	_, err = svc.ForProfile(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, profiles.ErrNotFound)
}

func TestHandler_QueryPlan(t *testing.T) {
	svc, _ := newTestService(t)
	h := newTestRouter(svc)

	rr := doGet(t, h, "/schedule?exame=2024-06-10&medication=plenvu&lang=en")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Language string `json:"language"`
		Events   []struct {
			ID string `json:"id"`
		} `json:"events"`
		Hero struct {
			Exam string `json:"exam"`
		} `json:"hero"`
		ShareLink string `json:"share_link"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "en", body.Language)
	assert.Len(t, body.Events, 3)
	assert.Equal(t, "Mon, 10 Jun 2024 · 08:30", body.Hero.Exam)
}

func TestHandler_QueryPlanEmptyStillOK(t *testing.T) {
	svc, _ := newTestService(t)
	h := newTestRouter(svc)

	rr := doGet(t, h, "/schedule?exame=not-a-date")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"events":[]`)
}

func TestHandler_ICS(t *testing.T) {
	svc, _ := newTestService(t)
	h := newTestRouter(svc)

	rr := doGet(t, h, "/schedule.ics?exame=2024-06-10")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="preparacao-colonoscopia.ics"`, rr.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "BEGIN:VCALENDAR\r\n"))

	rr = doGet(t, h, "/schedule.ics")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHandler_ProfileNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	h := newTestRouter(svc)

	rr := doGet(t, h, "/profiles/nope/schedule")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doGet(t, h, "/profiles/nope/schedule.ics")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
