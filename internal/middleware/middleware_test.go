package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colonoscopy-prep/internal/domain/schedule"
	"colonoscopy-prep/internal/platform/logger"
)

func resolved(t *testing.T, target, acceptLanguage string) schedule.Language {
	t.Helper()

	var got schedule.Language
	h := Language(schedule.LanguagePT)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = LanguageFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLanguage_Precedence(t *testing.T) {
	cases := []struct {
		name   string
		target string
		header string
		want   schedule.Language
	}{
		{"default", "/", "", schedule.LanguagePT},
		{"query lang", "/?lang=en", "pt-PT", schedule.LanguageEN},
		{"query language", "/?language=en", "", schedule.LanguageEN},
		{"unknown query ignored", "/?lang=fr", "en-GB,en;q=0.9", schedule.LanguageEN},
		{"accept-language regional", "/", "en-US,en;q=0.8", schedule.LanguageEN},
		{"accept-language portuguese", "/", "pt-BR", schedule.LanguagePT},
		{"accept-language unsupported", "/", "de-DE", schedule.LanguagePT},
		{"accept-language garbage", "/", ";;;", schedule.LanguagePT},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolved(t, tc.target, tc.header))
		})
	}
}

func TestLanguageFrom_DefaultsWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, schedule.DefaultLanguage, LanguageFrom(req.Context()))
	assert.Equal(t, schedule.LanguageEN, LanguageFrom(WithLanguage(req.Context(), schedule.LanguageEN)))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Out: &buf})

	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/profiles/x", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/profiles/x", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}
