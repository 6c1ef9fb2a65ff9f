package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"colonoscopy-prep/internal/domain/schedule"
)

type ctxKey string

const languageKey ctxKey = "language"

// Language resuelve el idioma del request:
// - query lang / language (si es un idioma conocido)
// - Accept-Language negociado contra los idiomas soportados
// - fallback
// Nunca corta el request.
func Language(fallback schedule.Language) func(http.Handler) http.Handler {
	supported := schedule.Languages
	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tags = append(tags, language.Make(l.String()))
	}
	matcher := language.NewMatcher(tags)
	fallback = fallback.OrDefault()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLanguage(r, matcher, supported, fallback)
			ctx := context.WithValue(r.Context(), languageKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLanguage(r *http.Request, matcher language.Matcher, supported []schedule.Language, fallback schedule.Language) schedule.Language {
	q := r.URL.Query()
	for _, key := range []string{"lang", "language"} {
		if l, ok := schedule.ParseLanguage(q.Get(key)); ok {
			return l
		}
	}

	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return fallback
	}
	return supported[idx]
}

// LanguageFrom devuelve el idioma resuelto por el middleware (o el default).
func LanguageFrom(ctx context.Context) schedule.Language {
	l, ok := ctx.Value(languageKey).(schedule.Language)
	if !ok {
		return schedule.DefaultLanguage
	}
	return l
}

// WithLanguage permite fijar el idioma fuera de HTTP (CLI, tests).
func WithLanguage(ctx context.Context, l schedule.Language) context.Context {
	return context.WithValue(ctx, languageKey, l)
}
