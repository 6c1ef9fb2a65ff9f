package profiles

import (
	"net/url"
	"strconv"
	"strings"

	"colonoscopy-prep/internal/domain/schedule"
)

// Claves de query reconocidas. Las cortas (exame, hora, lang) son las del enlace para compartir.
var (
	languageKeys = []string{"lang", "language"}
	dateKeys     = []string{"exame", "examDate"}
	timeKeys     = []string{"hora", "examTime"}
)

// ApplyOverrides devuelve una copia del perfil con los valores de la query encima.
// Idioma o medicación desconocidos se ignoran.
func ApplyOverrides(p Profile, q url.Values) Profile {
	if v, ok := first(q, languageKeys); ok {
		if lang, ok := schedule.ParseLanguage(v); ok {
			p.Language = lang
		}
	}
	if v, ok := first(q, dateKeys); ok {
		p.ExamDate = v
	}
	if v, ok := first(q, timeKeys); ok {
		p.ExamTime = v
	}
	if v, ok := first(q, []string{"medication"}); ok {
		if med, ok := schedule.ParseMedication(v); ok {
			p.Medication = med
		}
	}
	if v, ok := first(q, []string{"isConstipated"}); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.IsConstipated = b
		}
	}
	return p
}

func first(q url.Values, keys []string) (string, bool) {
	for _, k := range keys {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			return v, true
		}
	}
	return "", false
}

// ShareLink arma el enlace para compartir: base sin query + exame, hora, lang.
func ShareLink(baseURL string, p Profile) string {
	base := baseURL
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}

	q := url.Values{}
	if p.ExamDate != "" {
		q.Set("exame", p.ExamDate)
	}
	if p.ExamTime != "" {
		q.Set("hora", p.ExamTime)
	}
	q.Set("lang", p.Language.OrDefault().String())

	return base + "?" + q.Encode()
}
