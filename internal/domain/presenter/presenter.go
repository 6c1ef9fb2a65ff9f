// Package presenter convierte un plan de eventos en modelos de vista:
// resumen "hero", línea de tiempo, enlaces de calendario externo y bloque de detalles.
// Todo es puro sobre (events, lang); un plan vacío produce placeholders, nunca error.
package presenter

import (
	"strings"

	"colonoscopy-prep/internal/domain/schedule"
)

const (
	Placeholder = "--"

	DefaultTimeZone = "Europe/Lisbon"
)

// Translator es lo único que el presenter necesita del catálogo de textos.
type Translator interface {
	Text(lang, key string) string
	TextN(lang, key string, n int) string
}

type Options struct {
	// TimeZone es el identificador fijo que se envía como ctz al calendario externo.
	TimeZone string
	// CalendarURL permite apuntar a otro servicio compatible (tests).
	CalendarURL string
}

type Presenter struct {
	tr   Translator
	opts Options
}

func New(tr Translator, opts Options) *Presenter {
	if opts.TimeZone == "" {
		opts.TimeZone = DefaultTimeZone
	}
	if opts.CalendarURL == "" {
		opts.CalendarURL = googleCalendarURL
	}
	return &Presenter{tr: tr, opts: opts}
}

func (p *Presenter) text(lang schedule.Language, key string) string {
	return p.tr.Text(lang.OrDefault().String(), key)
}

// Details arma el bloque compartido por enlaces y export .ics.
// Líneas: hora (si ShowTime), medicación (si es toma con medicación), notas médicas fijas.
func (p *Presenter) Details(e schedule.PrepEvent, lang schedule.Language) string {
	lines := make([]string, 0, 4)
	if e.ShowTime {
		lines = append(lines, p.text(lang, "timeline.withTime")+": "+formatTime(e, lang))
	}
	if e.ID.IsDose() && e.Medication != schedule.MedicationNone {
		lines = append(lines, p.text(lang, "calendarInfo.medication")+": "+e.Medication.Name())
	}
	lines = append(lines,
		p.text(lang, "calendarInfo.meds"),
		p.text(lang, "calendarInfo.note"),
	)
	return strings.Join(lines, "\n")
}

// Location es la dirección que se adjunta solo al evento del examen.
func (p *Presenter) Location(lang schedule.Language) string {
	return p.text(lang, "calendarInfo.locationValue")
}

// CalendarInfo es el recuadro informativo que acompaña a la exportación.
type CalendarInfo struct {
	Title  string   `json:"title,omitempty"`
	Items  []string `json:"items,omitempty"`
	NoDate string   `json:"no_date,omitempty"`
}

func (p *Presenter) CalendarInfo(events []schedule.PrepEvent, lang schedule.Language) CalendarInfo {
	if len(events) == 0 {
		return CalendarInfo{NoDate: p.text(lang, "calendar.noDate")}
	}
	return CalendarInfo{
		Title: p.text(lang, "calendarInfo.title"),
		Items: []string{
			p.text(lang, "calendarInfo.timezone"),
			p.text(lang, "calendarInfo.location"),
			p.text(lang, "calendarInfo.meds"),
			p.text(lang, "calendarInfo.note"),
		},
	}
}
