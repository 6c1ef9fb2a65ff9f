// Package calendar serializa un plan de eventos a iCalendar (RFC 5545).
package calendar

import (
	"fmt"
	"strings"
	"time"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

const (
	ProductID   = "-//CUF Prepara//Colonoscopy Prep//PT"
	ContentType = "text/calendar; charset=utf-8"

	uidDomain = "cuf-prepara"
	crlf      = "\r\n"
)

// Detailer aporta el mismo bloque de detalles que usan los enlaces externos.
type Detailer interface {
	Details(e schedule.PrepEvent, lang schedule.Language) string
	Location(lang schedule.Language) string
}

type Exporter struct {
	details Detailer
}

func NewExporter(d Detailer) *Exporter {
	return &Exporter{details: d}
}

// Export devuelve nil con plan vacío (no un VCALENDAR sin eventos).
// now fija DTSTAMP y el sufijo de los UID: es el mismo para todo el documento.
func (x *Exporter) Export(events []schedule.PrepEvent, lang schedule.Language, now time.Time) []byte {
	if len(events) == 0 {
		return nil
	}

	stamp := dates.FormatUTCStamp(now)
	genMillis := now.UnixMilli()

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"PRODID:" + ProductID,
	}

	for _, e := range events {
		start := dates.StartOfDay(e.Instant)
		day := dates.FormatExportDate(start)

		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s-%s-%d@%s", e.ID, day, genMillis, uidDomain),
			"DTSTAMP:"+stamp,
			"SUMMARY:"+escapeText(e.Title),
			"DTSTART;VALUE=DATE:"+day,
			"DTEND;VALUE=DATE:"+dates.FormatExportDate(dates.NextDay(start)),
			"DESCRIPTION:"+escapeText(x.details.Details(e, lang)),
		)
		if e.ID == schedule.EventExam {
			lines = append(lines, "LOCATION:"+escapeText(x.details.Location(lang)))
		}
		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, crlf) + crlf)
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escapeText aplica el escapado de valores TEXT de RFC 5545 §3.3.11.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
