package presenter

import (
	"net/url"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

const googleCalendarURL = "https://calendar.google.com/calendar/render"

type CalendarLink struct {
	ID    schedule.EventID `json:"id"`
	Title string           `json:"title"`
	Label string           `json:"label"`
	URL   string           `json:"url"`
}

// Links genera un enlace "crear evento" de día completo por evento.
func (p *Presenter) Links(events []schedule.PrepEvent, lang schedule.Language) []CalendarLink {
	if len(events) == 0 {
		return nil
	}

	label := p.text(lang, "calendar.googleOpen")
	links := make([]CalendarLink, 0, len(events))
	for _, e := range events {
		links = append(links, CalendarLink{
			ID:    e.ID,
			Title: e.Title,
			Label: label,
			URL:   p.linkURL(e, lang),
		})
	}
	return links
}

func (p *Presenter) linkURL(e schedule.PrepEvent, lang schedule.Language) string {
	start := dates.StartOfDay(e.Instant)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("dates", dates.FormatExportDate(start)+"/"+dates.FormatExportDate(dates.NextDay(start)))
	q.Set("details", p.Details(e, lang))
	if e.ID == schedule.EventExam {
		q.Set("location", p.Location(lang))
	}
	q.Set("ctz", p.opts.TimeZone)

	return p.opts.CalendarURL + "?" + q.Encode()
}
