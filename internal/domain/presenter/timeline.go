package presenter

import (
	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

// Más allá de este umbral la etiqueta relativa pasa a ser la fecha.
const maxRelativeDays = 3

type TimelineItem struct {
	ID        schedule.EventID `json:"id"`
	DayLabel  string           `json:"day_label"`
	Title     string           `json:"title"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Highlight bool             `json:"highlight"`
}

// Timeline devuelve nil con plan vacío: el renderer muestra calendar.noDate.
func (p *Presenter) Timeline(events []schedule.PrepEvent, lang schedule.Language) []TimelineItem {
	exam, ok := schedule.Find(events, schedule.EventExam)
	if !ok {
		return nil
	}

	langCode := lang.OrDefault().String()
	items := make([]TimelineItem, 0, len(events))
	for _, e := range events {
		item := TimelineItem{
			ID:        e.ID,
			DayLabel:  p.dayLabel(dates.WholeDays(e.Instant, exam.Instant), e, lang),
			Title:     e.Title,
			Date:      dates.FormatDisplayDate(e.Instant, langCode),
			Highlight: e.Highlight,
		}
		if e.ShowTime {
			item.Time = formatTime(e, lang)
		} else {
			item.Time = p.tr.Text(langCode, "timeline.allDay")
		}
		items = append(items, item)
	}
	return items
}

func (p *Presenter) dayLabel(daysBefore int, e schedule.PrepEvent, lang schedule.Language) string {
	langCode := lang.OrDefault().String()
	switch {
	case daysBefore == 0:
		return p.tr.Text(langCode, "timeline.examDay")
	case daysBefore == 1:
		return p.tr.Text(langCode, "timeline.dayBefore")
	case daysBefore > 1 && daysBefore <= maxRelativeDays:
		return p.tr.TextN(langCode, "timeline.daysBefore", daysBefore)
	default:
		return dates.FormatDisplayDate(e.Instant, langCode)
	}
}

func formatTime(e schedule.PrepEvent, lang schedule.Language) string {
	return dates.FormatDisplayTime(e.Instant, lang.OrDefault().String())
}
