package schedule

import (
	"sort"
	"time"

	"colonoscopy-prep/internal/dates"
)

const (
	dietDaysBefore       = 3
	firstDoseHoursBefore = 16
	lastDoseHoursBefore  = 10
)

// Build deriva el plan completo a partir del instante del examen.
// exam cero => plan vacío ("todavía no hay fecha"), nunca error.
// Siempre devuelve un slice nuevo ordenado por Instant.
func Build(exam time.Time, lang Language, constipated bool, med Medication) []PrepEvent {
	if exam.IsZero() {
		return []PrepEvent{}
	}

	lang = lang.OrDefault()
	labels := labelsFor(lang)

	events := make([]PrepEvent, 0, 6)
	events = append(events,
		PrepEvent{
			ID:       EventDiet,
			Title:    labels.diet,
			Instant:  dates.StartOfDay(dates.OffsetDays(exam, -dietDaysBefore)),
			ShowTime: false,
		},
		PrepEvent{
			ID:         EventMed10,
			Title:      med.DoseLabel(lang, lastDoseHoursBefore),
			Instant:    dates.OffsetHours(exam, -lastDoseHoursBefore),
			ShowTime:   true,
			Medication: med,
		},
		PrepEvent{
			ID:        EventExam,
			Title:     labels.exam,
			Instant:   exam,
			ShowTime:  true,
			Highlight: true,
		},
	)

	if med.SplitDose() {
		events = append(events, PrepEvent{
			ID:         EventMed16,
			Title:      med.DoseLabel(lang, firstDoseHoursBefore),
			Instant:    dates.OffsetHours(exam, -firstDoseHoursBefore),
			ShowTime:   true,
			Medication: med,
		})
	}

	if constipated {
		events = append(events,
			PrepEvent{
				ID:       EventDulcolax48,
				Title:    labels.dulcolax,
				Instant:  dates.OffsetHours(exam, -48),
				ShowTime: true,
			},
			PrepEvent{
				ID:       EventDulcolax24,
				Title:    labels.dulcolax,
				Instant:  dates.OffsetHours(exam, -24),
				ShowTime: true,
			},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Instant.Before(events[j].Instant)
	})
	return events
}
