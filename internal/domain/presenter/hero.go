package presenter

import (
	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

// HeroSummary es el resumen corto de la cabecera.
type HeroSummary struct {
	Exam string `json:"exam"`
	Diet string `json:"diet"`
	Meds string `json:"meds"`

	Dulcolax48 string `json:"dulcolax_48,omitempty"`
	Dulcolax24 string `json:"dulcolax_24,omitempty"`
}

func emptyHero() HeroSummary {
	return HeroSummary{Exam: Placeholder, Diet: Placeholder, Meds: Placeholder}
}

// Hero toma examen, dieta y la primera toma (med16 si existe, si no med10).
func (p *Presenter) Hero(events []schedule.PrepEvent, lang schedule.Language) HeroSummary {
	exam, ok := schedule.Find(events, schedule.EventExam)
	if !ok {
		return emptyHero()
	}

	langCode := lang.OrDefault().String()
	h := emptyHero()
	h.Exam = dates.FormatDisplayDateTime(exam.Instant, langCode)

	if diet, ok := schedule.Find(events, schedule.EventDiet); ok {
		h.Diet = dates.FormatDisplayDate(diet.Instant, langCode)
	}

	med, ok := schedule.Find(events, schedule.EventMed16)
	if !ok {
		med, ok = schedule.Find(events, schedule.EventMed10)
	}
	if ok {
		h.Meds = dates.FormatDisplayDateTime(med.Instant, langCode)
	}

	if d, ok := schedule.Find(events, schedule.EventDulcolax48); ok {
		h.Dulcolax48 = dates.FormatDisplayDateTime(d.Instant, langCode)
	}
	if d, ok := schedule.Find(events, schedule.EventDulcolax24); ok {
		h.Dulcolax24 = dates.FormatDisplayDateTime(d.Instant, langCode)
	}
	return h
}
