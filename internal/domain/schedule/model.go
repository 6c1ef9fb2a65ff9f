package schedule

import "time"

// PrepEvent es un hito fechado del plan de preparación.
type PrepEvent struct {
	ID    EventID
	Title string

	Instant time.Time

	// ShowTime=false => solo fecha (inicio de dieta).
	ShowTime bool
	// Highlight marca el evento crítico (el examen).
	Highlight bool

	// Medication solo se rellena en eventos de toma.
	Medication Medication
}

// Find devuelve el primer evento con ese id.
func Find(events []PrepEvent, id EventID) (PrepEvent, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return PrepEvent{}, false
}

type eventLabels struct {
	diet     string
	exam     string
	dulcolax string
}

func labelsFor(lang Language) eventLabels {
	switch lang {
	case LanguageEN:
		return eventLabels{
			diet:     "Start low-residue diet",
			exam:     "Colonoscopy",
			dulcolax: "Dulcolax, 2 tablets",
		}
	default:
		return eventLabels{
			diet:     "Início da dieta pobre em resíduos",
			exam:     "Colonoscopia",
			dulcolax: "Dulcolax, 2 comprimidos",
		}
	}
}
