package profiles

import (
	"time"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

// Profile son las respuestas del asistente de preparación.
// Se reemplaza entero (nunca parches parciales); el plan se recalcula a partir de él.
type Profile struct {
	ID string

	Language schedule.Language

	// ExamDate YYYY-MM-DD, ExamTime HH:MM. Se guardan tal cual llegan:
	// un valor malformado por query solo produce "sin plan".
	ExamDate string
	ExamTime string

	Medication    schedule.Medication
	IsConstipated bool

	// Completed marca que el asistente terminó los 4 pasos.
	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExamInstant combina fecha y hora del examen; ok=false si no hay fecha válida.
func (p Profile) ExamInstant(parser dates.Parser) (time.Time, bool) {
	return parser.Combine(p.ExamDate, p.ExamTime)
}

// Schedule construye el plan de eventos del perfil.
func (p Profile) Schedule(parser dates.Parser) []schedule.PrepEvent {
	// Sin fecha válida exam es el instante cero => plan vacío.
	exam, _ := p.ExamInstant(parser)
	return schedule.Build(exam, p.Language, p.IsConstipated, p.Medication)
}
