package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
)

// Texts es el catálogo de traducciones (i18n.Catalog).
type Texts interface {
	Text(lang, key string) string
}

// Answers son las respuestas de los 4 pasos.
type Answers struct {
	Language      string
	ExamDate      string
	ExamTime      string
	Medication    string
	IsConstipated bool
}

// DefaultAnswers parte del perfil guardado o, si no hay, de hoy + 7 días a las 08:30.
func DefaultAnswers(p profiles.Profile, now time.Time) Answers {
	a := Answers{
		Language:      p.Language.OrDefault().String(),
		ExamDate:      p.ExamDate,
		ExamTime:      p.ExamTime,
		Medication:    string(p.Medication),
		IsConstipated: p.IsConstipated,
	}
	if a.ExamDate == "" {
		a.ExamDate = dates.DefaultExamDate(now)
	}
	if a.ExamTime == "" {
		a.ExamTime = dates.DefaultClock
	}
	if a.Medication == "" {
		a.Medication = string(schedule.MedicationPlenvu)
	}
	return a
}

func (a Answers) Input() profiles.Input {
	return profiles.Input{
		Language:      a.Language,
		ExamDate:      a.ExamDate,
		ExamTime:      a.ExamTime,
		Medication:    a.Medication,
		IsConstipated: a.IsConstipated,
	}
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(dates.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, _, err := dates.ParseClock(s); err != nil {
		return fmt.Errorf("invalid time, use HH:MM")
	}
	return nil
}

// languageForm es el paso 1; el resto del asistente se muestra en el idioma elegido.
func languageForm(a *Answers, tr Texts) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("language").
				Title(tr.Text(a.Language, "wizard.step1Title")).
				Description(tr.Text(a.Language, "wizard.step1Subtitle")).
				Options(
					huh.NewOption("Português", string(schedule.LanguagePT)),
					huh.NewOption("English", string(schedule.LanguageEN)),
				).
				Value(&a.Language),
		),
	).WithShowHelp(false)
}

func stepsForm(a *Answers, tr Texts) *huh.Form {
	lang := a.Language
	t := func(key string) string { return tr.Text(lang, key) }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("exam_date").
				Title(t("wizard.dateLabel")).
				Description("YYYY-MM-DD").
				Value(&a.ExamDate).
				Validate(validateDate),
			huh.NewInput().
				Key("exam_time").
				Title(t("wizard.timeLabel")).
				Description("HH:MM").
				Value(&a.ExamTime).
				Validate(validateClock),
		).Title(t("wizard.step2Title")).Description(t("wizard.step2Subtitle")),

		huh.NewGroup(
			huh.NewSelect[string]().
				Key("medication").
				Title(t("wizard.step3Title")).
				Description(t("wizard.step3Subtitle")).
				Options(
					huh.NewOption(schedule.MedicationPlenvu.Name()+" · "+t("wizard.plenvuDesc"), string(schedule.MedicationPlenvu)),
					huh.NewOption(schedule.MedicationMoviprep.Name()+" · "+t("wizard.moviprepDesc"), string(schedule.MedicationMoviprep)),
					huh.NewOption(schedule.MedicationCitrafleet.Name()+" · "+t("wizard.citrafleetDesc"), string(schedule.MedicationCitrafleet)),
				).
				Value(&a.Medication),
		),

		huh.NewGroup(
			huh.NewConfirm().
				Key("constipated").
				Title(t("wizard.step4Title")).
				Description(t("wizard.step4Subtitle")+"\n"+t("wizard.constipationAlert")).
				Affirmative(t("wizard.yes")).
				Negative(t("wizard.no")).
				Value(&a.IsConstipated),
		),
	).WithShowHelp(false).WithShowErrors(true)
}

// ErrAborted: el usuario salió del asistente (Ctrl+C / Esc).
var ErrAborted = errors.New("wizard aborted")

// Run ejecuta los 4 pasos sobre a (que trae los valores por defecto).
func Run(ctx context.Context, a *Answers, tr Texts) error {
	for _, build := range []func(*Answers, Texts) *huh.Form{languageForm, stepsForm} {
		if err := build(a, tr).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrAborted
			}
			return fmt.Errorf("running wizard: %w", err)
		}
	}
	return nil
}
