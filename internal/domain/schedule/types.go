package schedule

import "strings"

// EventID es el conjunto cerrado de hitos del plan.
type EventID string

const (
	EventDiet       EventID = "diet"
	EventMed16      EventID = "med16"
	EventMed10      EventID = "med10"
	EventExam       EventID = "exam"
	EventDulcolax48 EventID = "dulcolax48"
	EventDulcolax24 EventID = "dulcolax24"
)

// IsDose: eventos de toma de la preparación intestinal.
func (id EventID) IsDose() bool {
	return id == EventMed16 || id == EventMed10
}

// Language es el idioma del paciente.
// @Enum pt, en
type Language string

const (
	LanguagePT Language = "pt"
	LanguageEN Language = "en"

	DefaultLanguage = LanguagePT
)

var Languages = []Language{LanguagePT, LanguageEN}

// ParseLanguage solo acepta idiomas conocidos (lo demás se ignora).
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguagePT:
		return LanguagePT, true
	case LanguageEN:
		return LanguageEN, true
	default:
		return "", false
	}
}

func (l Language) OrDefault() Language {
	if _, ok := ParseLanguage(string(l)); ok {
		return l
	}
	return DefaultLanguage
}

func (l Language) String() string { return string(l) }
