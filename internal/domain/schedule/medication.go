package schedule

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Medication es la preparación intestinal prescrita.
// @Enum plenvu, moviprep, citrafleet
type Medication string

const (
	MedicationNone       Medication = ""
	MedicationPlenvu     Medication = "plenvu"
	MedicationMoviprep   Medication = "moviprep"
	MedicationCitrafleet Medication = "citrafleet"
)

var Medications = []Medication{MedicationPlenvu, MedicationMoviprep, MedicationCitrafleet}

// ParseMedication hace match exacto (sin fuzzy). "" es válido: sin medicación.
func ParseMedication(s string) (Medication, bool) {
	switch m := Medication(strings.TrimSpace(s)); m {
	case MedicationNone, MedicationPlenvu, MedicationMoviprep, MedicationCitrafleet:
		return m, true
	default:
		return MedicationNone, false
	}
}

// medicationRule: cada variante decide su esquema de tomas y su etiqueta.
type medicationRule struct {
	// splitDose => dos ventanas de toma (16h y 10h antes).
	splitDose bool
	label     func(lang Language, hoursBefore int) string
}

func (m Medication) rule() medicationRule {
	switch m {
	case MedicationCitrafleet:
		return medicationRule{splitDose: true, label: m.namedLabel}
	case MedicationPlenvu, MedicationMoviprep:
		return medicationRule{splitDose: false, label: m.namedLabel}
	default:
		// Sin medicación seleccionada se asume el esquema de dos tomas.
		return medicationRule{splitDose: true, label: genericDoseLabel}
	}
}

// Name capitaliza el identificador: "plenvu" => "Plenvu".
func (m Medication) Name() string {
	if m == MedicationNone {
		return ""
	}
	return cases.Title(language.Und).String(string(m))
}

func (m Medication) SplitDose() bool {
	return m.rule().splitDose
}

// DoseLabel: "Toma do Plenvu 10h antes" / "Taking Plenvu 10h before".
func (m Medication) DoseLabel(lang Language, hoursBefore int) string {
	return m.rule().label(lang.OrDefault(), hoursBefore)
}

func (m Medication) namedLabel(lang Language, hours int) string {
	if lang == LanguageEN {
		return fmt.Sprintf("Taking %s %dh before", m.Name(), hours)
	}
	return fmt.Sprintf("Toma do %s %dh antes", m.Name(), hours)
}

func genericDoseLabel(lang Language, hours int) string {
	if lang == LanguageEN {
		return fmt.Sprintf("Medication %dh before", hours)
	}
	return fmt.Sprintf("Medicação %dh antes", hours)
}
