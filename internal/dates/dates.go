// Package dates concentra la aritmética de fechas del plan de preparación:
// combinar fecha + hora del examen, desplazamientos y formatos (pantalla vs export).
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// DefaultClock es la hora del examen cuando el paciente no indica ninguna.
	DefaultClock = "08:30"

	exportLayout   = "20060102"
	utcStampLayout = "20060102T150405Z"
)

// Parser combina fecha y hora en un instante dentro de una zona horaria fija.
type Parser struct {
	Location     *time.Location
	DefaultClock string
}

func NewParser(loc *time.Location, defaultClock string) Parser {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(defaultClock) == "" {
		defaultClock = DefaultClock
	}
	return Parser{Location: loc, DefaultClock: defaultClock}
}

// Combine devuelve ok=false si la fecha falta o no se puede parsear.
// Hora vacía => DefaultClock.
func (p Parser) Combine(date, clock string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false
	}

	loc := p.Location
	if loc == nil {
		loc = time.Local
	}

	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, false
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = p.DefaultClock
	}
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), true
}

// ParseClock acepta "HH:MM" y también "HH" (minutos = 0).
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid clock %q", s)
	}
	if len(parts) == 1 || parts[1] == "" {
		return hour, 0, nil
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock %q", s)
	}
	return hour, minute, nil
}

func OffsetHours(t time.Time, h int) time.Time {
	return t.Add(time.Duration(h) * time.Hour)
}

// OffsetDays mueve días de calendario (respeta la hora local, no 24h exactas).
func OffsetDays(t time.Time, d int) time.Time {
	return t.AddDate(0, 0, d)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDay es el inicio del día siguiente (fin exclusivo de un evento de día completo).
func NextDay(t time.Time) time.Time {
	return OffsetDays(StartOfDay(t), 1)
}

// WholeDays devuelve la diferencia to-from en días completos, truncada hacia cero.
// Se mide sobre la hora de pared de cada instante, así un cambio de horario no mueve el resultado.
func WholeDays(from, to time.Time) int {
	return int(wallClock(to).Sub(wallClock(from)) / (24 * time.Hour))
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func FormatExportDate(t time.Time) string {
	return t.Format(exportLayout)
}

func FormatUTCStamp(t time.Time) string {
	return t.UTC().Format(utcStampLayout)
}

func FormatDateInput(t time.Time) string {
	return t.Format(DateLayout)
}

// DefaultExamDate propone una fecha de examen a una semana de hoy.
func DefaultExamDate(now time.Time) string {
	return FormatDateInput(OffsetDays(now, 7))
}
