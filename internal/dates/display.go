package dates

import (
	"fmt"
	"time"
)

type localeNames struct {
	weekdays [7]string
	months   [12]string
	layout   func(weekday string, day int, month string, year int) string
}

var locales = map[string]localeNames{
	"pt": {
		weekdays: [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		months:   [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		layout: func(wd string, d int, m string, y int) string {
			return fmt.Sprintf("%s, %02d %s %d", wd, d, m, y)
		},
	},
	"en": {
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		layout: func(wd string, d int, m string, y int) string {
			return fmt.Sprintf("%s, %02d %s %d", wd, d, m, y)
		},
	},
}

func localeFor(lang string) localeNames {
	if l, ok := locales[lang]; ok {
		return l
	}
	return locales["pt"]
}

// FormatDisplayDate: "seg., 10 jun. 2024" / "Mon, 10 Jun 2024".
func FormatDisplayDate(t time.Time, lang string) string {
	l := localeFor(lang)
	return l.layout(l.weekdays[t.Weekday()], t.Day(), l.months[t.Month()-1], t.Year())
}

// FormatDisplayTime usa reloj de 24h en ambos idiomas.
func FormatDisplayTime(t time.Time, _ string) string {
	return t.Format(ClockLayout)
}

func FormatDisplayDateTime(t time.Time, lang string) string {
	return FormatDisplayDate(t, lang) + " · " + FormatDisplayTime(t, lang)
}
