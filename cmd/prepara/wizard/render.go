package wizard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"colonoscopy-prep/internal/domain/planner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(22)

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	noteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("244")).
			MarginTop(1)
)

// RenderPlan pinta hero + timeline en texto para la terminal.
func RenderPlan(plan planner.Plan, tr Texts) string {
	lang := plan.Profile.Language.OrDefault().String()
	t := func(key string) string { return tr.Text(lang, key) }

	var b strings.Builder
	b.WriteString(titleStyle.Render(t("meta.title")))
	b.WriteString("\n")

	if len(plan.Timeline) == 0 {
		b.WriteString(t("calendar.noDate"))
		b.WriteString("\n")
		return b.String()
	}

	hero := [][2]string{
		{t("hero.exam"), plan.Hero.Exam},
		{t("hero.diet"), plan.Hero.Diet},
		{t("hero.meds"), plan.Hero.Meds},
	}
	if plan.Hero.Dulcolax48 != "" {
		hero = append(hero, [2]string{t("hero.dulcolax"), plan.Hero.Dulcolax48 + " / " + plan.Hero.Dulcolax24})
	}
	for _, row := range hero {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, it := range plan.Timeline {
		line := it.Title + "  " + it.Date + " · " + it.Time
		if it.Highlight {
			line = highlightStyle.Render(line)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(it.DayLabel), line))
		b.WriteString("\n")
	}

	if plan.ShareLink != "" {
		b.WriteString(noteStyle.Render(plan.ShareLink))
		b.WriteString("\n")
	}
	return b.String()
}
