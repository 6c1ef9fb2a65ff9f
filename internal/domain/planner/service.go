// Package planner compone perfil -> plan de eventos -> vistas (hero, timeline, enlaces, .ics).
package planner

import (
	"context"
	"net/url"
	"time"

	"colonoscopy-prep/internal/domain/calendar"
	"colonoscopy-prep/internal/domain/presenter"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
)

// Texts es lo que se necesita del catálogo (nombre del fichero .ics).
type Texts interface {
	Text(lang, key string) string
}

type Service struct {
	profiles  *profiles.Service
	presenter *presenter.Presenter
	exporter  *calendar.Exporter
	texts     Texts

	publicBaseURL string
	now           func() time.Time
}

type Options struct {
	// PublicBaseURL es la base del enlace para compartir.
	PublicBaseURL string
}

func NewService(profilesSvc *profiles.Service, p *presenter.Presenter, texts Texts, opts Options) *Service {
	return &Service{
		profiles:      profilesSvc,
		presenter:     p,
		exporter:      calendar.NewExporter(p),
		texts:         texts,
		publicBaseURL: opts.PublicBaseURL,
		now:           time.Now,
	}
}

// Plan es el plan derivado de un perfil más todas sus vistas.
type Plan struct {
	Profile profiles.Profile
	Events  []schedule.PrepEvent

	Hero         presenter.HeroSummary
	Timeline     []presenter.TimelineItem
	Links        []presenter.CalendarLink
	CalendarInfo presenter.CalendarInfo
	ShareLink    string
}

// Build recalcula todo desde cero a partir del perfil (nunca parches incrementales).
func (s *Service) Build(p profiles.Profile) Plan {
	lang := p.Language.OrDefault()
	p.Language = lang

	events := p.Schedule(s.profiles.Parser())
	return Plan{
		Profile:      p,
		Events:       events,
		Hero:         s.presenter.Hero(events, lang),
		Timeline:     s.presenter.Timeline(events, lang),
		Links:        s.presenter.Links(events, lang),
		CalendarInfo: s.presenter.CalendarInfo(events, lang),
		ShareLink:    profiles.ShareLink(s.publicBaseURL, p),
	}
}

// ForQuery arma un plan sin perfil guardado: todo sale de la query.
func (s *Service) ForQuery(lang schedule.Language, q url.Values) Plan {
	return s.Build(profiles.ApplyOverrides(profiles.Profile{Language: lang}, q))
}

// ForProfile usa el perfil guardado con la query por encima.
func (s *Service) ForProfile(ctx context.Context, profileID string, q url.Values) (Plan, error) {
	p, err := s.profiles.Get(ctx, profileID)
	if err != nil {
		return Plan{}, err
	}
	return s.Build(profiles.ApplyOverrides(p, q)), nil
}

// ICS devuelve nombre de fichero y contenido; body nil si el plan está vacío.
func (s *Service) ICS(plan Plan) (filename string, body []byte) {
	lang := plan.Profile.Language.OrDefault()
	filename = s.texts.Text(lang.String(), "ics.filename")
	return filename, s.exporter.Export(plan.Events, lang, s.now())
}
