package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo     Repository
	parser   dates.Parser
	cleaners []Cleaner
	now      func() time.Time
}

func NewService(repo Repository, parser dates.Parser) *Service {
	return &Service{
		repo:   repo,
		parser: parser,
		now:    time.Now,
	}
}

// Parser expone el parser de fecha/hora configurado (zona + hora por defecto).
func (s *Service) Parser() dates.Parser {
	return s.parser
}

// Input es lo que entrega el asistente al terminar.
type Input struct {
	Language      string
	ExamDate      string
	ExamTime      string
	Medication    string
	IsConstipated bool
}

// validate aplica las validaciones de cada paso del asistente.
func (s *Service) validate(in Input) (Profile, error) {
	lang, ok := schedule.ParseLanguage(in.Language)
	if !ok {
		return Profile{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.ExamDate)
	clock := strings.TrimSpace(in.ExamTime)
	if clock == "" {
		clock = s.parser.DefaultClock
	}
	if _, ok := s.parser.Combine(date, clock); !ok {
		return Profile{}, ErrInvalidInput
	}

	med, ok := schedule.ParseMedication(in.Medication)
	if !ok || med == schedule.MedicationNone {
		// el asistente obliga a elegir una medicación
		return Profile{}, ErrInvalidInput
	}

	return Profile{
		Language:      lang,
		ExamDate:      date,
		ExamTime:      clock,
		Medication:    med,
		IsConstipated: in.IsConstipated,
		Completed:     true,
	}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Profile, error) {
	p, err := s.validate(in)
	if err != nil {
		return Profile{}, err
	}

	now := s.now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	if strings.TrimSpace(id) == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Replace sustituye el perfil completo (se conserva id y created_at).
func (s *Service) Replace(ctx context.Context, id string, in Input) (Profile, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	p, err := s.validate(in)
	if err != nil {
		return Profile{}, err
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Reset borra el perfil: el asistente vuelve a empezar.
// Los datos asociados se limpian antes; si falla la limpieza el perfil sigue existiendo
// y el reset se puede reintentar.
func (s *Service) Reset(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	for _, c := range s.cleaners {
		if err := c.Clear(ctx, id); err != nil {
			return fmt.Errorf("reset %s: %w", id, err)
		}
	}
	return s.repo.Delete(ctx, id)
}
