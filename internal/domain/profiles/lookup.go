package profiles

import (
	"context"
	"errors"
)

// Exists lo usan otros módulos (checklist) sin importar profiles.Repository.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Cleaner borra datos asociados a un perfil cuando se reinicia el asistente.
type Cleaner interface {
	Clear(ctx context.Context, profileID string) error
}

func (s *Service) OnReset(c Cleaner) {
	s.cleaners = append(s.cleaners, c)
}
