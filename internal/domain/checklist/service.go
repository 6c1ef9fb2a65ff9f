package checklist

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnknownItem  = errors.New("unknown shopping list item")
)

// ProfileLookup evita importar el paquete profiles (rompe ciclos).
type ProfileLookup interface {
	Exists(ctx context.Context, profileID string) (bool, error)
}

// ItemCatalog dice si un id pertenece a la lista de compras publicada.
type ItemCatalog interface {
	HasShoppingItem(ctx context.Context, itemID string) (bool, error)
}

type Service struct {
	repo     Repository
	profiles ProfileLookup
	catalog  ItemCatalog
	now      func() time.Time
}

func NewService(repo Repository, profiles ProfileLookup, catalog ItemCatalog) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		catalog:  catalog,
		now:      time.Now,
	}
}

func (s *Service) ensureProfile(ctx context.Context, profileID string) error {
	if strings.TrimSpace(profileID) == "" {
		return ErrInvalidInput
	}
	ok, err := s.profiles.Exists(ctx, profileID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Set marca/desmarca un artículo. Devuelve el estado completo actualizado.
func (s *Service) Set(ctx context.Context, profileID, itemID string, checked bool) (State, error) {
	profileID = strings.TrimSpace(profileID)
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidInput
	}
	if err := s.ensureProfile(ctx, profileID); err != nil {
		return nil, err
	}

	known, err := s.catalog.HasShoppingItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrUnknownItem
	}

	if err := s.repo.Set(ctx, Item{
		ProfileID: profileID,
		ItemID:    itemID,
		Checked:   checked,
		UpdatedAt: s.now(),
	}); err != nil {
		return nil, err
	}
	return s.Get(ctx, profileID)
}

// Get devuelve el estado guardado; los artículos nunca tocados no aparecen.
func (s *Service) Get(ctx context.Context, profileID string) (State, error) {
	if err := s.ensureProfile(ctx, profileID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByProfile(ctx, strings.TrimSpace(profileID))
	if err != nil {
		return nil, err
	}
	return toState(items), nil
}

// Clear se usa al reiniciar el asistente.
func (s *Service) Clear(ctx context.Context, profileID string) error {
	if strings.TrimSpace(profileID) == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteByProfile(ctx, profileID)
}
