// Package content sirve el contenido estático por idioma (dieta, recetas, lista de compras...)
// con una caché de lectura que se llena una vez por idioma y no se invalida.
package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"colonoscopy-prep/internal/platform/logger"
	ports "colonoscopy-prep/internal/ports/content"
)

type (
	Document     = ports.Document
	Recipe       = ports.Recipe
	ShoppingItem = ports.ShoppingItem
)

var ErrUnavailable = ports.ErrUnavailable

type Store struct {
	loader    ports.Loader
	log       logger.Logger
	fallback  string
	languages []string

	mu    sync.RWMutex
	cache map[string]Document
}

// NewStore: fallback es el idioma que sustituye a uno que no se pudo cargar.
func NewStore(loader ports.Loader, log logger.Logger, fallback string, languages []string) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		loader:    loader,
		log:       log.With(map[string]any{"component": "content"}),
		fallback:  fallback,
		languages: languages,
		cache:     make(map[string]Document),
	}
}

func (s *Store) cached(lang string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.cache[lang]
	return doc, ok
}

func (s *Store) load(ctx context.Context, lang string) (Document, error) {
	if doc, ok := s.cached(lang); ok {
		return doc, nil
	}

	doc, err := s.loader.Load(ctx, lang)
	if err != nil {
		return Document{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// otro request pudo ganar la carrera; nos quedamos con el primero
	if existing, ok := s.cache[lang]; ok {
		return existing, nil
	}
	s.cache[lang] = doc
	return doc, nil
}

// Get devuelve el contenido de lang. Si no está disponible usa el idioma de respaldo
// (sin cachearlo bajo lang, para reintentar en la próxima petición).
func (s *Store) Get(ctx context.Context, lang string) (Document, error) {
	doc, err := s.load(ctx, lang)
	if err == nil {
		return doc, nil
	}
	if lang == s.fallback {
		return Document{}, fmt.Errorf("content %s: %w", lang, err)
	}

	s.log.Warn("content unavailable, using fallback language", map[string]any{
		"lang":     lang,
		"fallback": s.fallback,
		"error":    err,
	})

	doc, ferr := s.load(ctx, s.fallback)
	if ferr != nil {
		return Document{}, fmt.Errorf("content %s (fallback %s): %w", lang, s.fallback, errors.Join(err, ferr))
	}
	return doc, nil
}

// Preload calienta la caché para todos los idiomas; los errores se loguean y se devuelven juntos.
func (s *Store) Preload(ctx context.Context) error {
	var errs []error
	for _, lang := range s.languages {
		if _, err := s.load(ctx, lang); err != nil {
			s.log.Warn("content preload failed", map[string]any{"lang": lang, "error": err})
			errs = append(errs, fmt.Errorf("preload %s: %w", lang, err))
		}
	}
	return errors.Join(errs...)
}

// HasShoppingItem busca el id en la lista de compras de cualquier idioma.
func (s *Store) HasShoppingItem(ctx context.Context, itemID string) (bool, error) {
	var lastErr error
	loaded := 0
	for _, lang := range s.languages {
		doc, err := s.load(ctx, lang)
		if err != nil {
			lastErr = err
			continue
		}
		loaded++
		for _, it := range doc.ShoppingList {
			if it.ID == itemID {
				return true, nil
			}
		}
	}
	if loaded == 0 && lastErr != nil {
		return false, lastErr
	}
	return false, nil
}
