package remote

import (
	"context"

	"colonoscopy-prep/internal/platform/logger"
	ports "colonoscopy-prep/internal/ports/content"
)

// Loader prefiere el servidor remoto y usa fallback (embebido) si no responde.
type Loader struct {
	client   *Client
	fallback ports.Loader
	log      logger.Logger
}

func NewLoader(client *Client, fallback ports.Loader, log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{client: client, fallback: fallback, log: log}
}

func (l *Loader) Load(ctx context.Context, lang string) (ports.Document, error) {
	if !l.client.IsConfigured() {
		return l.fromFallback(ctx, lang, ErrNotConfigured)
	}

	doc, err := l.client.Load(ctx, lang)
	if err == nil {
		return doc, nil
	}

	l.log.Warn("remote content failed", map[string]any{"lang": lang, "error": err})
	return l.fromFallback(ctx, lang, err)
}

func (l *Loader) fromFallback(ctx context.Context, lang string, cause error) (ports.Document, error) {
	if l.fallback == nil {
		return ports.Document{}, cause
	}
	return l.fallback.Load(ctx, lang)
}
