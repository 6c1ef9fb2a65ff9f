package content

import (
	"context"
	"errors"
)

// ErrUnavailable: el loader no tiene contenido para ese idioma.
var ErrUnavailable = errors.New("content unavailable")

// Loader trae el documento de contenido de un idioma (embebido, HTTP, ...).
type Loader interface {
	Load(ctx context.Context, lang string) (Document, error)
}
