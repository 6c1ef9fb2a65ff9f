// Package embedded sirve el contenido publicado junto con el binario.
package embedded

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	ports "colonoscopy-prep/internal/ports/content"
)

//go:embed data/*.json
var dataFS embed.FS

type Loader struct {
	fsys fs.FS
}

func NewLoader() *Loader {
	return &Loader{fsys: dataFS}
}

// NewLoaderFS permite otro árbol con la misma convención data/content.<lang>.json (tests).
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) Load(_ context.Context, lang string) (ports.Document, error) {
	raw, err := fs.ReadFile(l.fsys, fmt.Sprintf("data/content.%s.json", lang))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.Document{}, fmt.Errorf("embedded %s: %w", lang, ports.ErrUnavailable)
		}
		return ports.Document{}, fmt.Errorf("embedded %s: %w", lang, err)
	}

	var doc ports.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ports.Document{}, fmt.Errorf("embedded %s: invalid json: %w", lang, err)
	}
	return doc, nil
}
