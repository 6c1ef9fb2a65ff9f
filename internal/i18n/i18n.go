// Package i18n resuelve textos por clave con puntos ("calendarInfo.note").
// Sin motor de plurales ni formatos: lookup simple + idioma de respaldo.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localesFS embed.FS

const FallbackLanguage = "pt"

type Catalog struct {
	fallback string
	byLang   map[string]map[string]any
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default devuelve el catálogo embebido (pt + en).
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(localesFS, "locales", FallbackLanguage)
		if err != nil {
			// Los JSON embebidos se validan en tests; si fallan es un bug de build.
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load lee <dir>/<lang>.json de fsys.
func Load(fsys fs.FS, dir, fallback string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read dir: %w", err)
	}

	c := &Catalog{
		fallback: fallback,
		byLang:   make(map[string]map[string]any),
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
		c.byLang[strings.TrimSuffix(e.Name(), ".json")] = tree
	}

	if _, ok := c.byLang[fallback]; !ok {
		return nil, fmt.Errorf("i18n: fallback language %q not found", fallback)
	}
	return c, nil
}

func (c *Catalog) Has(lang string) bool {
	_, ok := c.byLang[lang]
	return ok
}

// Text busca key en lang, luego en el idioma de respaldo; si no existe devuelve la key.
func (c *Catalog) Text(lang, key string) string {
	if s, ok := lookup(c.byLang[lang], key); ok {
		return s
	}
	if s, ok := lookup(c.byLang[c.fallback], key); ok {
		return s
	}
	return key
}

// TextN sustituye "{n}" por n.
func (c *Catalog) TextN(lang, key string, n int) string {
	return strings.ReplaceAll(c.Text(lang, key), "{n}", strconv.Itoa(n))
}

func lookup(tree map[string]any, key string) (string, bool) {
	if tree == nil {
		return "", false
	}
	var current any = tree
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}
