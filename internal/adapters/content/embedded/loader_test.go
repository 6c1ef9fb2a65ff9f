package embedded

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ports "colonoscopy-prep/internal/ports/content"
)

func TestLoader_PublishedLanguages(t *testing.T) {
	l := NewLoader()

	pt, err := l.Load(context.Background(), "pt")
	require.NoError(t, err)
	en, err := l.Load(context.Background(), "en")
	require.NoError(t, err)

	assert.NotEmpty(t, pt.Recipes)
	assert.NotEmpty(t, en.FAQs)

	// los ids de la lista de compras son los mismos en todos los idiomas
	require.Equal(t, len(pt.ShoppingList), len(en.ShoppingList))
	for i := range pt.ShoppingList {
		assert.Equal(t, pt.ShoppingList[i].ID, en.ShoppingList[i].ID)
	}
}

func TestLoader_UnknownLanguage(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "fr")
	assert.True(t, errors.Is(err, ports.ErrUnavailable))
}

func TestLoader_InvalidJSON(t *testing.T) {
	l := NewLoaderFS(fstest.MapFS{
		"data/content.pt.json": {Data: []byte("{")},
	})
	_, err := l.Load(context.Background(), "pt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ports.ErrUnavailable))
}
