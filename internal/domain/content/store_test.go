package content

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ports "colonoscopy-prep/internal/ports/content"
)

type fakeLoader struct {
	mu    sync.Mutex
	docs  map[string]Document
	calls map[string]int
}

func newFakeLoader(docs map[string]Document) *fakeLoader {
	return &fakeLoader{docs: docs, calls: map[string]int{}}
}

func (f *fakeLoader) Load(_ context.Context, lang string) (Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[lang]++
	doc, ok := f.docs[lang]
	if !ok {
		return Document{}, ports.ErrUnavailable
	}
	return doc, nil
}

var (
	ptDoc = Document{
		ShoppingList: []ShoppingItem{{ID: "white-rice", Text: "Arroz branco"}},
		Recipes: []Recipe{
			{Category: "breakfast", Title: "Torradas"},
			{Category: "lunch", Title: "Pescada"},
			{Category: "lunch", Title: "Frango"},
		},
	}
	enDoc = Document{
		ShoppingList: []ShoppingItem{{ID: "white-rice", Text: "White rice"}, {ID: "en-only", Text: "x"}},
	}
)

func TestStore_CachesPerLanguage(t *testing.T) {
	loader := newFakeLoader(map[string]Document{"pt": ptDoc, "en": enDoc})
	s := NewStore(loader, nil, "pt", []string{"pt", "en"})

	for i := 0; i < 3; i++ {
		doc, err := s.Get(context.Background(), "en")
		require.NoError(t, err)
		assert.Equal(t, "White rice", doc.ShoppingList[0].Text)
	}
	assert.Equal(t, 1, loader.calls["en"])
}

func TestStore_FallbackLanguage(t *testing.T) {
	loader := newFakeLoader(map[string]Document{"pt": ptDoc})
	s := NewStore(loader, nil, "pt", []string{"pt", "en"})

	doc, err := s.Get(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "Arroz branco", doc.ShoppingList[0].Text)

	// el fallback no se cachea bajo "en": se reintenta
	_, _ = s.Get(context.Background(), "en")
	assert.Equal(t, 2, loader.calls["en"])
	assert.Equal(t, 1, loader.calls["pt"])
}

func TestStore_NoContentAtAll(t *testing.T) {
	s := NewStore(newFakeLoader(nil), nil, "pt", []string{"pt", "en"})

	_, err := s.Get(context.Background(), "en")
	assert.True(t, errors.Is(err, ports.ErrUnavailable))

	_, err = s.Get(context.Background(), "pt")
	assert.True(t, errors.Is(err, ports.ErrUnavailable))
}

func TestStore_Preload(t *testing.T) {
	loader := newFakeLoader(map[string]Document{"pt": ptDoc})
	s := NewStore(loader, nil, "pt", []string{"pt", "en"})

	err := s.Preload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preload en")

	_, err = s.Get(context.Background(), "pt")
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls["pt"])
}

func TestStore_HasShoppingItem(t *testing.T) {
	s := NewStore(newFakeLoader(map[string]Document{"pt": ptDoc, "en": enDoc}), nil, "pt", []string{"pt", "en"})

	ok, err := s.HasShoppingItem(context.Background(), "en-only")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HasShoppingItem(context.Background(), "chocolate")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ConcurrentGet(t *testing.T) {
	s := NewStore(newFakeLoader(map[string]Document{"pt": ptDoc}), nil, "pt", []string{"pt"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Get(context.Background(), "pt")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestRecipes(t *testing.T) {
	assert.Len(t, Recipes(ptDoc, "all"), 3)
	assert.Len(t, Recipes(ptDoc, ""), 3)
	assert.Len(t, Recipes(ptDoc, "lunch"), 2)
	assert.Empty(t, Recipes(ptDoc, "dinner"))

	assert.True(t, IsRecipeCategory("snack"))
	assert.False(t, IsRecipeCategory("brunch"))
}
