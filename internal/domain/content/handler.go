package content

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"colonoscopy-prep/internal/middleware"
)

// Labels traduce las etiquetas de los filtros de recetas.
type Labels interface {
	Text(lang, key string) string
}

func RegisterRoutes(r chi.Router, store *Store, labels Labels) {
	r.Route("/content", func(cr chi.Router) {
		cr.Get("/", getContentHandler(store))
		cr.Get("/recipes", listRecipesHandler(store, labels))
	})
}

type recipeFilter struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type recipesResponse struct {
	Language string         `json:"language"`
	Category string         `json:"category"`
	Filters  []recipeFilter `json:"filters"`
	Recipes  []Recipe       `json:"recipes"`
}

// getContentHandler godoc
// @Summary Contenido de la página por idioma
// @Tags content
// @Produce json
// @Param lang query string false "pt | en (si no, Accept-Language)"
// @Success 200 {object} Document
// @Failure 503 {string} string "content unavailable"
// @Router /content [get]
func getContentHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.LanguageFrom(r.Context())

		doc, err := store.Get(r.Context(), lang.String())
		if err != nil {
			http.Error(w, "content unavailable", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

// listRecipesHandler godoc
// @Summary Recetas filtradas por categoría
// @Tags content
// @Produce json
// @Param category query string false "all | breakfast | lunch | dinner | snack"
// @Success 200 {object} recipesResponse
// @Failure 400 {string} string "unknown category"
// @Router /content/recipes [get]
func listRecipesHandler(store *Store, labels Labels) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.LanguageFrom(r.Context()).String()

		category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
		if category == "" {
			category = CategoryAll
		}
		if !IsRecipeCategory(category) {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}

		doc, err := store.Get(r.Context(), lang)
		if err != nil {
			http.Error(w, "content unavailable", http.StatusServiceUnavailable)
			return
		}

		filters := make([]recipeFilter, 0, len(RecipeCategories))
		for _, c := range RecipeCategories {
			filters = append(filters, recipeFilter{
				Key:    c,
				Label:  labels.Text(lang, "recipes.filters."+c),
				Active: c == category,
			})
		}

		writeJSON(w, http.StatusOK, recipesResponse{
			Language: lang,
			Category: category,
			Filters:  filters,
			Recipes:  Recipes(doc, category),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
