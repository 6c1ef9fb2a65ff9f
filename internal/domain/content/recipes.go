package content

const CategoryAll = "all"

// RecipeCategories en el orden de los filtros de la página.
var RecipeCategories = []string{CategoryAll, "breakfast", "lunch", "dinner", "snack"}

func IsRecipeCategory(c string) bool {
	for _, known := range RecipeCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Recipes filtra por categoría; "all" (o vacío) devuelve todas.
func Recipes(doc Document, category string) []Recipe {
	if category == "" || category == CategoryAll {
		return doc.Recipes
	}
	out := make([]Recipe, 0, len(doc.Recipes))
	for _, r := range doc.Recipes {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
