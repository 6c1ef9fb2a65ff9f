package content

// Document es el contenido estático de la página para un idioma.
type Document struct {
	HeroHighlights []Highlight    `json:"hero_highlights"`
	DietPhases     []Card         `json:"diet_phases"`
	MedCards       []Card         `json:"med_cards"`
	ShoppingList   []ShoppingItem `json:"shopping_list"`
	Recipes        []Recipe       `json:"recipes"`
	Videos         []Video        `json:"videos"`
	Images         []Image        `json:"images"`
	FAQs           []FAQ          `json:"faqs"`
}

type Highlight struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Card sirve para fases de dieta y tarjetas de medicación.
type Card struct {
	Tag   string   `json:"tag"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type ShoppingItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Recipe struct {
	Category    string `json:"category"` // breakfast, lunch, dinner, snack
	Phase       string `json:"phase"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Video struct {
	ID          string `json:"id"`
	Duration    string `json:"duration"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Image struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
