package checklist

import "time"

// Item es el estado de un artículo de la lista de compras para un perfil.
type Item struct {
	ProfileID string
	ItemID    string // id del artículo en content.ShoppingList

	Checked bool

	UpdatedAt time.Time
}

// State es la vista compacta itemID -> marcado.
type State map[string]bool

func toState(items []Item) State {
	out := make(State, len(items))
	for _, it := range items {
		out[it.ItemID] = it.Checked
	}
	return out
}
