package memory

import (
	"context"
	"sort"
	"sync"

	"colonoscopy-prep/internal/domain/checklist"
)

type checklistRepo struct {
	mu sync.RWMutex
	// profileID -> itemID -> item
	byProfile map[string]map[string]checklist.Item
}

func NewChecklistRepo() checklist.Repository {
	return &checklistRepo{
		byProfile: make(map[string]map[string]checklist.Item),
	}
}

func (r *checklistRepo) Set(ctx context.Context, it checklist.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.byProfile[it.ProfileID]
	if !ok {
		items = make(map[string]checklist.Item)
		r.byProfile[it.ProfileID] = items
	}
	items[it.ItemID] = it
	return nil
}

func (r *checklistRepo) ListByProfile(ctx context.Context, profileID string) ([]checklist.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]checklist.Item, 0, len(r.byProfile[profileID]))
	for _, it := range r.byProfile[profileID] {
		out = append(out, it)
	}

	// Orden estable por item id
	sort.Slice(out, func(i, j int) bool {
		return out[i].ItemID < out[j].ItemID
	})

	return out, nil
}

func (r *checklistRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byProfile, profileID)
	return nil
}
