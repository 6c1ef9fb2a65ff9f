package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"colonoscopy-prep/internal/domain/checklist"
)

// Un hash por perfil: <prefix>:checklist:<profileID>, campo = itemID.
type checklistField struct {
	Checked   bool      `json:"checked"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChecklistRepo struct {
	c *Client
}

func NewChecklistRepo(c *Client) *ChecklistRepo {
	return &ChecklistRepo{c: c}
}

func (r *ChecklistRepo) Set(ctx context.Context, it checklist.Item) error {
	b, err := json.Marshal(checklistField{Checked: it.Checked, UpdatedAt: it.UpdatedAt})
	if err != nil {
		return err
	}
	if err := r.c.rdb.HSet(ctx, r.c.key("checklist", it.ProfileID), it.ItemID, string(b)).Err(); err != nil {
		return fmt.Errorf("failed to set checklist item: %w", err)
	}
	return nil
}

func (r *ChecklistRepo) ListByProfile(ctx context.Context, profileID string) ([]checklist.Item, error) {
	fields, err := r.c.rdb.HGetAll(ctx, r.c.key("checklist", profileID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}

	out := make([]checklist.Item, 0, len(fields))
	for itemID, raw := range fields {
		var f checklistField
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			return nil, fmt.Errorf("checklist item %s: %w", itemID, err)
		}
		out = append(out, checklist.Item{
			ProfileID: profileID,
			ItemID:    itemID,
			Checked:   f.Checked,
			UpdatedAt: f.UpdatedAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

func (r *ChecklistRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	if err := r.c.rdb.Del(ctx, r.c.key("checklist", profileID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checklist: %w", err)
	}
	return nil
}
