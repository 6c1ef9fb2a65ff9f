package checklist

import "context"

type Repository interface {
	// Upsert por (profileID, itemID).
	Set(ctx context.Context, it Item) error
	ListByProfile(ctx context.Context, profileID string) ([]Item, error)
	DeleteByProfile(ctx context.Context, profileID string) error
}
