package postgres

import (
	"context"
	"database/sql"

	"colonoscopy-prep/internal/domain/checklist"
)

type ChecklistRepo struct {
	db *sql.DB
}

func NewChecklistRepo(db *sql.DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

func (r *ChecklistRepo) Set(ctx context.Context, it checklist.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checklist_items (profile_id, item_id, checked, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (profile_id, item_id)
		DO UPDATE SET checked = EXCLUDED.checked, updated_at = EXCLUDED.updated_at
	`,
		it.ProfileID,
		it.ItemID,
		it.Checked,
		it.UpdatedAt,
	)
	return err
}

func (r *ChecklistRepo) ListByProfile(ctx context.Context, profileID string) ([]checklist.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT profile_id, item_id, checked, updated_at
		FROM checklist_items
		WHERE profile_id = $1
		ORDER BY item_id ASC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]checklist.Item, 0)
	for rows.Next() {
		var it checklist.Item
		if err := rows.Scan(&it.ProfileID, &it.ItemID, &it.Checked, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}

	return out, rows.Err()
}

func (r *ChecklistRepo) DeleteByProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE profile_id = $1`, profileID)
	return err
}
