package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			id, language,
			exam_date, exam_time,
			medication, is_constipated, completed,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		string(p.Language),
		p.ExamDate,
		p.ExamTime,
		string(p.Medication),
		p.IsConstipated,
		p.Completed,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET
			language = $2,
			exam_date = $3,
			exam_time = $4,
			medication = $5,
			is_constipated = $6,
			completed = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		string(p.Language),
		p.ExamDate,
		p.ExamTime,
		string(p.Medication),
		p.IsConstipated,
		p.Completed,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, language,
			exam_date, exam_time,
			medication, is_constipated, completed,
			created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id)

	var p profiles.Profile
	var lang, med string
	if err := row.Scan(
		&p.ID,
		&lang,
		&p.ExamDate,
		&p.ExamTime,
		&med,
		&p.IsConstipated,
		&p.Completed,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}

	p.Language = schedule.Language(lang)
	p.Medication = schedule.Medication(med)
	return p, nil
}

// Delete borra el perfil; checklist_items cae por ON DELETE CASCADE.
func (r *ProfilesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}
