package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
)

// profileRecord es el JSON guardado bajo <prefix>:profile:<id>.
type profileRecord struct {
	ID            string    `json:"id"`
	Language      string    `json:"language"`
	ExamDate      string    `json:"exam_date"`
	ExamTime      string    `json:"exam_time"`
	Medication    string    `json:"medication"`
	IsConstipated bool      `json:"is_constipated"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func encodeProfile(p profiles.Profile) (string, error) {
	b, err := json.Marshal(profileRecord{
		ID:            p.ID,
		Language:      string(p.Language),
		ExamDate:      p.ExamDate,
		ExamTime:      p.ExamTime,
		Medication:    string(p.Medication),
		IsConstipated: p.IsConstipated,
		Completed:     p.Completed,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	})
	return string(b), err
}

func decodeProfile(raw string) (profiles.Profile, error) {
	var rec profileRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return profiles.Profile{}, err
	}
	return profiles.Profile{
		ID:            rec.ID,
		Language:      schedule.Language(rec.Language),
		ExamDate:      rec.ExamDate,
		ExamTime:      rec.ExamTime,
		Medication:    schedule.Medication(rec.Medication),
		IsConstipated: rec.IsConstipated,
		Completed:     rec.Completed,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}, nil
}

type ProfilesRepo struct {
	c *Client
}

func NewProfilesRepo(c *Client) *ProfilesRepo {
	return &ProfilesRepo{c: c}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}
	payload, err := encodeProfile(p)
	if err != nil {
		return err
	}

	ok, err := r.c.rdb.SetNX(ctx, r.c.key("profile", p.ID), payload, r.c.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	if !ok {
		return errors.New("profile already exists")
	}
	return nil
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	payload, err := encodeProfile(p)
	if err != nil {
		return err
	}

	ok, err := r.c.rdb.SetXX(ctx, r.c.key("profile", p.ID), payload, r.c.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if !ok {
		return profiles.ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	if strings.TrimSpace(id) == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	raw, err := r.c.rdb.Get(ctx, r.c.key("profile", id)).Result()
	if errors.Is(err, redis.Nil) {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return decodeProfile(raw)
}

func (r *ProfilesRepo) Delete(ctx context.Context, id string) error {
	n, err := r.c.rdb.Del(ctx, r.c.key("profile", id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}
