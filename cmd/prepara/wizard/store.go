package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
)

// profileFile es el YAML guardado en disco (un único perfil por fichero).
type profileFile struct {
	ID            string    `yaml:"id"`
	Language      string    `yaml:"language"`
	ExamDate      string    `yaml:"exam_date"`
	ExamTime      string    `yaml:"exam_time"`
	Medication    string    `yaml:"medication"`
	IsConstipated bool      `yaml:"is_constipated"`
	Completed     bool      `yaml:"completed"`
	CreatedAt     time.Time `yaml:"created_at"`
	UpdatedAt     time.Time `yaml:"updated_at"`
}

// DefaultPath: <config dir>/prepara/profile.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "prepara", "profile.yaml"), nil
}

// FileRepo implementa profiles.Repository sobre un fichero YAML.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Path() string {
	return r.path
}

// Current devuelve el perfil guardado, sea cual sea su id.
func (r *FileRepo) Current(ctx context.Context) (profiles.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// Create sobrescribe: volver a pasar por el asistente reemplaza el perfil anterior.
func (r *FileRepo) Create(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(p)
}

func (r *FileRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.read()
	if err != nil {
		return profiles.Profile{}, err
	}
	if p.ID != id {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (r *FileRepo) Update(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.read()
	if err != nil {
		return err
	}
	if current.ID != p.ID {
		return profiles.ErrNotFound
	}
	return r.write(p)
}

func (r *FileRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.read()
	if err != nil {
		return err
	}
	if current.ID != id {
		return profiles.ErrNotFound
	}
	return os.Remove(r.path)
}

func (r *FileRepo) read() (profiles.Profile, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("reading profile: %w", err)
	}

	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return profiles.Profile{}, fmt.Errorf("parsing profile %s: %w", r.path, err)
	}
	return profiles.Profile{
		ID:            f.ID,
		Language:      schedule.Language(f.Language),
		ExamDate:      f.ExamDate,
		ExamTime:      f.ExamTime,
		Medication:    schedule.Medication(f.Medication),
		IsConstipated: f.IsConstipated,
		Completed:     f.Completed,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}, nil
}

func (r *FileRepo) write(p profiles.Profile) error {
	data, err := yaml.Marshal(profileFile{
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
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating profile dir: %w", err)
	}
	return os.WriteFile(r.path, data, 0o600)
}
