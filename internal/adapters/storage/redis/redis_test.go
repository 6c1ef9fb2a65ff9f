package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colonoscopy-prep/internal/domain/checklist"
	"colonoscopy-prep/internal/domain/profiles"
	"colonoscopy-prep/internal/domain/schedule"
)

func newMockClient(t *testing.T) (*Client, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	return NewClient(rdb, Options{}), mock
}

var testProfile = profiles.Profile{
	ID:         "p1",
	Language:   schedule.LanguagePT,
	ExamDate:   "2024-06-10",
	ExamTime:   "08:30",
	Medication: schedule.MedicationPlenvu,
	Completed:  true,
	CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	UpdatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
}

func TestProfilesRepo_CreateGet(t *testing.T) {
	c, mock := newMockClient(t)
	repo := NewProfilesRepo(c)

	payload, err := encodeProfile(testProfile)
	require.NoError(t, err)

	mock.ExpectSetNX("prepara:profile:p1", payload, 0).SetVal(true)
	mock.ExpectSetNX("prepara:profile:p1", payload, 0).SetVal(false)
	mock.ExpectGet("prepara:profile:p1").SetVal(payload)

	require.NoError(t, repo.Create(context.Background(), testProfile))
	assert.Error(t, repo.Create(context.Background(), testProfile))

	got, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, testProfile, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilesRepo_NotFound(t *testing.T) {
	c, mock := newMockClient(t)
	repo := NewProfilesRepo(c)

	payload, err := encodeProfile(testProfile)
	require.NoError(t, err)

	mock.ExpectGet("prepara:profile:p1").RedisNil()
	mock.ExpectSetXX("prepara:profile:p1", payload, 0).SetVal(false)
	mock.ExpectDel("prepara:profile:p1").SetVal(0)

	_, err = repo.GetByID(context.Background(), "p1")
	assert.ErrorIs(t, err, profiles.ErrNotFound)
	assert.ErrorIs(t, repo.Update(context.Background(), testProfile), profiles.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "p1"), profiles.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilesRepo_WrapsRedisErrors(t *testing.T) {
	c, mock := newMockClient(t)
	repo := NewProfilesRepo(c)

	boom := errors.New("connection reset")
	mock.ExpectGet("prepara:profile:p1").SetErr(boom)

	_, err := repo.GetByID(context.Background(), "p1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, profiles.ErrNotFound)
}

func TestChecklistRepo_HashPerProfile(t *testing.T) {
	c, mock := newMockClient(t)
	repo := NewChecklistRepo(c)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	field := `{"checked":true,"updated_at":"2024-06-01T12:00:00Z"}`

	mock.ExpectHSet("prepara:checklist:p1", "white-rice", field).SetVal(1)
	mock.ExpectHGetAll("prepara:checklist:p1").SetVal(map[string]string{
		"white-rice":  field,
		"clear-broth": `{"checked":false,"updated_at":"2024-06-01T12:00:00Z"}`,
	})
	mock.ExpectDel("prepara:checklist:p1").SetVal(1)

	require.NoError(t, repo.Set(context.Background(), checklist.Item{
		ProfileID: "p1", ItemID: "white-rice", Checked: true, UpdatedAt: at,
	}))

	items, err := repo.ListByProfile(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "clear-broth", items[0].ItemID)
	assert.Equal(t, "white-rice", items[1].ItemID)
	assert.True(t, items[1].Checked)
	assert.True(t, at.Equal(items[1].UpdatedAt))

	require.NoError(t, repo.DeleteByProfile(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewClient_DefaultPrefix(t *testing.T) {
	c := NewClient(nil, Options{Prefix: "  "})
	assert.Equal(t, "prepara:profile:x", c.key("profile", "x"))

	c = NewClient(nil, Options{Prefix: "test"})
	assert.Equal(t, "test:checklist:x", c.key("checklist", "x"))
}
