package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceListNewestFirst(t *testing.T) {
	t.Parallel()

	older := domain.SessionRecord{
		ID:        "session_20260820_090000",
		StartedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		Status:    domain.RunStatusCompleted,
	}
	newer := domain.SessionRecord{
		ID:        "session_20260821_101500",
		StartedAt: time.Date(2026, 8, 21, 10, 15, 0, 0, time.UTC),
		Status:    domain.RunStatusFailed,
	}

	svc := NewSessionService(&memoryHistory{records: []domain.SessionRecord{older, newer}})

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, older.ID, records[1].ID)
}

func TestSessionServiceGetUnknownSession(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(&memoryHistory{})

	_, err := svc.Get(context.Background(), "session_20990101_000000")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorContains(t, err, "session_20990101_000000")
}
