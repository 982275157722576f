// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blifify/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{DBPath: filepath.Join(t.TempDir(), "state", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResults() []types.InvocationResult {
	return []types.InvocationResult{
		{
			Invocation: types.Invocation{Name: "a.pla", InputPath: "pla/a.pla", OutputPath: "blif/a.blif"},
			Status:     types.InvocationConverted,
		},
		{
			Invocation: types.Invocation{Name: "b.pla", InputPath: "pla/b.pla", OutputPath: "blif/b.blif"},
			Status:     types.InvocationFailed,
			Error:      "exit status 1",
		},
		{
			Invocation: types.Invocation{Name: "c.pla", InputPath: "pla/c.pla", OutputPath: "blif/c.blif"},
			Status:     types.InvocationConverted,
		},
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(types.HistoryConfig{})
	require.Error(t, err)
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cfg := types.DefaultConversionConfig()
	start := time.Date(2026, 1, 25, 13, 45, 29, 0, time.UTC)

	firstID, err := s.Record(ctx, cfg, sampleResults(), start, start.Add(time.Second))
	require.NoError(t, err)
	secondID, err := s.Record(ctx, cfg, nil, start.Add(time.Minute), start.Add(time.Minute))
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, secondID, runs[0].ID, "newest run first")
	assert.Equal(t, 0, runs[0].Total())

	first := runs[1]
	assert.Equal(t, "pla", first.InputDir)
	assert.Equal(t, "blif", first.OutputDir)
	assert.Equal(t, "abc", first.Tool)
	assert.Equal(t, 2, first.Converted)
	assert.Equal(t, 1, first.Failed)
	assert.True(t, first.StartedAt.Equal(start))

	limited, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestInvocations(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	id, err := s.Record(ctx, types.DefaultConversionConfig(), sampleResults(), now, now)
	require.NoError(t, err)

	got, err := s.Invocations(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, sampleResults(), got)

	none, err := s.Invocations(ctx, id+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	_, err = s.Record(ctx, types.DefaultConversionConfig(), sampleResults(), time.Now(), time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
