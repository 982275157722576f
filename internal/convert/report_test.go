// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blifify/pkg/types"
)

func TestWriteReport(t *testing.T) {
	cfg := types.DefaultConversionConfig()
	result := BatchResult{
		Results: []types.InvocationResult{
			{
				Invocation: types.Invocation{Name: "a.pla", InputPath: "pla/a.pla", OutputPath: "blif/a.blif"},
				Status:     types.InvocationConverted,
			},
			{
				Invocation: types.Invocation{Name: "b.pla", InputPath: "pla/b.pla", OutputPath: "blif/b.blif"},
				Status:     types.InvocationFailed,
				Error:      "exit status 1",
			},
		},
		Converted: 1,
		Failed:    1,
	}
	start := time.Date(2026, 1, 25, 13, 45, 29, 0, time.UTC)
	end := start.Add(2 * time.Second)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, NewReport(cfg, result, start, end)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "input_path: pla/a.pla")
	assert.Contains(t, string(data), "status: failed")

	got, err := ReadReport(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Steps, got.Config.Steps)
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.Failed)
	assert.True(t, got.Summary.FinishedAt.Equal(end))
	require.Len(t, got.Results, 2)
	assert.Equal(t, "blif/b.blif", got.Results[1].OutputPath)
	assert.Equal(t, "exit status 1", got.Results[1].Error)
}

func TestReadReport_Missing(t *testing.T) {
	_, err := ReadReport(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading report")
}
