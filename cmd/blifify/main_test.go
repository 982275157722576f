package main

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blifify/pkg/types"
)

// setViper overrides a viper key for the duration of a test.
func setViper(t *testing.T, key string, value any) {
	t.Helper()
	old := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, old) })
}

func TestConversionConfig_Defaults(t *testing.T) {
	assert.Equal(t, types.DefaultConversionConfig(), conversionConfig())
}

func TestConversionConfig_Overrides(t *testing.T) {
	setViper(t, "input_dir", "bench/pla")
	setViper(t, "steps", []string{"strash", "resyn2"})

	cfg := conversionConfig()
	assert.Equal(t, "bench/pla", cfg.InputDir)
	assert.Equal(t, "blif", cfg.OutputDir)
	assert.Equal(t, []string{"strash", "resyn2"}, cfg.Steps)
}

func TestRunConvert_MissingInputDir(t *testing.T) {
	setViper(t, "input_dir", filepath.Join(t.TempDir(), "pla"))
	setViper(t, "tool", "blifify-test-no-such-tool")

	rootCmd.SetContext(context.Background())
	err := runConvert(rootCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
