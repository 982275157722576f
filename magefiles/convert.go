//go:build mage

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/pdiddy/blifify/internal/abc"
	"github.com/pdiddy/blifify/internal/convert"
	"github.com/pdiddy/blifify/pkg/types"
)

// Convert runs one batch over pla/ with the default ABC script.
func Convert(ctx context.Context) error {
	mg.Deps(Init)

	cfg := types.DefaultConversionConfig()
	tool := abc.New(cfg.Tool, cfg.Steps, os.Stderr)
	if !tool.Available() {
		fmt.Printf("[convert] %s not found on PATH; every invocation will fail.\n", tool.Name())
	}

	_, err := convert.Run(ctx, tool, cfg, os.Stdout)
	return err
}
