// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the PLA-to-BLIF batch pass: list the input
// directory, keep the *.pla entries, derive each output path, and hand every
// pair to a Converter one at a time.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/blifify/pkg/types"
)

const (
	// inputExt is both the filter suffix and the number of characters
	// dropped when deriving an output name. Keep them tied together.
	inputExt  = "pla"
	outputExt = "blif"
)

// Converter turns one PLA file into one BLIF file. The ABC backend
// implements this interface; tests substitute a recording fake.
type Converter interface {
	// Convert asks the backend to write outputPath from inputPath.
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Results   []types.InvocationResult
	Converted int
	Failed    int
}

// Total returns the number of invocations made.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any invocation failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ListInputs returns the entry names of dir in listing order. A missing
// directory yields an error wrapping fs.ErrNotExist.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Filter keeps the names ending in ".pla". Everything else is dropped
// silently.
func Filter(names []string) []string {
	var kept []string
	for _, n := range names {
		if strings.HasSuffix(n, "."+inputExt) {
			kept = append(kept, n)
		}
	}
	return kept
}

// OutputPath drops the last three characters of name and appends "blif",
// then places the result in outputDir. It does not parse extensions; callers
// must only pass names that survived Filter.
func OutputPath(outputDir, name string) string {
	return filepath.Join(outputDir, name[:len(name)-len(inputExt)]+outputExt)
}

// Plan builds one invocation per qualifying name, preserving order.
func Plan(cfg types.ConversionConfig, names []string) []types.Invocation {
	kept := Filter(names)
	invs := make([]types.Invocation, 0, len(kept))
	for _, n := range kept {
		invs = append(invs, types.Invocation{
			Name:       n,
			InputPath:  filepath.Join(cfg.InputDir, n),
			OutputPath: OutputPath(cfg.OutputDir, n),
		})
	}
	return invs
}

// Run performs one sequential pass over cfg.InputDir. Only a failure to list
// the input directory is returned as an error, and it happens before any
// invocation. Per-file converter errors are reported to w and recorded in the
// result, then the pass moves on to the next file.
func Run(ctx context.Context, c Converter, cfg types.ConversionConfig, w io.Writer) (BatchResult, error) {
	names, err := ListInputs(cfg.InputDir)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, inv := range Plan(cfg, names) {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r := types.InvocationResult{Invocation: inv, Status: types.InvocationConverted}
		if err := c.Convert(ctx, inv.InputPath, inv.OutputPath); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", inv.Name, err)
			r.Status = types.InvocationFailed
			r.Error = err.Error()
			result.Failed++
		} else {
			fmt.Fprintf(w, "converted: %s -> %s\n", inv.Name, inv.OutputPath)
			result.Converted++
		}
		result.Results = append(result.Results, r)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, nil
}
