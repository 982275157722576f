// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blifify/pkg/types"
)

// Report is the on-disk record of one batch run.
type Report struct {
	Config  types.ConversionConfig   `yaml:"config"`
	Results []types.InvocationResult `yaml:"results"`
	Summary ReportSummary            `yaml:"summary"`
}

// ReportSummary stores counts and timing for a run.
type ReportSummary struct {
	Converted  int       `yaml:"converted"`
	Failed     int       `yaml:"failed"`
	Total      int       `yaml:"total"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

// NewReport builds a Report from a finished batch.
func NewReport(cfg types.ConversionConfig, result BatchResult, startedAt, finishedAt time.Time) Report {
	results := result.Results
	if results == nil {
		results = []types.InvocationResult{}
	}
	return Report{
		Config:  cfg,
		Results: results,
		Summary: ReportSummary{
			Converted:  result.Converted,
			Failed:     result.Failed,
			Total:      result.Total(),
			StartedAt:  startedAt.UTC(),
			FinishedAt: finishedAt.UTC(),
		},
	}
}

// WriteReport saves a report as YAML.
func WriteReport(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
