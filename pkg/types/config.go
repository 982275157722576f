// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default values give the standard layout: read pla/*.pla, write
// blif/*.blif, and run abc with strash, dc2, and map -M 2.
const (
	DefaultInputDir  = "pla"
	DefaultOutputDir = "blif"
	DefaultTool      = "abc"
)

// DefaultSteps is the optimization sequence run between read_pla and
// write_blif.
var DefaultSteps = []string{"strash", "dc2", "map -M 2"}

// ConversionConfig holds settings for a batch conversion run.
type ConversionConfig struct {
	// InputDir is the directory scanned for *.pla files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory that receives the *.blif files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Tool is the synthesis binary name or path.
	Tool string `json:"tool" yaml:"tool"`

	// Steps are the tool commands run between reading and writing.
	Steps []string `json:"steps" yaml:"steps"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}

// DefaultConversionConfig returns the standard pla/ -> blif/ configuration.
func DefaultConversionConfig() ConversionConfig {
	steps := make([]string, len(DefaultSteps))
	copy(steps, DefaultSteps)
	return ConversionConfig{
		InputDir:  DefaultInputDir,
		OutputDir: DefaultOutputDir,
		Tool:      DefaultTool,
		Steps:     steps,
	}
}

// WithDefaults fills empty fields from DefaultConversionConfig.
func (c ConversionConfig) WithDefaults() ConversionConfig {
	d := DefaultConversionConfig()
	if c.InputDir == "" {
		c.InputDir = d.InputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.Tool == "" {
		c.Tool = d.Tool
	}
	if len(c.Steps) == 0 {
		c.Steps = d.Steps
	}
	return c
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// DBPath is the SQLite database file. Empty disables history.
	DBPath string `json:"db" yaml:"db"`

	// MaxResults caps the number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
