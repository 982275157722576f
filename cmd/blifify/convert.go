package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blifify/internal/abc"
	"github.com/pdiddy/blifify/internal/convert"
	"github.com/pdiddy/blifify/internal/history"
	"github.com/pdiddy/blifify/pkg/types"
)

func init() {
	flags := rootCmd.Flags()
	flags.String("input-dir", types.DefaultInputDir, "directory scanned for *.pla files")
	flags.String("output-dir", types.DefaultOutputDir, "directory receiving *.blif files")
	flags.String("tool", types.DefaultTool, "ABC binary name or path")
	flags.StringSlice("steps", types.DefaultSteps, "ABC commands run between read_pla and write_blif")
	flags.String("report", "", "write a YAML report of the run to this file")
	flags.BoolP("verbose", "v", false, "show ABC output")

	_ = viper.BindPFlag("input_dir", flags.Lookup("input-dir"))
	_ = viper.BindPFlag("output_dir", flags.Lookup("output-dir"))
	_ = viper.BindPFlag("tool", flags.Lookup("tool"))
	_ = viper.BindPFlag("steps", flags.Lookup("steps"))
	_ = viper.BindPFlag("report", flags.Lookup("report"))
}

// conversionConfig reads the batch settings from viper, falling back to the
// fixed pla/ -> blif/ layout.
func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		InputDir:   viper.GetString("input_dir"),
		OutputDir:  viper.GetString("output_dir"),
		Tool:       viper.GetString("tool"),
		Steps:      viper.GetStringSlice("steps"),
		ReportPath: viper.GetString("report"),
	}.WithDefaults()
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig()
	verbose, _ := cmd.Flags().GetBool("verbose")

	var toolOut io.Writer = io.Discard
	if verbose {
		toolOut = os.Stderr
	}
	tool := abc.New(cfg.Tool, cfg.Steps, toolOut)
	if !tool.Available() {
		fmt.Fprintf(os.Stderr, "warning: %s not found on PATH; invocations will fail\n", tool.Name())
	}

	started := time.Now()
	result, err := convert.Run(cmd.Context(), tool, cfg, os.Stdout)
	if err != nil {
		return err
	}
	finished := time.Now()

	if cfg.ReportPath != "" {
		if err := convert.WriteReport(cfg.ReportPath, convert.NewReport(cfg, result, started, finished)); err != nil {
			return err
		}
	}

	hcfg := historyConfig()
	if hcfg.DBPath == "" {
		return nil
	}
	store, err := history.Open(hcfg)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), cfg, result.Results, started, finished)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded run %d in %s\n", id, hcfg.DBPath)
	return nil
}
