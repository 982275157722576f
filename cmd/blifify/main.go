// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blifify CLI. Run without
// arguments it converts every pla/*.pla file into blif/*.blif with ABC.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blifify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the blifify CLI.
var rootCmd = &cobra.Command{
	Use:   "blifify",
	Short: "Batch-convert PLA files to BLIF with ABC",
	Long: `blifify lists the input directory (default pla/), and for every *.pla file
runs ABC once:

  abc -c "read_pla pla/x.pla; strash; dc2; map -M 2; write_blif blif/x.blif"

Files are processed one at a time. A failed invocation is reported and the
batch moves on; only a missing input directory stops the run.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blifify.yaml or ~/.config/blifify/config.yaml)")
	rootCmd.PersistentFlags().String("history-db", "", "SQLite file recording each run (disabled when empty)")
	_ = viper.BindPFlag("history.db", rootCmd.PersistentFlags().Lookup("history-db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blifify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blifify"))
		}
	}

	viper.SetEnvPrefix("BLIFIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// historyConfig reads the history settings from viper.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		DBPath:     viper.GetString("history.db"),
		MaxResults: viper.GetInt("history.max_results"),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
