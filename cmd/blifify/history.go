package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blifify/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs or the invocations of one run",
	Long: `History reads the run database configured with --history-db (or
history.db in the config file). Without --run it lists recent runs; with
--run it lists that run's invocations and their outcomes.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int64("run", 0, "show invocations for this run ID")
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	hcfg := historyConfig()
	if hcfg.DBPath == "" {
		return fmt.Errorf("no history database configured; set --history-db or history.db")
	}
	store, err := history.Open(hcfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	if runID, _ := cmd.Flags().GetInt64("run"); runID > 0 {
		invs, err := store.Invocations(cmd.Context(), runID)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "INPUT\tOUTPUT\tSTATUS\tERROR")
		for _, inv := range invs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", inv.InputPath, inv.OutputPath, inv.Status, inv.Error)
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "RUN\tSTARTED\tINPUT\tOUTPUT\tCONVERTED\tFAILED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.InputDir, r.OutputDir, r.Converted, r.Failed)
	}
	return nil
}
