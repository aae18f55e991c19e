package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"battletext/internal/regression"
	"battletext/internal/templates"
)

var batteryCmd = &cobra.Command{
	Use:   "battery [file]",
	Short: "Run a regression battery of battle logs against the templates",
	Long: `Renders every case of a YAML battery and compares the narrative with the
expected text. Without an argument the battery is read from
.battletext/regression/battery.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBattery,
}

func runBattery(cmd *cobra.Command, args []string) error {
	path := regression.DefaultBatteryPath(".")
	if len(args) == 1 {
		path = args[0]
	}

	b, err := regression.LoadBattery(path)
	if err != nil {
		return fmt.Errorf("failed to load battery: %w", err)
	}
	store, err := templates.Load(cfg.Templates)
	if err != nil {
		return err
	}

	results, err := regression.RunBattery(commandContext(cmd), store, b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		status := "ok"
		if !r.Success {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-4s %s (%dms)\n", status, r.CaseID, r.DurationMs)
		if !r.Success {
			fmt.Fprintln(out, r.Error)
		}
	}

	failed := regression.Failed(results)
	logger.Debug("battery finished", zap.String("path", path), zap.Int("cases", len(results)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d battery cases failed", failed, len(results))
	}
	fmt.Fprintf(out, "%d cases passed\n", len(results))
	return nil
}
