package cmd

import (
	"fmt"

	"github.com/KingGhost27/debtdown/internal/config"
	"github.com/KingGhost27/debtdown/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Schedule rows:   %d\n", cfg.General.ScheduleRows)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory:  %s\n", cfg.General.DataDir)
	} else {
		fmt.Printf("    Database:        %s\n", store.DefaultPath())
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `debtdown setup` to reconfigure.")
	return nil
}
