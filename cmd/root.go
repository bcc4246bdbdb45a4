// Package cmd implements the debtdown CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/config"
	"github.com/KingGhost27/debtdown/internal/model"
	"github.com/KingGhost27/debtdown/internal/store"

	"github.com/spf13/cobra"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "debtdown",
	Short: "Debt payoff tracker",
	Long:  "Track debts, pick a payoff strategy, and watch your debt-free date get closer.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, _ := config.Load()
		if cfg.General.CurrencySymbol != "" {
			cli.CurrencySymbol = cfg.General.CurrencySymbol
		}
	},
	RunE: runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database file path (default: XDG data dir)")
}

// resolveDBPath picks the database path from --db, the config override,
// or the XDG default, in that order.
func resolveDBPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	cfg, _ := config.Load()
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "debtdown.db")
	}
	return store.DefaultPath()
}

func openStore() (*store.Store, error) {
	st, err := store.Open(resolveDBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

// userData is everything the commands need from the store in one load.
type userData struct {
	Debts    []model.Debt
	Payments []model.Payment
	Settings model.StrategySettings
}

func loadUserData(st *store.Store) (userData, error) {
	var data userData
	var err error

	if data.Debts, err = st.ListDebts(); err != nil {
		return data, fmt.Errorf("loading debts: %w", err)
	}
	if data.Payments, err = st.ListPayments(); err != nil {
		return data, fmt.Errorf("loading payments: %w", err)
	}
	if data.Settings, err = st.LoadStrategy(); err != nil {
		return data, fmt.Errorf("loading strategy: %w", err)
	}
	return data, nil
}
