package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/config"
	"github.com/KingGhost27/debtdown/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive first-run setup",
	Long: `Walk through first-run setup: pick a payoff strategy, set monthly
funding, and optionally add your first debt. Safe to re-run anytime.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func validateMoney(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("enter a number, e.g. 1500 or 1500.00")
	}
	if v < 0 {
		return errors.New("cannot be negative")
	}
	return nil
}

func runSetup(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.LoadStrategy()
	if err != nil {
		return err
	}

	strategy := string(settings.Strategy)
	funding := ""
	if settings.MonthlyFunding > 0 {
		funding = strconv.FormatFloat(settings.MonthlyFunding, 'f', 2, 64)
	}
	addDebt := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payoff strategy").
				Description("Avalanche pays highest APR first (least interest). Snowball pays smallest balance first (quickest wins).").
				Options(
					huh.NewOption("Avalanche (highest APR first)", string(model.StrategyAvalanche)),
					huh.NewOption("Snowball (smallest balance first)", string(model.StrategySnowball)),
				).
				Value(&strategy),
			huh.NewInput().
				Title("Monthly funding").
				Description("Total amount available for debt payments each month.").
				Placeholder("1500.00").
				Validate(validateMoney).
				Value(&funding),
			huh.NewConfirm().
				Title("Add a debt now?").
				Value(&addDebt),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	settings.Strategy = model.Strategy(strategy)
	if funding != "" {
		settings.MonthlyFunding, _ = strconv.ParseFloat(funding, 64)
	}
	if err := st.SaveStrategy(settings); err != nil {
		return err
	}

	if addDebt {
		var name, balance, apr, minimum string
		debtForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Debt name").Placeholder("Visa card").Value(&name),
				huh.NewInput().Title("Current balance").Placeholder("4200.00").Validate(validateMoney).Value(&balance),
				huh.NewInput().Title("APR (%)").Placeholder("22.9").Validate(validateMoney).Value(&apr),
				huh.NewInput().Title("Minimum payment").Placeholder("85.00").Validate(validateMoney).Value(&minimum),
			),
		)
		if err := debtForm.Run(); err != nil {
			return err
		}
		if name != "" && balance != "" {
			b, _ := strconv.ParseFloat(balance, 64)
			a, _ := strconv.ParseFloat(apr, 64)
			m, _ := strconv.ParseFloat(minimum, 64)
			d := model.Debt{
				ID:              uuid.NewString(),
				Name:            name,
				Balance:         b,
				OriginalBalance: b,
				APR:             a,
				MinimumPayment:  m,
				DueDay:          1,
				CreatedAt:       time.Now(),
			}
			if err := st.SaveDebt(d); err != nil {
				return err
			}
			fmt.Printf("Added %s: %s at %s\n", d.Name, cli.FormatMoney(d.Balance), cli.FormatAPR(d.APR))
		}
	}

	if !config.Exists() {
		if err := config.Save(config.Default()); err != nil {
			fmt.Printf("Could not save config: %v\n", err)
		}
	}

	fmt.Println("Setup complete. Run 'debtdown' for your overview or 'debtdown plan' for the payoff schedule.")
	return nil
}
