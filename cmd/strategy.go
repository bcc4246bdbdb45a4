package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// shortID abbreviates an ID for display. Imported snapshots may carry IDs
// shorter than the usual uuid length.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Show or change the payoff strategy and funding",
	RunE:  runStrategyShow,
}

var strategySetCmd = &cobra.Command{
	Use:   "set <avalanche|snowball>",
	Short: "Set the payoff strategy",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrategySet,
}

var strategyFundCmd = &cobra.Command{
	Use:   "fund <amount>",
	Short: "Set the total monthly amount available for debt payments",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrategyFund,
}

var strategyBonusCmd = &cobra.Command{
	Use:   "bonus <amount> <month>",
	Short: "Schedule a one-time lump sum for a month (YYYY-MM)",
	Args:  cobra.ExactArgs(2),
	RunE:  runStrategyBonus,
}

var strategyBonusRmCmd = &cobra.Command{
	Use:   "bonus-rm <id>",
	Short: "Remove a scheduled one-time lump sum",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrategyBonusRm,
}

func init() {
	strategyCmd.AddCommand(strategySetCmd, strategyFundCmd, strategyBonusCmd, strategyBonusRmCmd)
	rootCmd.AddCommand(strategyCmd)
}

func runStrategyShow(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.LoadStrategy()
	if err != nil {
		return err
	}

	t := cli.Table{Rows: [][]string{
		{"Strategy", string(settings.Strategy)},
		{"Monthly funding", cli.FormatMoney(settings.MonthlyFunding)},
	}}
	fmt.Println(cli.RenderTable(t))

	if len(settings.OneTimeFunding) > 0 {
		b := cli.Table{Headers: []string{"ID", "Month", "Amount"}}
		for _, f := range settings.OneTimeFunding {
			b.Rows = append(b.Rows, []string{shortID(f.ID), f.Month, cli.FormatMoney(f.Amount)})
		}
		fmt.Println(cli.RenderTable(b))
	}
	return nil
}

func runStrategySet(cmd *cobra.Command, args []string) error {
	strategy := model.Strategy(args[0])
	if strategy != model.StrategyAvalanche && strategy != model.StrategySnowball {
		return fmt.Errorf("unknown strategy %q (avalanche or snowball)", args[0])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.LoadStrategy()
	if err != nil {
		return err
	}
	settings.Strategy = strategy
	if err := st.SaveStrategy(settings); err != nil {
		return err
	}
	fmt.Printf("Strategy set to %s.\n", strategy)
	return nil
}

func runStrategyFund(cmd *cobra.Command, args []string) error {
	amount, err := parseMoneyArg("amount", args[0])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.LoadStrategy()
	if err != nil {
		return err
	}
	settings.MonthlyFunding = amount
	if err := st.SaveStrategy(settings); err != nil {
		return err
	}

	debts, err := st.ListDebts()
	if err != nil {
		return err
	}
	var minimums float64
	for _, d := range debts {
		minimums += d.MinimumPayment
	}
	fmt.Printf("Monthly funding set to %s.\n", cli.FormatMoney(amount))
	if amount < minimums {
		fmt.Printf("Note: funding is below your combined minimums of %s. The plan will run minimum-only.\n",
			cli.FormatMoney(minimums))
	}
	return nil
}

func runStrategyBonus(cmd *cobra.Command, args []string) error {
	amount, err := parseMoneyArg("amount", args[0])
	if err != nil {
		return err
	}
	if !monthRe.MatchString(args[1]) {
		return fmt.Errorf("invalid month %q, expected YYYY-MM", args[1])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	f := model.OneTimeFunding{ID: uuid.NewString(), Amount: amount, Month: args[1]}
	if err := st.SaveOneTimeFunding(f); err != nil {
		return err
	}
	fmt.Printf("Scheduled %s extra for %s (id %s).\n", cli.FormatMoney(f.Amount), f.Month, shortID(f.ID))
	return nil
}

func runStrategyBonusRm(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.LoadStrategy()
	if err != nil {
		return err
	}
	for _, f := range settings.OneTimeFunding {
		if f.ID == args[0] || (len(args[0]) >= 4 && strings.HasPrefix(f.ID, args[0])) {
			if err := st.DeleteOneTimeFunding(f.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s scheduled for %s.\n", cli.FormatMoney(f.Amount), f.Month)
			return nil
		}
	}
	return fmt.Errorf("no one-time funding entry matching %q", args[0])
}
