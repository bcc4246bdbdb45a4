package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/model"
	"github.com/KingGhost27/debtdown/internal/plan"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagDebtCategory string
	flagDebtDueDay   int
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage tracked debts",
}

var debtAddCmd = &cobra.Command{
	Use:   "add <name> <balance> <apr> <minimum>",
	Short: "Add a debt account",
	Args:  cobra.ExactArgs(4),
	RunE:  runDebtAdd,
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all debts",
	RunE:  runDebtList,
}

var debtRmCmd = &cobra.Command{
	Use:   "rm <name|id>",
	Short: "Remove a debt and its payment history",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtRm,
}

func init() {
	debtAddCmd.Flags().StringVar(&flagDebtCategory, "category", "", "Category label, e.g. credit-card, student-loan")
	debtAddCmd.Flags().IntVar(&flagDebtDueDay, "due", 1, "Day of month the payment is due (1-28)")

	debtCmd.AddCommand(debtAddCmd)
	debtCmd.AddCommand(debtListCmd)
	debtCmd.AddCommand(debtRmCmd)
	rootCmd.AddCommand(debtCmd)
}

func parseMoneyArg(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s cannot be negative", name)
	}
	return v, nil
}

func runDebtAdd(cmd *cobra.Command, args []string) error {
	balance, err := parseMoneyArg("balance", args[1])
	if err != nil {
		return err
	}
	apr, err := parseMoneyArg("apr", args[2])
	if err != nil {
		return err
	}
	minimum, err := parseMoneyArg("minimum", args[3])
	if err != nil {
		return err
	}
	if flagDebtDueDay < 1 || flagDebtDueDay > 28 {
		return fmt.Errorf("due day must be between 1 and 28")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	d := model.Debt{
		ID:              uuid.NewString(),
		Name:            args[0],
		Category:        flagDebtCategory,
		Balance:         balance,
		OriginalBalance: balance,
		APR:             apr,
		MinimumPayment:  minimum,
		DueDay:          flagDebtDueDay,
		CreatedAt:       time.Now(),
	}
	if err := st.SaveDebt(d); err != nil {
		return fmt.Errorf("saving debt: %w", err)
	}

	fmt.Printf("Added %s: %s at %s, minimum %s/mo\n",
		d.Name, cli.FormatMoney(d.Balance), cli.FormatAPR(d.APR), cli.FormatMoney(d.MinimumPayment))
	return nil
}

func runDebtList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	debts, err := st.ListDebts()
	if err != nil {
		return err
	}
	if len(debts) == 0 {
		fmt.Println("No debts tracked.")
		return nil
	}

	t := cli.Table{Headers: []string{"Name", "Balance", "APR", "Minimum", "Paid", "Payoff"}}
	var totalBalance, totalMin float64
	for _, d := range debts {
		payoff := "paid off"
		if d.Balance > 0 {
			payoff = cli.FormatMonthCount(plan.StandaloneMonths(d))
		}
		t.Rows = append(t.Rows, []string{
			d.Name,
			cli.FormatMoney(d.Balance),
			cli.FormatAPR(d.APR),
			cli.FormatMoney(d.MinimumPayment),
			cli.FormatPercent(d.PercentPaid()),
			payoff,
		})
		totalBalance += d.Balance
		totalMin += d.MinimumPayment
	}
	t.Rows = append(t.Rows, []string{"---"})
	t.Rows = append(t.Rows, []string{"Total", cli.FormatMoney(totalBalance), "", cli.FormatMoney(totalMin), "", ""})

	fmt.Println(cli.RenderTable(t))
	return nil
}

func runDebtRm(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := st.FindDebt(args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteDebt(d.ID); err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}
	fmt.Printf("Removed %s and its payment history.\n", d.Name)
	return nil
}
