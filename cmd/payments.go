package cmd

import (
	"fmt"

	"github.com/KingGhost27/debtdown/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagPaymentsDebt  string
	flagPaymentsLimit int
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List logged payments, newest first",
	RunE:  runPayments,
}

func init() {
	paymentsCmd.Flags().StringVar(&flagPaymentsDebt, "debt", "", "Only show payments for this debt")
	paymentsCmd.Flags().IntVar(&flagPaymentsLimit, "limit", 20, "Maximum payments to show (0 for all)")
	rootCmd.AddCommand(paymentsCmd)
}

func runPayments(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	payments, err := st.ListPayments()
	if err != nil {
		return err
	}
	debts, err := st.ListDebts()
	if err != nil {
		return err
	}

	names := make(map[string]string, len(debts))
	for _, d := range debts {
		names[d.ID] = d.Name
	}

	if flagPaymentsDebt != "" {
		debt, err := st.FindDebt(flagPaymentsDebt)
		if err != nil {
			return err
		}
		filtered := payments[:0]
		for _, p := range payments {
			if p.DebtID == debt.ID {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}

	if len(payments) == 0 {
		fmt.Println("No payments logged.")
		return nil
	}

	// ListPayments returns newest first; the limit keeps the most recent.
	shown := payments
	if flagPaymentsLimit > 0 && len(shown) > flagPaymentsLimit {
		shown = shown[:flagPaymentsLimit]
	}

	t := cli.Table{Headers: []string{"Date", "Debt", "Amount", "Principal", "Interest"}}
	var totalAmount float64
	for _, p := range shown {
		name := names[p.DebtID]
		if name == "" {
			name = p.DebtID
		}
		t.Rows = append(t.Rows, []string{
			p.CompletedAt.Format("2006-01-02"),
			name,
			cli.FormatMoney(p.Amount),
			cli.FormatMoney(p.Principal),
			cli.FormatMoney(p.Interest),
		})
		totalAmount += p.Amount
	}
	t.Rows = append(t.Rows, []string{"---"})
	t.Rows = append(t.Rows, []string{"Total", fmt.Sprintf("%d payments", len(shown)), cli.FormatMoney(totalAmount), "", ""})

	fmt.Println(cli.RenderTable(t))
	return nil
}
