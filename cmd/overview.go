package cmd

import (
	"fmt"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/milestone"
	"github.com/KingGhost27/debtdown/internal/model"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show debt totals, progress, and streak at a glance",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := loadUserData(st)
	if err != nil {
		return err
	}

	if len(data.Debts) == 0 {
		fmt.Println("No debts tracked yet. Run 'debtdown debt add' or 'debtdown setup' to get started.")
		return nil
	}

	det := milestone.New(st)
	stats := det.Stats(data.Debts, data.Payments, data.Settings)

	var balance, minimums float64
	for _, d := range data.Debts {
		balance += d.Balance
		minimums += d.MinimumPayment
	}

	fmt.Println(cli.RenderTitle("Debt Overview"))
	fmt.Println(cli.RenderProgressBar(stats.PercentPaid, 40))
	fmt.Println()

	fmt.Println(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Remaining balance", cli.FormatMoney(balance)},
			{"Original balance", cli.FormatMoney(stats.TotalOriginal)},
			{"Principal paid", cli.FormatMoney(stats.PrincipalPaid)},
			{"Interest paid", cli.FormatMoney(stats.InterestPaid)},
			{"Monthly minimums", cli.FormatMoney(minimums)},
			{"Monthly funding", cli.FormatMoney(data.Settings.MonthlyFunding)},
			{"Debts remaining", fmt.Sprintf("%d", stats.DebtsRemaining)},
			{"Payment streak", fmt.Sprintf("%d months", stats.Streak.CurrentStreak)},
			{"Debt-free date", stats.DebtFreeDate},
		},
	}))

	if history := paymentHistory(data.Payments, 12); len(history) > 0 {
		fmt.Printf("Last 12 months: %s\n", cli.RenderSparkline(history))
	}

	if !stats.Streak.PaidThisMonth {
		fmt.Println("No payment logged this month yet. Log one with 'debtdown pay' to keep the streak alive.")
	}
	return nil
}

// paymentHistory buckets completed payment totals into the trailing n
// calendar months, oldest first. Returns nil when no payments exist.
func paymentHistory(payments []model.Payment, n int) []float64 {
	if len(payments) == 0 {
		return nil
	}

	totals := make(map[string]float64)
	for _, p := range payments {
		if !p.IsCompleted {
			continue
		}
		totals[p.CompletedAt.Format("2006-01")] += p.Amount
	}

	now := time.Now()
	history := make([]float64, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		history = append(history, totals[month.Format("2006-01")])
	}
	return history
}
