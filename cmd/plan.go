package cmd

import (
	"fmt"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/config"
	"github.com/KingGhost27/debtdown/internal/plan"

	"github.com/spf13/cobra"
)

var flagPlanFull bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Simulate the payoff plan under the current strategy",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&flagPlanFull, "full", false, "Show the entire month-by-month schedule")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := loadUserData(st)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	p := plan.Generate(data.Debts, data.Settings, time.Now())
	if p.Months == 0 {
		fmt.Println("Nothing to pay off. Add debts with 'debtdown debt add'.")
		return nil
	}

	fmt.Println(cli.RenderTitle(fmt.Sprintf("Payoff Plan (%s)", p.Strategy)))

	summary := cli.Table{Rows: [][]string{
		{"Debt-free date", cli.FormatMonth(p.DebtFreeDate)},
		{"Time to payoff", cli.FormatMonthCount(p.Months)},
		{"Total payments", cli.FormatMoney(p.TotalPayments)},
		{"Total interest", cli.FormatMoney(p.TotalInterest)},
		{"Monthly funding", cli.FormatMoney(data.Settings.MonthlyFunding)},
	}}
	fmt.Println(cli.RenderTable(summary))

	if p.Truncated {
		fmt.Println("Warning: payoff does not complete within 30 years at the current funding level.")
	}

	if len(p.Steps) > 0 {
		steps := cli.Table{Headers: []string{"Step", "Focus debt", "Debts", "From", "Until"}}
		for _, s := range p.Steps {
			until := cli.FormatMonth(s.CompletedDate)
			steps.Rows = append(steps.Rows, []string{
				fmt.Sprintf("%d", s.Order),
				s.PriorityDebtName,
				fmt.Sprintf("%d", len(s.DebtIDs)),
				cli.FormatMonth(s.StartDate),
				until,
			})
		}
		fmt.Println(cli.RenderTable(steps))
	}

	if len(p.Milestones) > 0 {
		ms := cli.Table{Headers: []string{"Paid off", "Date", "Total paid"}}
		for _, m := range p.Milestones {
			ms.Rows = append(ms.Rows, []string{
				m.DebtName,
				cli.FormatMonth(m.PayoffDate),
				cli.FormatMoney(m.TotalPaid),
			})
		}
		fmt.Println(cli.RenderTable(ms))
	}

	rows := cfg.General.ScheduleRows
	if flagPlanFull || rows <= 0 || rows > len(p.MonthlyBreakdown) {
		rows = len(p.MonthlyBreakdown)
	}

	sched := cli.Table{Headers: []string{"Month", "Debt", "Payment", "Principal", "Interest", "Remaining"}}
	for _, snap := range p.MonthlyBreakdown[:rows] {
		for i, dp := range snap.Payments {
			month := ""
			if i == 0 {
				month = cli.FormatMonth(snap.Month)
			}
			sched.Rows = append(sched.Rows, []string{
				month,
				dp.DebtName,
				cli.FormatMoney(dp.Amount),
				cli.FormatMoney(dp.Principal),
				cli.FormatMoney(dp.Interest),
				cli.FormatMoney(dp.RemainingBalance),
			})
		}
	}
	fmt.Println(cli.RenderTable(sched))

	if rows < len(p.MonthlyBreakdown) {
		fmt.Printf("Showing first %d of %d months. Use --full for the whole schedule.\n", rows, len(p.MonthlyBreakdown))
	}
	return nil
}
