package cmd

import (
	"fmt"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/milestone"

	"github.com/spf13/cobra"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show payoff progress, streaks, and check for new milestones",
	RunE:  runMilestones,
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
}

func runMilestones(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := loadUserData(st)
	if err != nil {
		return err
	}

	streak := milestone.ComputeStreak(data.Payments, time.Now())

	fmt.Println(cli.RenderTitle("Milestones"))

	t := cli.Table{Rows: [][]string{
		{"Current streak", fmt.Sprintf("%d months", streak.CurrentStreak)},
		{"Longest streak", fmt.Sprintf("%d months", streak.LongestStreak)},
		{"Total payments", fmt.Sprintf("%d", streak.TotalPayments)},
		{"Paid this month", yesNo(streak.PaidThisMonth)},
	}}
	fmt.Println(cli.RenderTable(t))

	event, stats, err := milestone.New(st).Detect(data.Debts, data.Payments, data.Settings)
	if err != nil {
		return err
	}

	progress := cli.Table{Rows: [][]string{
		{"Progress", cli.FormatPercent(stats.PercentPaid)},
		{"Principal paid", cli.FormatMoney(stats.PrincipalPaid)},
		{"Interest paid", cli.FormatMoney(stats.InterestPaid)},
		{"Debts remaining", fmt.Sprintf("%d", stats.DebtsRemaining)},
		{"Debt-free date", stats.DebtFreeDate},
	}}
	fmt.Println(cli.RenderTable(progress))

	if event != nil {
		fmt.Println(cli.RenderCelebration(event.Headline, event.Subtext, event.IsFullHerd))
	} else {
		fmt.Println("No new milestones. Keep going.")
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
