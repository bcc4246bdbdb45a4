package cmd

import (
	"fmt"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/plan"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare avalanche vs snowball for your debts",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := loadUserData(st)
	if err != nil {
		return err
	}

	c := plan.Compare(data.Debts, data.Settings, time.Now())
	if c.Avalanche.Months == 0 {
		fmt.Println("Nothing to compare. Add debts with 'debtdown debt add'.")
		return nil
	}

	fmt.Println(cli.RenderTitle("Avalanche vs Snowball"))

	t := cli.Table{Headers: []string{"", "Avalanche", "Snowball"}}
	t.Rows = append(t.Rows, []string{"Debt-free date",
		cli.FormatMonth(c.Avalanche.DebtFreeDate), cli.FormatMonth(c.Snowball.DebtFreeDate)})
	t.Rows = append(t.Rows, []string{"Time to payoff",
		cli.FormatMonthCount(c.Avalanche.Months), cli.FormatMonthCount(c.Snowball.Months)})
	t.Rows = append(t.Rows, []string{"Total interest",
		cli.FormatMoney(c.Avalanche.TotalInterest), cli.FormatMoney(c.Snowball.TotalInterest)})
	t.Rows = append(t.Rows, []string{"Total payments",
		cli.FormatMoney(c.Avalanche.TotalPayments), cli.FormatMoney(c.Snowball.TotalPayments)})
	fmt.Println(cli.RenderTable(t))

	if c.InterestSaved > 0 {
		fmt.Printf("%s saves %s in interest", c.Better, cli.FormatMoney(c.InterestSaved))
		if c.MonthsSaved > 0 {
			fmt.Printf(" and %s", cli.FormatMonthCount(c.MonthsSaved))
		}
		fmt.Println(".")
	} else {
		fmt.Println("Both strategies cost the same for your debts.")
	}

	if data.Settings.Strategy != c.Better {
		fmt.Printf("You are currently on %s. Switch with 'debtdown strategy set %s'.\n",
			data.Settings.Strategy, c.Better)
	}
	return nil
}
