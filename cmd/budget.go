package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/KingGhost27/debtdown/internal/budget"
	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagCadence string

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the monthly budget and net worth picture",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	income, err := st.ListIncome()
	if err != nil {
		return err
	}
	subs, err := st.ListSubscriptions()
	if err != nil {
		return err
	}
	assets, err := st.ListAssets()
	if err != nil {
		return err
	}
	debts, err := st.ListDebts()
	if err != nil {
		return err
	}
	settings, err := st.LoadStrategy()
	if err != nil {
		return err
	}

	s := budget.Summarize(income, subs, assets, debts)

	fmt.Println(cli.RenderTitle("Monthly Budget"))

	t := cli.Table{Rows: [][]string{
		{fmt.Sprintf("Income (%d sources)", s.IncomeCount), cli.FormatMoney(s.MonthlyIncome)},
		{fmt.Sprintf("Subscriptions (%d)", s.SubscriptionCount), cli.FormatMoney(-s.MonthlySubscriptions)},
		{fmt.Sprintf("Debt minimums (%d debts)", s.DebtCount), cli.FormatMoney(-s.MinimumPayments)},
		{"---"},
		{"Available for extra debt payments", cli.FormatMoney(s.AvailableForDebt)},
		{"Current monthly funding", cli.FormatMoney(settings.MonthlyFunding)},
		{"---"},
		{"Total assets", cli.FormatMoney(s.TotalAssets)},
		{"Total debt", cli.FormatMoney(-s.TotalDebt)},
		{"Net worth", cli.FormatMoney(s.NetWorth)},
	}}
	fmt.Println(cli.RenderTable(t))

	if s.AvailableForDebt < 0 {
		fmt.Println("Your subscriptions and minimums exceed your income. Review with 'debtdown sub list'.")
		return nil
	}

	suggested := budget.SuggestedFunding(s, 0.5)
	if suggested > settings.MonthlyFunding {
		fmt.Printf("Suggested funding: %s (minimums plus half your leftover). Set it with 'debtdown strategy fund %.2f'.\n",
			cli.FormatMoney(suggested), suggested)
	}
	return nil
}

func parseCadence(raw string) (model.Cadence, error) {
	switch model.Cadence(raw) {
	case model.CadenceWeekly, model.CadenceMonthly, model.CadenceYearly:
		return model.Cadence(raw), nil
	}
	return "", fmt.Errorf("invalid cadence %q (weekly, monthly, or yearly)", raw)
}

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage income sources",
}

var incomeAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add an income source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseMoneyArg("amount", args[1])
		if err != nil {
			return err
		}
		cadence, err := parseCadence(flagCadence)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		in := model.IncomeSource{ID: uuid.NewString(), Name: args[0], Amount: amount, Cadence: cadence}
		if err := st.SaveIncome(in); err != nil {
			return err
		}
		fmt.Printf("Added income %s: %s %s\n", in.Name, cli.FormatMoney(in.Amount), in.Cadence)
		return nil
	},
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List income sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		income, err := st.ListIncome()
		if err != nil {
			return err
		}
		if len(income) == 0 {
			fmt.Println("No income sources.")
			return nil
		}

		sort.Slice(income, func(i, j int) bool { return income[i].Name < income[j].Name })
		t := cli.Table{Headers: []string{"Name", "Amount", "Cadence", "Monthly"}}
		for _, in := range income {
			t.Rows = append(t.Rows, []string{
				in.Name,
				cli.FormatMoney(in.Amount),
				string(in.Cadence),
				cli.FormatMoney(in.Cadence.MonthlyAmount(in.Amount)),
			})
		}
		fmt.Println(cli.RenderTable(t))
		return nil
	},
}

var incomeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an income source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return st.DeleteIncome(args[0])
	},
}

var subCmd = &cobra.Command{
	Use:   "sub",
	Short: "Manage recurring subscriptions",
}

var subAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add a subscription",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseMoneyArg("amount", args[1])
		if err != nil {
			return err
		}
		cadence, err := parseCadence(flagCadence)
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sub := model.Subscription{
			ID:      uuid.NewString(),
			Name:    args[0],
			Amount:  amount,
			Cadence: cadence,
			NextDue: time.Now().AddDate(0, 1, 0),
		}
		if err := st.SaveSubscription(sub); err != nil {
			return err
		}
		fmt.Printf("Added subscription %s: %s %s\n", sub.Name, cli.FormatMoney(sub.Amount), sub.Cadence)
		return nil
	},
}

var subListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		subs, err := st.ListSubscriptions()
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			fmt.Println("No subscriptions.")
			return nil
		}

		sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
		t := cli.Table{Headers: []string{"Name", "Amount", "Cadence", "Monthly", "Next due"}}
		var total float64
		for _, sub := range subs {
			monthly := sub.Cadence.MonthlyAmount(sub.Amount)
			total += monthly
			t.Rows = append(t.Rows, []string{
				sub.Name,
				cli.FormatMoney(sub.Amount),
				string(sub.Cadence),
				cli.FormatMoney(monthly),
				sub.NextDue.Format("2006-01-02"),
			})
		}
		t.Rows = append(t.Rows, []string{"---"})
		t.Rows = append(t.Rows, []string{"Total", "", "", cli.FormatMoney(total), ""})
		fmt.Println(cli.RenderTable(t))
		return nil
	},
}

var subRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return st.DeleteSubscription(args[0])
	},
}

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Manage assets counted toward net worth",
}

var assetAddCmd = &cobra.Command{
	Use:   "add <name> <value>",
	Short: "Add or update an asset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseMoneyArg("value", args[1])
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		a := model.Asset{ID: uuid.NewString(), Name: args[0], Value: value}
		if err := st.SaveAsset(a); err != nil {
			return err
		}
		fmt.Printf("Added asset %s: %s\n", a.Name, cli.FormatMoney(a.Value))
		return nil
	},
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		assets, err := st.ListAssets()
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			fmt.Println("No assets.")
			return nil
		}

		sort.Slice(assets, func(i, j int) bool { return assets[i].Value > assets[j].Value })
		t := cli.Table{Headers: []string{"Name", "Value"}}
		var total float64
		for _, a := range assets {
			t.Rows = append(t.Rows, []string{a.Name, cli.FormatMoney(a.Value)})
			total += a.Value
		}
		t.Rows = append(t.Rows, []string{"---"})
		t.Rows = append(t.Rows, []string{"Total", cli.FormatMoney(total)})
		fmt.Println(cli.RenderTable(t))
		return nil
	},
}

var assetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()
		return st.DeleteAsset(args[0])
	},
}

func init() {
	incomeAddCmd.Flags().StringVar(&flagCadence, "cadence", "monthly", "weekly, monthly, or yearly")
	subAddCmd.Flags().StringVar(&flagCadence, "cadence", "monthly", "weekly, monthly, or yearly")

	incomeCmd.AddCommand(incomeAddCmd, incomeListCmd, incomeRmCmd)
	subCmd.AddCommand(subAddCmd, subListCmd, subRmCmd)
	assetCmd.AddCommand(assetAddCmd, assetListCmd, assetRmCmd)
	rootCmd.AddCommand(incomeCmd, subCmd, assetCmd)
}
