package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/KingGhost27/debtdown/internal/cli"
	"github.com/KingGhost27/debtdown/internal/milestone"
	"github.com/KingGhost27/debtdown/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <debt> <amount>",
	Short: "Log a payment toward a debt",
	Long: `Log a payment toward a debt. The payment is split into interest
(one month of accrual at the debt's APR) and principal, the balance is
reduced, and any newly reached milestone is celebrated.`,
	Args: cobra.ExactArgs(2),
	RunE: runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(cmd *cobra.Command, args []string) error {
	amount, err := parseMoneyArg("amount", args[1])
	if err != nil {
		return err
	}
	if amount == 0 {
		return fmt.Errorf("amount must be greater than zero")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	debt, err := st.FindDebt(args[0])
	if err != nil {
		return err
	}
	if debt.Balance <= 0 {
		return fmt.Errorf("%s is already paid off", debt.Name)
	}

	interest := debt.Balance * debt.APR / 12 / 100
	if interest > amount {
		interest = amount
	}
	principal := amount - interest
	if principal > debt.Balance {
		principal = debt.Balance
	}

	payment := model.Payment{
		ID:          uuid.NewString(),
		DebtID:      debt.ID,
		Amount:      amount,
		Principal:   principal,
		Interest:    interest,
		IsCompleted: true,
		CompletedAt: time.Now(),
	}

	debt.Balance -= principal
	if debt.Balance < 0 {
		debt.Balance = 0
	}

	if err := st.SavePayment(payment); err != nil {
		return fmt.Errorf("saving payment: %w", err)
	}
	if err := st.SaveDebt(debt); err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	fmt.Printf("Logged %s toward %s (%s principal, %s interest). Balance: %s\n",
		cli.FormatMoney(amount), debt.Name,
		cli.FormatMoney(principal), cli.FormatMoney(interest),
		cli.FormatMoney(debt.Balance))
	if debt.Balance == 0 {
		fmt.Printf("%s is paid off!\n", debt.Name)
	}

	data, err := loadUserData(st)
	if err != nil {
		return err
	}
	event, _, err := milestone.New(st).Detect(data.Debts, data.Payments, data.Settings)
	if err != nil {
		// Milestone state is cosmetic. The payment itself is already saved.
		log.Printf("warning: milestone detection failed: %v", err)
		return nil
	}
	if event != nil {
		fmt.Println()
		fmt.Println(cli.RenderCelebration(event.Headline, event.Subtext, event.IsFullHerd))
	}
	return nil
}
