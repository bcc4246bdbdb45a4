// Package model defines domain types for debtdown debts, payments, and plans.
package model

import "time"

// Strategy selects the extra-payment allocation rule.
type Strategy string

const (
	// StrategyAvalanche allocates extra funds to the highest-APR debt first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball allocates extra funds to the lowest-balance debt first.
	StrategySnowball Strategy = "snowball"
)

// Debt is a single tracked debt account.
type Debt struct {
	ID       string
	Name     string
	Category string
	// Balance is the current amount owed. Never negative.
	Balance float64
	// OriginalBalance is the immutable baseline used for progress percent.
	OriginalBalance float64
	// APR is the annual percentage rate as a 0-100 number.
	APR            float64
	MinimumPayment float64
	// DueDay is the day of month the payment is due (1-28).
	DueDay    int
	CreatedAt time.Time
}

// PercentPaid returns how much of the original balance has been paid, 0-100.
// Can exceed 100 or go negative only if OriginalBalance is misconfigured.
func (d Debt) PercentPaid() float64 {
	if d.OriginalBalance <= 0 {
		return 0
	}
	return (d.OriginalBalance - d.Balance) / d.OriginalBalance * 100
}

// Payment is one payment toward a debt, split into principal and interest.
type Payment struct {
	ID          string
	DebtID      string
	Amount      float64
	Principal   float64
	Interest    float64
	IsCompleted bool
	CompletedAt time.Time
}

// OneTimeFunding is a lump sum scheduled for a specific calendar month.
type OneTimeFunding struct {
	ID     string
	Amount float64
	// Month is the target calendar month in YYYY-MM form.
	Month string
}

// StrategySettings holds the payoff strategy configuration.
type StrategySettings struct {
	Strategy Strategy
	// MonthlyFunding is the total amount available across all debts per month.
	MonthlyFunding float64
	OneTimeFunding []OneTimeFunding
}

// IncomeSource is a recurring income stream.
type IncomeSource struct {
	ID      string
	Name    string
	Amount  float64
	Cadence Cadence
}

// Subscription is a recurring expense.
type Subscription struct {
	ID      string
	Name    string
	Amount  float64
	Cadence Cadence
	NextDue time.Time
}

// Asset is something the user owns, counted toward net worth.
type Asset struct {
	ID    string
	Name  string
	Value float64
}

// Cadence is how often a recurring amount repeats.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

// MonthlyAmount normalizes an amount at this cadence to a per-month figure.
func (c Cadence) MonthlyAmount(amount float64) float64 {
	switch c {
	case CadenceWeekly:
		return amount * 52 / 12
	case CadenceYearly:
		return amount / 12
	default:
		return amount
	}
}
