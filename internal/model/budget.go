package model

// BudgetSummary is the monthly cash-flow and net-worth picture.
type BudgetSummary struct {
	MonthlyIncome        float64
	MonthlySubscriptions float64
	MinimumPayments      float64
	// AvailableForDebt is income minus subscriptions and minimums; can be
	// negative when the budget is underwater.
	AvailableForDebt  float64
	TotalDebt         float64
	TotalAssets       float64
	NetWorth          float64
	DebtCount         int
	SubscriptionCount int
	IncomeCount       int
}
