// Package budget computes monthly cash-flow and net-worth summaries.
package budget

import (
	"github.com/KingGhost27/debtdown/internal/model"
)

// Summarize rolls income sources, subscriptions, assets, and debts into a
// single monthly budget picture. Recurring amounts are normalized to
// per-month figures by cadence.
func Summarize(income []model.IncomeSource, subs []model.Subscription, assets []model.Asset, debts []model.Debt) model.BudgetSummary {
	var s model.BudgetSummary

	for _, in := range income {
		s.MonthlyIncome += in.Cadence.MonthlyAmount(in.Amount)
	}
	s.IncomeCount = len(income)

	for _, sub := range subs {
		s.MonthlySubscriptions += sub.Cadence.MonthlyAmount(sub.Amount)
	}
	s.SubscriptionCount = len(subs)

	for _, d := range debts {
		s.TotalDebt += d.Balance
		if d.Balance > 0 {
			s.MinimumPayments += d.MinimumPayment
			s.DebtCount++
		}
	}

	for _, a := range assets {
		s.TotalAssets += a.Value
	}

	s.AvailableForDebt = s.MonthlyIncome - s.MonthlySubscriptions - s.MinimumPayments
	s.NetWorth = s.TotalAssets - s.TotalDebt

	return s
}

// SuggestedFunding returns a monthly funding amount covering all minimums
// plus the given share (0-1) of whatever is left over after subscriptions.
// It never suggests less than the minimums.
func SuggestedFunding(s model.BudgetSummary, share float64) float64 {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	leftover := s.MonthlyIncome - s.MonthlySubscriptions - s.MinimumPayments
	if leftover < 0 {
		leftover = 0
	}
	return s.MinimumPayments + leftover*share
}
