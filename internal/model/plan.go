package model

import "time"

// DebtPayment is one debt's share of a single simulated month.
type DebtPayment struct {
	DebtID           string
	DebtName         string
	Amount           float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// MonthlySnapshot lists every active debt's payment for one simulated month.
type MonthlySnapshot struct {
	Month    time.Time
	Payments []DebtPayment
}

// DebtMilestone records one debt reaching zero balance during simulation.
type DebtMilestone struct {
	DebtID     string
	DebtName   string
	PayoffDate time.Time
	TotalPaid  float64
	// InterestPaid is not tracked per debt by the simulator and is always 0.
	InterestPaid float64
}

// PayoffStep is a period during which one fixed set of debts is active and
// one designated debt receives the extra payment. A step ends when a debt
// is paid off.
type PayoffStep struct {
	Order            int
	PriorityDebtID   string
	PriorityDebtName string
	DebtIDs          []string
	StartDate        time.Time
	CompletedDate    time.Time
}

// PayoffPlan is the full output of the payoff simulation. It is a derived
// view recomputed on demand, never persisted as source of truth.
type PayoffPlan struct {
	Strategy         Strategy
	StartDate        time.Time
	DebtFreeDate     time.Time
	Months           int
	TotalPayments    float64
	TotalInterest    float64
	Truncated        bool
	Steps            []PayoffStep
	Milestones       []DebtMilestone
	MonthlyBreakdown []MonthlySnapshot
}

// StrategyComparison holds avalanche vs snowball results for the same debts.
type StrategyComparison struct {
	Avalanche     PayoffPlan
	Snowball      PayoffPlan
	InterestSaved float64
	MonthsSaved   int
	// Better is the strategy with the lower total interest.
	Better Strategy
}
