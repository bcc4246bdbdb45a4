// Package plan simulates month-by-month amortized debt payoff.
package plan

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

const (
	// MaxMonths caps the simulation at 30 years. A plan that has not
	// reached payoff by then is truncated, not rejected.
	MaxMonths = 360

	// PayoffEpsilon treats balances at or below a cent as paid off.
	PayoffEpsilon = 0.01
)

// Generate simulates paying off the given debts under the strategy settings,
// starting at start (or now if zero). It never fails: degenerate inputs such
// as an empty debt list or funding below the total minimums still produce a
// plan. The caller's debts are never mutated.
func Generate(debts []model.Debt, settings model.StrategySettings, start time.Time) model.PayoffPlan {
	if start.IsZero() {
		start = time.Now()
	}

	result := model.PayoffPlan{
		Strategy:  settings.Strategy,
		StartDate: start,
	}
	if len(debts) == 0 {
		result.DebtFreeDate = start
		return result
	}

	// Clone so the simulation owns its balances.
	working := make([]*model.Debt, len(debts))
	for i := range debts {
		d := debts[i]
		working[i] = &d
	}

	// Priority order is fixed once from the original debts and never
	// re-sorted as balances change. The priority recipient in any month is
	// the highest-priority debt that still carries a balance.
	order := priorityOrder(working, settings.Strategy)

	totalMinimums := 0.0
	for _, d := range working {
		totalMinimums += d.MinimumPayment
	}
	if settings.MonthlyFunding < totalMinimums {
		log.Printf("warning: monthly funding %.2f is below total minimum payments %.2f; debts may never reach zero", settings.MonthlyFunding, totalMinimums)
	}

	appliedFunding := make(map[string]struct{})
	cursor := start
	lastMonth := start

	step := openStep(1, order, cursor)

	months := 0
	for months < MaxMonths {
		if activeCount(working) == 0 {
			break
		}

		// Extra is measured against the full minimum schedule, so a paid-off
		// debt's freed minimum does not silently inflate the extra. With
		// funding equal to the sum of minimums, no debt ever gets extra.
		extra := settings.MonthlyFunding - totalMinimums
		if extra < 0 {
			extra = 0
		}

		// One-time funding matched on the calendar month, applied once.
		monthKey := cursor.Format("2006-01")
		for _, f := range settings.OneTimeFunding {
			if f.Month != monthKey {
				continue
			}
			if _, done := appliedFunding[f.ID]; done {
				continue
			}
			extra += f.Amount
			appliedFunding[f.ID] = struct{}{}
		}

		priority := firstActive(order)

		snapshot := model.MonthlySnapshot{Month: cursor}
		paidOffAny := false

		for _, d := range working {
			if d.Balance <= 0 {
				continue
			}

			interest := d.Balance * d.APR / 12 / 100
			payment := d.MinimumPayment
			if d == priority {
				payment += extra
			}
			// Never pay past the payoff amount.
			if max := d.Balance + interest; payment > max {
				payment = max
			}

			principal := payment - math.Min(interest, payment)
			d.Balance -= principal
			if d.Balance < 0 {
				d.Balance = 0
			}

			result.TotalPayments += payment
			result.TotalInterest += interest

			snapshot.Payments = append(snapshot.Payments, model.DebtPayment{
				DebtID:           d.ID,
				DebtName:         d.Name,
				Amount:           round2(payment),
				Principal:        round2(principal),
				Interest:         round2(interest),
				RemainingBalance: round2(d.Balance),
			})

			if d.Balance <= PayoffEpsilon {
				d.Balance = 0
				result.Milestones = append(result.Milestones, model.DebtMilestone{
					DebtID:     d.ID,
					DebtName:   d.Name,
					PayoffDate: cursor,
					TotalPaid:  d.OriginalBalance,
					// Per-debt interest is not tracked across months,
					// only the plan-level total.
					InterestPaid: 0,
				})
				paidOffAny = true
			}
		}

		result.MonthlyBreakdown = append(result.MonthlyBreakdown, snapshot)
		lastMonth = cursor

		if paidOffAny {
			step.CompletedDate = cursor
			result.Steps = append(result.Steps, step)
			if activeCount(working) > 0 {
				step = openStep(step.Order+1, order, cursor.AddDate(0, 1, 0))
			} else {
				step = model.PayoffStep{}
			}
		}

		cursor = cursor.AddDate(0, 1, 0)
		months++
	}

	if activeCount(working) > 0 {
		// Hit the cap with debts outstanding; close out what we have.
		result.Truncated = true
		step.CompletedDate = lastMonth
		result.Steps = append(result.Steps, step)
	}

	result.Months = months
	result.DebtFreeDate = lastMonth
	result.TotalPayments = round2(result.TotalPayments)
	result.TotalInterest = round2(result.TotalInterest)

	return result
}

// StandaloneMonths returns how many months a single debt takes to pay off
// with only its minimum payment, capped at MaxMonths.
func StandaloneMonths(d model.Debt) int {
	balance := d.Balance
	for month := 1; month <= MaxMonths; month++ {
		interest := balance * d.APR / 12 / 100
		payment := d.MinimumPayment
		if max := balance + interest; payment > max {
			payment = max
		}
		principal := payment - math.Min(interest, payment)
		if principal <= 0 {
			// Minimum does not cover interest; the balance never shrinks.
			return MaxMonths
		}
		balance -= principal
		if balance <= PayoffEpsilon {
			return month
		}
	}
	return MaxMonths
}

func priorityOrder(debts []*model.Debt, strategy model.Strategy) []*model.Debt {
	ordered := make([]*model.Debt, len(debts))
	copy(ordered, debts)
	// Stable sort: debts with equal APR or balance keep input order.
	if strategy == model.StrategySnowball {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	} else {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].APR > ordered[j].APR
		})
	}
	return ordered
}

func firstActive(order []*model.Debt) *model.Debt {
	for _, d := range order {
		if d.Balance > 0 {
			return d
		}
	}
	return nil
}

func activeCount(debts []*model.Debt) int {
	n := 0
	for _, d := range debts {
		if d.Balance > 0 {
			n++
		}
	}
	return n
}

func openStep(num int, order []*model.Debt, start time.Time) model.PayoffStep {
	step := model.PayoffStep{
		Order:     num,
		StartDate: start,
	}
	for _, d := range order {
		if d.Balance > 0 {
			step.DebtIDs = append(step.DebtIDs, d.ID)
		}
	}
	if p := firstActive(order); p != nil {
		step.PriorityDebtID = p.ID
		step.PriorityDebtName = p.Name
	}
	return step
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
