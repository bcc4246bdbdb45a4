package plan

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

func testStart(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func singleDebt(balance, apr, minimum float64) model.Debt {
	return model.Debt{
		ID:              "d1",
		Name:            "Card",
		Balance:         balance,
		OriginalBalance: balance,
		APR:             apr,
		MinimumPayment:  minimum,
	}
}

func settings(strategy model.Strategy, funding float64) model.StrategySettings {
	return model.StrategySettings{Strategy: strategy, MonthlyFunding: funding}
}

func TestGenerateEmptyDebtsReturnsZeroPlan(t *testing.T) {
	start := testStart(t)
	p := Generate(nil, settings(model.StrategyAvalanche, 500), start)

	if !p.DebtFreeDate.Equal(start) {
		t.Fatalf("DebtFreeDate = %v, want start %v", p.DebtFreeDate, start)
	}
	if p.TotalPayments != 0 || p.TotalInterest != 0 {
		t.Fatalf("totals = %.2f / %.2f, want zero", p.TotalPayments, p.TotalInterest)
	}
	if len(p.MonthlyBreakdown) != 0 || len(p.Steps) != 0 {
		t.Fatal("empty input produced breakdown or steps")
	}
}

func TestGenerateFirstMonthSplit(t *testing.T) {
	// Balance 1200 at 12% APR with a 100 payment: month 1 interest must be
	// exactly 12.00, principal 88.00, new balance 1112.00.
	p := Generate([]model.Debt{singleDebt(1200, 12, 100)}, settings(model.StrategyAvalanche, 100), testStart(t))

	if len(p.MonthlyBreakdown) == 0 {
		t.Fatal("no monthly breakdown produced")
	}
	first := p.MonthlyBreakdown[0].Payments[0]
	if first.Interest != 12.00 {
		t.Fatalf("month 1 interest = %.2f, want 12.00", first.Interest)
	}
	if first.Principal != 88.00 {
		t.Fatalf("month 1 principal = %.2f, want 88.00", first.Principal)
	}
	if first.RemainingBalance != 1112.00 {
		t.Fatalf("month 1 remaining = %.2f, want 1112.00", first.RemainingBalance)
	}
}

func TestGenerateMatchesStandaloneAmortization(t *testing.T) {
	// With funding equal to the minimum, the simulator's month count must
	// match the independent single-debt amortization.
	d := singleDebt(5000, 18, 150)
	p := Generate([]model.Debt{d}, settings(model.StrategyAvalanche, 150), testStart(t))

	want := StandaloneMonths(d)
	if p.Months != want {
		t.Fatalf("simulated months = %d, standalone amortization = %d", p.Months, want)
	}
}

func TestGenerateMinimumOnlyFundingMatchesSlowestDebt(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "A", Balance: 3000, OriginalBalance: 3000, APR: 15, MinimumPayment: 90},
		{ID: "b", Name: "B", Balance: 1000, OriginalBalance: 1000, APR: 22, MinimumPayment: 50},
	}
	funding := 140.0 // exactly the sum of minimums

	p := Generate(debts, settings(model.StrategyAvalanche, funding), testStart(t))

	slowest := 0
	for _, d := range debts {
		if m := StandaloneMonths(d); m > slowest {
			slowest = m
		}
	}
	if p.Months != slowest {
		t.Fatalf("months = %d, want slowest standalone payoff %d", p.Months, slowest)
	}

	// No debt may ever receive more than its minimum (capped at payoff).
	for _, snap := range p.MonthlyBreakdown {
		for _, dp := range snap.Payments {
			var min float64
			for _, d := range debts {
				if d.ID == dp.DebtID {
					min = d.MinimumPayment
				}
			}
			if dp.Amount > min+0.005 {
				t.Fatalf("debt %s got %.2f in %s, above minimum %.2f", dp.DebtID, dp.Amount, snap.Month.Format("2006-01"), min)
			}
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "A", Balance: 2500, OriginalBalance: 2500, APR: 19.99, MinimumPayment: 75},
		{ID: "b", Name: "B", Balance: 900, OriginalBalance: 1200, APR: 6.5, MinimumPayment: 40},
	}
	s := settings(model.StrategySnowball, 300)
	s.OneTimeFunding = []model.OneTimeFunding{{ID: "f1", Amount: 200, Month: "2026-03"}}
	start := testStart(t)

	first := Generate(debts, s, start)
	second := Generate(debts, s, start)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs with identical inputs differ")
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	debts := []model.Debt{singleDebt(1200, 12, 100)}
	Generate(debts, settings(model.StrategyAvalanche, 400), testStart(t))

	if debts[0].Balance != 1200 {
		t.Fatalf("input balance mutated to %.2f", debts[0].Balance)
	}
}

func TestAvalancheTargetsHighestAPR(t *testing.T) {
	// A has the higher APR and higher balance, B the lower of both.
	debts := []model.Debt{
		{ID: "a", Name: "A", Balance: 4000, OriginalBalance: 4000, APR: 24, MinimumPayment: 80},
		{ID: "b", Name: "B", Balance: 1500, OriginalBalance: 1500, APR: 9, MinimumPayment: 45},
	}
	p := Generate(debts, settings(model.StrategyAvalanche, 400), testStart(t))

	for _, snap := range p.MonthlyBreakdown {
		bothActive := len(snap.Payments) == 2
		if !bothActive {
			break
		}
		for _, dp := range snap.Payments {
			if dp.DebtID == "a" && dp.Amount <= 80 {
				t.Fatalf("avalanche gave A only %.2f in %s", dp.Amount, snap.Month.Format("2006-01"))
			}
			if dp.DebtID == "b" && dp.Amount > 45+0.005 {
				t.Fatalf("avalanche gave B extra (%.2f) in %s", dp.Amount, snap.Month.Format("2006-01"))
			}
		}
	}
}

func TestSnowballTargetsLowestBalance(t *testing.T) {
	debts := []model.Debt{
		{ID: "a", Name: "A", Balance: 4000, OriginalBalance: 4000, APR: 24, MinimumPayment: 80},
		{ID: "b", Name: "B", Balance: 1500, OriginalBalance: 1500, APR: 9, MinimumPayment: 45},
	}
	p := Generate(debts, settings(model.StrategySnowball, 400), testStart(t))

	for _, snap := range p.MonthlyBreakdown {
		if len(snap.Payments) != 2 {
			break
		}
		for _, dp := range snap.Payments {
			if dp.DebtID == "b" && dp.Amount <= 45 {
				t.Fatalf("snowball gave B only %.2f in %s", dp.Amount, snap.Month.Format("2006-01"))
			}
		}
	}
}

func TestExtraRollsToNextDebtAfterPayoff(t *testing.T) {
	// Avalanche with +50 extra: the 20% debt gets all extra until payoff,
	// then the extra shifts to the 10% debt. The freed 25 minimum does not
	// roll into the extra, so Low receives 110, not 135.
	debts := []model.Debt{
		{ID: "hi", Name: "High", Balance: 500, OriginalBalance: 500, APR: 20, MinimumPayment: 25},
		{ID: "lo", Name: "Low", Balance: 2000, OriginalBalance: 2000, APR: 10, MinimumPayment: 60},
	}
	p := Generate(debts, settings(model.StrategyAvalanche, 135), testStart(t))

	var payoffMonth time.Time
	for _, m := range p.Milestones {
		if m.DebtID == "hi" {
			payoffMonth = m.PayoffDate
		}
	}
	if payoffMonth.IsZero() {
		t.Fatal("high-APR debt never paid off")
	}

	for _, snap := range p.MonthlyBreakdown {
		for _, dp := range snap.Payments {
			if dp.DebtID == "hi" && snap.Month.Before(payoffMonth) && dp.Amount < 75 {
				t.Fatalf("before payoff, High got %.2f, want minimum+extra 75.00", dp.Amount)
			}
			if dp.DebtID != "lo" || !snap.Month.After(payoffMonth) {
				continue
			}
			// Low's own final month is capped at its residual balance plus
			// interest, so only full months carry minimum+extra.
			if dp.RemainingBalance == 0 {
				continue
			}
			if math.Abs(dp.Amount-110) > 0.005 {
				t.Fatalf("after payoff, Low got %.2f in %s, want minimum+extra 110.00", dp.Amount, snap.Month.Format("2006-01"))
			}
		}
	}

	if len(p.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(p.Steps))
	}
	if p.Steps[0].PriorityDebtID != "hi" || p.Steps[1].PriorityDebtID != "lo" {
		t.Fatalf("step priorities = %s, %s; want hi, lo", p.Steps[0].PriorityDebtID, p.Steps[1].PriorityDebtID)
	}
}

func TestPriorityOrderStableTieBreak(t *testing.T) {
	// Identical APRs: avalanche must keep input order.
	debts := []model.Debt{
		{ID: "first", Name: "First", Balance: 1000, OriginalBalance: 1000, APR: 15, MinimumPayment: 30},
		{ID: "second", Name: "Second", Balance: 1000, OriginalBalance: 1000, APR: 15, MinimumPayment: 30},
	}
	p := Generate(debts, settings(model.StrategyAvalanche, 200), testStart(t))

	if len(p.Steps) == 0 {
		t.Fatal("no steps produced")
	}
	if p.Steps[0].PriorityDebtID != "first" {
		t.Fatalf("tie-break priority = %s, want input-order debt %q", p.Steps[0].PriorityDebtID, "first")
	}
}

func TestOneTimeFundingAppliedOnceInMatchingMonth(t *testing.T) {
	d := singleDebt(1000, 0, 100)
	s := settings(model.StrategyAvalanche, 100)
	s.OneTimeFunding = []model.OneTimeFunding{{ID: "bonus", Amount: 500, Month: "2026-02"}}

	p := Generate([]model.Debt{d}, s, testStart(t))

	// Jan 100, Feb 600 (minimum + one-time), then 300 remains at the 100
	// minimum: Mar, Apr, May -> paid off in 5 months.
	if p.Months != 5 {
		t.Fatalf("months = %d, want 5", p.Months)
	}
	feb := p.MonthlyBreakdown[1].Payments[0]
	if feb.Amount != 600.00 {
		t.Fatalf("February payment = %.2f, want 600.00 (minimum + one-time)", feb.Amount)
	}
}

func TestUnderfundedStrategyTruncatesAtCap(t *testing.T) {
	// Minimum below monthly interest: the balance never shrinks, the
	// simulation must stop at the cap rather than loop or error.
	d := singleDebt(10000, 30, 10)
	p := Generate([]model.Debt{d}, settings(model.StrategyAvalanche, 10), testStart(t))

	if !p.Truncated {
		t.Fatal("expected truncated plan")
	}
	if p.Months != MaxMonths {
		t.Fatalf("months = %d, want cap %d", p.Months, MaxMonths)
	}
	if len(p.Milestones) != 0 {
		t.Fatal("underfunded debt reported a payoff milestone")
	}
}

func TestDebtMilestoneRecordsOriginalBalanceAndZeroInterest(t *testing.T) {
	d := singleDebt(300, 12, 100)
	p := Generate([]model.Debt{d}, settings(model.StrategyAvalanche, 100), testStart(t))

	if len(p.Milestones) != 1 {
		t.Fatalf("milestones = %d, want 1", len(p.Milestones))
	}
	m := p.Milestones[0]
	if m.TotalPaid != 300 {
		t.Fatalf("TotalPaid = %.2f, want original balance 300", m.TotalPaid)
	}
	if m.InterestPaid != 0 {
		t.Fatalf("InterestPaid = %.2f, want 0 (not tracked per debt)", m.InterestPaid)
	}
}

func TestPaymentNeverExceedsPayoffAmount(t *testing.T) {
	d := singleDebt(150, 12, 100)
	p := Generate([]model.Debt{d}, settings(model.StrategyAvalanche, 1000), testStart(t))

	first := p.MonthlyBreakdown[0].Payments[0]
	wantMax := round2(150 + 150*12/12.0/100)
	if first.Amount > wantMax {
		t.Fatalf("payment %.2f exceeds balance+interest %.2f", first.Amount, wantMax)
	}
	if first.RemainingBalance != 0 {
		t.Fatalf("remaining = %.2f, want 0", first.RemainingBalance)
	}
}

func TestStandaloneMonthsClosedForm(t *testing.T) {
	// 1200 at 12% APR with 110/month; independently iterate the
	// amortization and compare.
	d := singleDebt(1200, 12, 110)

	balance := 1200.0
	months := 0
	for balance > PayoffEpsilon {
		interest := balance * 12 / 12 / 100
		payment := math.Min(110, balance+interest)
		balance -= payment - math.Min(interest, payment)
		months++
	}

	if got := StandaloneMonths(d); got != months {
		t.Fatalf("StandaloneMonths = %d, want %d", got, months)
	}
}
