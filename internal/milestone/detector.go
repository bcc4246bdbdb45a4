// Package milestone detects one-time celebratory thresholds from payment
// history and the current debt set.
package milestone

import (
	"fmt"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
	"github.com/KingGhost27/debtdown/internal/plan"
)

// Store is the persisted set of already-celebrated milestone keys. Each key
// fires at most once for the lifetime of the stored data.
type Store interface {
	Has(key string) (bool, error)
	Mark(key string) error
}

// Detector evaluates milestone thresholds against current aggregate state
// and de-duplicates through a Store.
type Detector struct {
	store Store
	now   func() time.Time
}

// New returns a Detector backed by the given celebrated-key store.
func New(store Store) *Detector {
	return &Detector{store: store, now: time.Now}
}

// Detect recomputes stats and streaks, evaluates every threshold, and
// returns the single highest-priority milestone not yet celebrated, marking
// it in the store. It returns a nil event when nothing new qualifies. At
// most one event fires per call even when several thresholds newly qualify;
// the lower-priority ones are not queued.
func (d *Detector) Detect(debts []model.Debt, payments []model.Payment, settings model.StrategySettings) (*model.MilestoneEvent, model.CelebrationStats, error) {
	stats := d.computeStats(debts, payments, settings)

	var pending []model.MilestoneEvent
	for _, ev := range d.candidates(debts, payments, stats) {
		seen, err := d.store.Has(ev.Key)
		if err != nil {
			return nil, stats, fmt.Errorf("checking celebrated key %q: %w", ev.Key, err)
		}
		if !seen {
			pending = append(pending, ev)
		}
	}
	if len(pending) == 0 {
		return nil, stats, nil
	}

	// The whole pending batch is marked, not just the winner: thresholds
	// that lose the priority race in this pass are skipped forever rather
	// than queued for later.
	for _, ev := range pending {
		if err := d.store.Mark(ev.Key); err != nil {
			return nil, stats, fmt.Errorf("marking celebrated key %q: %w", ev.Key, err)
		}
	}

	event := pending[0]
	return &event, stats, nil
}

// Stats recomputes the aggregate snapshot without evaluating milestones.
func (d *Detector) Stats(debts []model.Debt, payments []model.Payment, settings model.StrategySettings) model.CelebrationStats {
	return d.computeStats(debts, payments, settings)
}

func (d *Detector) computeStats(debts []model.Debt, payments []model.Payment, settings model.StrategySettings) model.CelebrationStats {
	stats := model.CelebrationStats{
		Streak:       ComputeStreak(payments, d.now()),
		DebtFreeDate: "Unknown",
	}

	for _, debt := range debts {
		stats.TotalOriginal += debt.OriginalBalance
		if debt.Balance > 0 {
			stats.DebtsRemaining++
		}
	}
	for _, p := range payments {
		if !p.IsCompleted {
			continue
		}
		stats.PrincipalPaid += p.Principal
		stats.InterestPaid += p.Interest
	}
	if stats.TotalOriginal > 0 {
		stats.PercentPaid = stats.PrincipalPaid / stats.TotalOriginal * 100
	}

	if date, ok := projectedDebtFree(debts, settings, d.now()); ok {
		stats.DebtFreeDate = date
	}

	return stats
}

// projectedDebtFree produces the plan's debt-free date for the stats
// snapshot. Plan generation must never block milestone evaluation, so any
// panic is swallowed and the date stays "Unknown".
func projectedDebtFree(debts []model.Debt, settings model.StrategySettings, now time.Time) (date string, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	p := plan.Generate(debts, settings, now)
	if p.Truncated {
		return "", false
	}
	return p.DebtFreeDate.Format("January 2006"), true
}

// candidates returns every qualifying milestone in priority order, highest
// first. De-duplication happens in Detect.
func (d *Detector) candidates(debts []model.Debt, payments []model.Payment, stats model.CelebrationStats) []model.MilestoneEvent {
	var events []model.MilestoneEvent

	if stats.TotalOriginal > 0 && stats.PercentPaid >= 100 {
		events = append(events, model.MilestoneEvent{
			Type:       model.MilestoneDebtFree,
			Key:        "debt_free",
			Headline:   "Debt free!",
			Subtext:    "Every last balance is at zero. The whole herd made it.",
			IsFullHerd: true,
		})
	}

	for _, debt := range debts {
		if debt.Balance <= 0 {
			events = append(events, model.MilestoneEvent{
				Type:       model.MilestoneDebtPaidOff,
				Key:        "debt_paid_off_" + debt.ID,
				Headline:   fmt.Sprintf("%s is paid off!", debt.Name),
				Subtext:    fmt.Sprintf("$%.2f gone for good.", debt.OriginalBalance),
				IsFullHerd: true,
			})
		}
	}

	progressTiers := []struct {
		typ       model.MilestoneType
		threshold float64
	}{
		{model.MilestoneProgress75, 75},
		{model.MilestoneProgress50, 50},
		{model.MilestoneProgress25, 25},
	}
	for _, tier := range progressTiers {
		if stats.TotalOriginal > 0 && stats.PercentPaid >= tier.threshold {
			events = append(events, model.MilestoneEvent{
				Type:     tier.typ,
				Key:      string(tier.typ),
				Headline: fmt.Sprintf("%.0f%% of your debt is gone", tier.threshold),
				Subtext:  fmt.Sprintf("$%.2f paid down so far.", stats.PrincipalPaid),
			})
		}
	}

	interestTiers := []struct {
		typ       model.MilestoneType
		threshold float64
	}{
		{model.MilestoneInterest5000, 5000},
		{model.MilestoneInterest1000, 1000},
		{model.MilestoneInterest500, 500},
	}
	for _, tier := range interestTiers {
		if stats.InterestPaid >= tier.threshold {
			events = append(events, model.MilestoneEvent{
				Type:     tier.typ,
				Key:      string(tier.typ),
				Headline: fmt.Sprintf("$%.0f in interest crossed", tier.threshold),
				Subtext:  "Every extra payment shrinks this number faster.",
			})
		}
	}

	streakTiers := []struct {
		typ    model.MilestoneType
		months int
	}{
		{model.MilestoneStreak6, 6},
		{model.MilestoneStreak3, 3},
	}
	for _, tier := range streakTiers {
		if stats.Streak.CurrentStreak >= tier.months {
			events = append(events, model.MilestoneEvent{
				Type:     tier.typ,
				Key:      string(tier.typ),
				Headline: fmt.Sprintf("%d months paid in a row", tier.months),
				Subtext:  "Consistency beats intensity.",
			})
		}
	}

	if stats.Streak.TotalPayments == 1 {
		events = append(events, model.MilestoneEvent{
			Type:     model.MilestoneFirstPayment,
			Key:      "first_payment",
			Headline: "First payment logged",
			Subtext:  "The hardest step is the first one.",
		})
	}

	return events
}
