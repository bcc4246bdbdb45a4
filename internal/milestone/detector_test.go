package milestone

import (
	"testing"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

// memStore is an in-memory celebrated-key set for tests.
type memStore struct {
	keys map[string]bool
}

func newMemStore(keys ...string) *memStore {
	m := &memStore{keys: make(map[string]bool)}
	for _, k := range keys {
		m.keys[k] = true
	}
	return m
}

func (m *memStore) Has(key string) (bool, error) { return m.keys[key], nil }
func (m *memStore) Mark(key string) error        { m.keys[key] = true; return nil }

func fixedDetector(store Store) *Detector {
	d := New(store)
	d.now = func() time.Time {
		return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return d
}

func testDebts() []model.Debt {
	return []model.Debt{
		{ID: "card", Name: "Card", Balance: 500, OriginalBalance: 1000, APR: 20, MinimumPayment: 25},
		{ID: "loan", Name: "Loan", Balance: 3000, OriginalBalance: 3000, APR: 8, MinimumPayment: 90},
	}
}

func defaultSettings() model.StrategySettings {
	return model.StrategySettings{Strategy: model.StrategyAvalanche, MonthlyFunding: 400}
}

func paymentAt(principal, interest float64, at time.Time) model.Payment {
	return model.Payment{
		ID:          at.Format(time.RFC3339),
		DebtID:      "card",
		Amount:      principal + interest,
		Principal:   principal,
		Interest:    interest,
		IsCompleted: true,
		CompletedAt: at,
	}
}

func TestDetectFirstPayment(t *testing.T) {
	store := newMemStore()
	d := fixedDetector(store)
	payments := []model.Payment{paymentAt(90, 10, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))}

	ev, stats, err := d.Detect(testDebts(), payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ev == nil || ev.Type != model.MilestoneFirstPayment {
		t.Fatalf("event = %+v, want first_payment", ev)
	}
	if stats.Streak.TotalPayments != 1 {
		t.Fatalf("TotalPayments = %d, want 1", stats.Streak.TotalPayments)
	}
	if !store.keys["first_payment"] {
		t.Fatal("first_payment was not marked celebrated")
	}
}

func TestDetectDeduplicates(t *testing.T) {
	// progress_25 already celebrated: re-running with the threshold still
	// held must not re-emit it.
	store := newMemStore("progress_25", "first_payment")
	d := fixedDetector(store)

	debts := []model.Debt{{ID: "card", Name: "Card", Balance: 700, OriginalBalance: 1000, APR: 20, MinimumPayment: 25}}
	payments := []model.Payment{paymentAt(300, 20, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))}

	ev, stats, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if stats.PercentPaid < 25 {
		t.Fatalf("PercentPaid = %.1f, expected >= 25 in this fixture", stats.PercentPaid)
	}
	if ev != nil {
		t.Fatalf("event = %+v, want nil (already celebrated)", ev)
	}
}

func TestDetectPrioritySelection(t *testing.T) {
	// progress_50 and streak_3 qualify in the same pass: exactly one event
	// fires and it must be the higher-priority progress_50.
	store := newMemStore("first_payment", "progress_25")
	d := fixedDetector(store)

	debts := []model.Debt{{ID: "card", Name: "Card", Balance: 450, OriginalBalance: 1000, APR: 20, MinimumPayment: 25}}
	payments := []model.Payment{
		paymentAt(200, 10, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)),
		paymentAt(200, 10, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)),
		paymentAt(150, 10, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	ev, stats, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if stats.Streak.CurrentStreak < 3 {
		t.Fatalf("CurrentStreak = %d, expected >= 3 in this fixture", stats.Streak.CurrentStreak)
	}
	if ev == nil || ev.Type != model.MilestoneProgress50 {
		t.Fatalf("event = %+v, want progress_50 over streak_3", ev)
	}

	// streak_3 lost the priority race, so it is consumed and never fires.
	ev2, _, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect second pass: %v", err)
	}
	if ev2 != nil {
		t.Fatalf("second pass event = %+v, want nil", ev2)
	}
}

func TestDetectSkippedThresholdsStaySkipped(t *testing.T) {
	// A jump straight past 25 and 50 fires only progress_75; the lower
	// tiers are not queued and will not fire later.
	store := newMemStore("first_payment")
	d := fixedDetector(store)

	debts := []model.Debt{{ID: "card", Name: "Card", Balance: 200, OriginalBalance: 1000, APR: 20, MinimumPayment: 25}}
	payments := []model.Payment{paymentAt(800, 40, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))}

	ev, _, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ev == nil || ev.Type != model.MilestoneProgress75 {
		t.Fatalf("event = %+v, want progress_75", ev)
	}
	if !store.keys["progress_25"] || !store.keys["progress_50"] {
		t.Fatal("skipped lower tiers must still be consumed")
	}

	// Second pass: nothing left to fire; the skipped tiers do not surface.
	ev2, _, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect second pass: %v", err)
	}
	if ev2 != nil {
		t.Fatalf("second pass event = %+v, want nil", ev2)
	}
}

func TestDetectDebtPaidOffPerDebtKey(t *testing.T) {
	store := newMemStore("first_payment", "progress_25", "progress_50")
	d := fixedDetector(store)

	debts := []model.Debt{
		{ID: "card", Name: "Card", Balance: 0, OriginalBalance: 1000, APR: 20, MinimumPayment: 25},
		{ID: "loan", Name: "Loan", Balance: 2000, OriginalBalance: 3000, APR: 8, MinimumPayment: 90},
	}
	payments := []model.Payment{
		paymentAt(1000, 60, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)),
		paymentAt(1000, 40, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)),
	}

	ev, _, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ev == nil || ev.Type != model.MilestoneDebtPaidOff {
		t.Fatalf("event = %+v, want debt_paid_off", ev)
	}
	if ev.Key != "debt_paid_off_card" {
		t.Fatalf("key = %q, want debt_paid_off_card", ev.Key)
	}
	if !ev.IsFullHerd {
		t.Fatal("debt payoff must be a full-herd celebration")
	}
}

func TestDetectDebtFreeOutranksEverything(t *testing.T) {
	store := newMemStore()
	d := fixedDetector(store)

	debts := []model.Debt{{ID: "card", Name: "Card", Balance: 0, OriginalBalance: 1000, APR: 20, MinimumPayment: 25}}
	payments := []model.Payment{paymentAt(1000, 600, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))}

	ev, stats, err := d.Detect(debts, payments, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ev == nil || ev.Type != model.MilestoneDebtFree {
		t.Fatalf("event = %+v, want debt_free", ev)
	}
	if stats.DebtsRemaining != 0 {
		t.Fatalf("DebtsRemaining = %d, want 0", stats.DebtsRemaining)
	}
}

func TestDetectNothingNewReturnsNil(t *testing.T) {
	store := newMemStore()
	d := fixedDetector(store)

	ev, stats, err := d.Detect(testDebts(), nil, defaultSettings())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if ev != nil {
		t.Fatalf("event = %+v, want nil with no payments", ev)
	}
	if stats.DebtFreeDate == "" {
		t.Fatal("DebtFreeDate must never be empty")
	}
}

func TestStatsDebtFreeDateUnknownWhenTruncated(t *testing.T) {
	d := fixedDetector(newMemStore())

	// Funding below minimum interest: the plan truncates at the cap and the
	// snapshot must degrade to "Unknown" instead of a bogus date.
	debts := []model.Debt{{ID: "card", Name: "Card", Balance: 10000, OriginalBalance: 10000, APR: 30, MinimumPayment: 10}}
	stats := d.Stats(debts, nil, model.StrategySettings{Strategy: model.StrategyAvalanche, MonthlyFunding: 10})

	if stats.DebtFreeDate != "Unknown" {
		t.Fatalf("DebtFreeDate = %q, want Unknown", stats.DebtFreeDate)
	}
}
