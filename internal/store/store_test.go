package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleDebt(id, name string) model.Debt {
	return model.Debt{
		ID:              id,
		Name:            name,
		Category:        "credit_card",
		Balance:         1500.50,
		OriginalBalance: 2000,
		APR:             19.99,
		MinimumPayment:  45,
		DueDay:          15,
		CreatedAt:       time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestDebtRoundTrip(t *testing.T) {
	s := openTestStore(t)
	want := sampleDebt("d1", "Visa")

	if err := s.SaveDebt(want); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}

	debts, err := s.ListDebts()
	if err != nil {
		t.Fatalf("ListDebts: %v", err)
	}
	if len(debts) != 1 {
		t.Fatalf("debts = %d, want 1", len(debts))
	}
	got := debts[0]
	if got.ID != want.ID || got.Name != want.Name || got.Balance != want.Balance ||
		got.APR != want.APR || got.DueDay != want.DueDay || !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestFindDebt(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveDebt(sampleDebt("aaa-111", "Visa")); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}
	if err := s.SaveDebt(sampleDebt("bbb-222", "Car Loan")); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}

	if d, err := s.FindDebt("visa"); err != nil || d.ID != "aaa-111" {
		t.Fatalf("FindDebt by name = %+v, %v", d, err)
	}
	if d, err := s.FindDebt("bbb"); err != nil || d.ID != "bbb-222" {
		t.Fatalf("FindDebt by prefix = %+v, %v", d, err)
	}
	if _, err := s.FindDebt("nope"); err == nil {
		t.Fatal("FindDebt on unknown ref must fail")
	}
}

func TestDeleteDebtCascadesPayments(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveDebt(sampleDebt("d1", "Visa")); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}
	p := model.Payment{
		ID: "p1", DebtID: "d1", Amount: 100, Principal: 80, Interest: 20,
		IsCompleted: true, CompletedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.SavePayment(p); err != nil {
		t.Fatalf("SavePayment: %v", err)
	}

	if err := s.DeleteDebt("d1"); err != nil {
		t.Fatalf("DeleteDebt: %v", err)
	}
	payments, err := s.ListPayments()
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments) != 0 {
		t.Fatalf("payments = %d after cascade delete, want 0", len(payments))
	}
}

func TestListPaymentsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveDebt(sampleDebt("d1", "Visa")); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}

	// Saved oldest first; listing must come back newest first so callers
	// can truncate from the front for "most recent N".
	for i, at := range []time.Time{
		time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC),
	} {
		p := model.Payment{
			ID: string(rune('a' + i)), DebtID: "d1", Amount: 100,
			Principal: 90, Interest: 10, IsCompleted: true, CompletedAt: at,
		}
		if err := s.SavePayment(p); err != nil {
			t.Fatalf("SavePayment: %v", err)
		}
	}

	payments, err := s.ListPayments()
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("payments = %d, want 3", len(payments))
	}
	for i := 1; i < len(payments); i++ {
		if payments[i].CompletedAt.After(payments[i-1].CompletedAt) {
			t.Fatalf("payments out of order at %d: %v after %v", i, payments[i].CompletedAt, payments[i-1].CompletedAt)
		}
	}
	if payments[0].ID != "c" {
		t.Fatalf("first payment = %q, want the newest (c)", payments[0].ID)
	}
}

func TestStrategyRoundTrip(t *testing.T) {
	s := openTestStore(t)

	// Defaults before anything is saved.
	settings, err := s.LoadStrategy()
	if err != nil {
		t.Fatalf("LoadStrategy: %v", err)
	}
	if settings.Strategy != model.StrategyAvalanche || settings.MonthlyFunding != 0 {
		t.Fatalf("default settings = %+v", settings)
	}

	want := model.StrategySettings{Strategy: model.StrategySnowball, MonthlyFunding: 750.25}
	if err := s.SaveStrategy(want); err != nil {
		t.Fatalf("SaveStrategy: %v", err)
	}
	if err := s.SaveOneTimeFunding(model.OneTimeFunding{ID: "f1", Amount: 500, Month: "2026-06"}); err != nil {
		t.Fatalf("SaveOneTimeFunding: %v", err)
	}

	settings, err = s.LoadStrategy()
	if err != nil {
		t.Fatalf("LoadStrategy: %v", err)
	}
	if settings.Strategy != want.Strategy || settings.MonthlyFunding != want.MonthlyFunding {
		t.Fatalf("settings = %+v, want %+v", settings, want)
	}
	if len(settings.OneTimeFunding) != 1 || settings.OneTimeFunding[0].Month != "2026-06" {
		t.Fatalf("one-time funding = %+v", settings.OneTimeFunding)
	}
}

func TestCelebratedHasMark(t *testing.T) {
	s := openTestStore(t)

	has, err := s.Has("progress_25")
	if err != nil {
		t.Fatalf("Has: %v", err)
	}
	if has {
		t.Fatal("fresh store reports key as celebrated")
	}

	if err := s.Mark("progress_25"); err != nil {
		t.Fatalf("Mark: %v", err)
	}
	has, err = s.Has("progress_25")
	if err != nil {
		t.Fatalf("Has after Mark: %v", err)
	}
	if !has {
		t.Fatal("marked key not reported as celebrated")
	}

	// Marking twice is fine.
	if err := s.Mark("progress_25"); err != nil {
		t.Fatalf("Mark twice: %v", err)
	}
}

func TestSnapshotExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	if err := src.SaveDebt(sampleDebt("d1", "Visa")); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}
	if err := src.SavePayment(model.Payment{
		ID: "p1", DebtID: "d1", Amount: 100, Principal: 80, Interest: 20,
		IsCompleted: true, CompletedAt: time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("SavePayment: %v", err)
	}
	if err := src.SaveIncome(model.IncomeSource{ID: "i1", Name: "Salary", Amount: 3000, Cadence: model.CadenceMonthly}); err != nil {
		t.Fatalf("SaveIncome: %v", err)
	}
	if err := src.SaveStrategy(model.StrategySettings{Strategy: model.StrategySnowball, MonthlyFunding: 500}); err != nil {
		t.Fatalf("SaveStrategy: %v", err)
	}
	if err := src.Mark("first_payment"); err != nil {
		t.Fatalf("Mark: %v", err)
	}

	path := filepath.Join(t.TempDir(), "export.json")
	if err := src.Export(path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := openTestStore(t)
	// Pre-existing data must be replaced, not merged.
	if err := dst.SaveDebt(sampleDebt("stale", "Old")); err != nil {
		t.Fatalf("SaveDebt: %v", err)
	}
	if err := dst.Import(path); err != nil {
		t.Fatalf("Import: %v", err)
	}

	debts, err := dst.ListDebts()
	if err != nil {
		t.Fatalf("ListDebts: %v", err)
	}
	if len(debts) != 1 || debts[0].ID != "d1" {
		t.Fatalf("imported debts = %+v, want only d1", debts)
	}
	payments, err := dst.ListPayments()
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(payments) != 1 || payments[0].Interest != 20 {
		t.Fatalf("imported payments = %+v", payments)
	}
	settings, err := dst.LoadStrategy()
	if err != nil {
		t.Fatalf("LoadStrategy: %v", err)
	}
	if settings.Strategy != model.StrategySnowball || settings.MonthlyFunding != 500 {
		t.Fatalf("imported settings = %+v", settings)
	}
	has, err := dst.Has("first_payment")
	if err != nil || !has {
		t.Fatalf("imported celebrated key missing (has=%v, err=%v)", has, err)
	}
}
