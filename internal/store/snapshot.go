package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

// SnapshotVersion identifies the export file format.
const SnapshotVersion = 1

// Snapshot is the full exportable state of the database.
type Snapshot struct {
	Version       int                    `json:"version"`
	ExportedAt    time.Time              `json:"exportedAt"`
	Debts         []model.Debt           `json:"debts"`
	Payments      []model.Payment        `json:"payments"`
	Income        []model.IncomeSource   `json:"income"`
	Subscriptions []model.Subscription   `json:"subscriptions"`
	Assets        []model.Asset          `json:"assets"`
	Strategy      model.StrategySettings `json:"strategy"`
	Celebrated    []string               `json:"celebrated"`
}

// Export writes the full database state to a JSON file.
func (s *Store) Export(path string) error {
	snap, err := s.snapshot()
	if err != nil {
		return fmt.Errorf("collecting snapshot: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Import replaces the entire database state with the contents of a JSON
// export file. All existing rows are dropped in the same transaction.
func (s *Store) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if snap.Version > SnapshotVersion {
		return fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, SnapshotVersion)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"payments", "debts", "income_sources", "subscriptions", "assets", "one_time_funding", "settings", "celebrated"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, d := range snap.Debts {
		_, err := tx.Exec(`INSERT INTO debts
			(id, name, category, balance, original_balance, apr, minimum_payment, due_day, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.Name, d.Category, d.Balance, d.OriginalBalance, d.APR, d.MinimumPayment, d.DueDay,
			d.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("importing debt %s: %w", d.ID, err)
		}
	}

	for _, p := range snap.Payments {
		completedAt := ""
		if !p.CompletedAt.IsZero() {
			completedAt = p.CompletedAt.UTC().Format(time.RFC3339)
		}
		isCompleted := 0
		if p.IsCompleted {
			isCompleted = 1
		}
		_, err := tx.Exec(`INSERT INTO payments
			(id, debt_id, amount, principal, interest, is_completed, completed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.DebtID, p.Amount, p.Principal, p.Interest, isCompleted, completedAt)
		if err != nil {
			return fmt.Errorf("importing payment %s: %w", p.ID, err)
		}
	}

	for _, in := range snap.Income {
		if _, err := tx.Exec(`INSERT INTO income_sources (id, name, amount, cadence) VALUES (?, ?, ?, ?)`,
			in.ID, in.Name, in.Amount, string(in.Cadence)); err != nil {
			return fmt.Errorf("importing income %s: %w", in.ID, err)
		}
	}

	for _, sub := range snap.Subscriptions {
		nextDue := ""
		if !sub.NextDue.IsZero() {
			nextDue = sub.NextDue.UTC().Format(time.RFC3339)
		}
		if _, err := tx.Exec(`INSERT INTO subscriptions (id, name, amount, cadence, next_due) VALUES (?, ?, ?, ?, ?)`,
			sub.ID, sub.Name, sub.Amount, string(sub.Cadence), nextDue); err != nil {
			return fmt.Errorf("importing subscription %s: %w", sub.ID, err)
		}
	}

	for _, a := range snap.Assets {
		if _, err := tx.Exec(`INSERT INTO assets (id, name, value) VALUES (?, ?, ?)`, a.ID, a.Name, a.Value); err != nil {
			return fmt.Errorf("importing asset %s: %w", a.ID, err)
		}
	}

	for _, f := range snap.Strategy.OneTimeFunding {
		if _, err := tx.Exec(`INSERT INTO one_time_funding (id, amount, month) VALUES (?, ?, ?)`,
			f.ID, f.Amount, f.Month); err != nil {
			return fmt.Errorf("importing one-time funding %s: %w", f.ID, err)
		}
	}

	if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES ('strategy', ?)", string(snap.Strategy.Strategy)); err != nil {
		return fmt.Errorf("importing strategy: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES ('monthly_funding', ?)",
		fmt.Sprintf("%g", snap.Strategy.MonthlyFunding)); err != nil {
		return fmt.Errorf("importing funding: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, key := range snap.Celebrated {
		if _, err := tx.Exec("INSERT INTO celebrated (key, marked_at) VALUES (?, ?)", key, now); err != nil {
			return fmt.Errorf("importing celebrated key %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *Store) snapshot() (Snapshot, error) {
	snap := Snapshot{Version: SnapshotVersion, ExportedAt: time.Now().UTC()}

	var err error
	if snap.Debts, err = s.ListDebts(); err != nil {
		return snap, err
	}
	if snap.Payments, err = s.ListPayments(); err != nil {
		return snap, err
	}
	if snap.Income, err = s.ListIncome(); err != nil {
		return snap, err
	}
	if snap.Subscriptions, err = s.ListSubscriptions(); err != nil {
		return snap, err
	}
	if snap.Assets, err = s.ListAssets(); err != nil {
		return snap, err
	}
	if snap.Strategy, err = s.LoadStrategy(); err != nil {
		return snap, err
	}

	rows, err := s.db.Query("SELECT key FROM celebrated ORDER BY key")
	if err != nil {
		return snap, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return snap, err
		}
		snap.Celebrated = append(snap.Celebrated, key)
	}
	return snap, rows.Err()
}
