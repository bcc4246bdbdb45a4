// Package store provides the SQLite-backed local database for debtdown.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/KingGhost27/debtdown/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the local SQLite database holding all user data.
type Store struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "debtdown")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "debtdown")
}

// DefaultPath returns the full path to the database file.
func DefaultPath() string {
	return filepath.Join(DataDir(), "debtdown.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDebt inserts or replaces a debt.
func (s *Store) SaveDebt(d model.Debt) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO debts
		(id, name, category, balance, original_balance, apr, minimum_payment, due_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Category, d.Balance, d.OriginalBalance, d.APR, d.MinimumPayment, d.DueDay,
		d.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListDebts returns all debts ordered by creation time.
func (s *Store) ListDebts() ([]model.Debt, error) {
	rows, err := s.db.Query(`SELECT id, name, category, balance, original_balance, apr, minimum_payment, due_day, created_at
		FROM debts ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		var category sql.NullString
		var createdStr string
		if err := rows.Scan(&d.ID, &d.Name, &category, &d.Balance, &d.OriginalBalance, &d.APR, &d.MinimumPayment, &d.DueDay, &createdStr); err != nil {
			return nil, err
		}
		if category.Valid {
			d.Category = category.String
		}
		d.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// FindDebt resolves a debt by exact ID, then by case-insensitive name, then
// by unique ID prefix.
func (s *Store) FindDebt(ref string) (model.Debt, error) {
	debts, err := s.ListDebts()
	if err != nil {
		return model.Debt{}, err
	}
	for _, d := range debts {
		if d.ID == ref {
			return d, nil
		}
	}
	for _, d := range debts {
		if strings.EqualFold(d.Name, ref) {
			return d, nil
		}
	}
	var match *model.Debt
	for i := range debts {
		if strings.HasPrefix(debts[i].ID, ref) {
			if match != nil {
				return model.Debt{}, fmt.Errorf("debt reference %q is ambiguous", ref)
			}
			match = &debts[i]
		}
	}
	if match == nil {
		return model.Debt{}, fmt.Errorf("no debt matching %q", ref)
	}
	return *match, nil
}

// DeleteDebt removes a debt and, via cascade, its payments.
func (s *Store) DeleteDebt(id string) error {
	_, err := s.db.Exec("DELETE FROM debts WHERE id = ?", id)
	return err
}

// SavePayment inserts or replaces a payment.
func (s *Store) SavePayment(p model.Payment) error {
	completedAt := ""
	if !p.CompletedAt.IsZero() {
		completedAt = p.CompletedAt.UTC().Format(time.RFC3339)
	}
	isCompleted := 0
	if p.IsCompleted {
		isCompleted = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO payments
		(id, debt_id, amount, principal, interest, is_completed, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.DebtID, p.Amount, p.Principal, p.Interest, isCompleted, completedAt,
	)
	return err
}

// ListPayments returns all payments, most recent completion first.
func (s *Store) ListPayments() ([]model.Payment, error) {
	rows, err := s.db.Query(`SELECT id, debt_id, amount, principal, interest, is_completed, completed_at
		FROM payments ORDER BY completed_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		var isCompleted int
		var completedStr sql.NullString
		if err := rows.Scan(&p.ID, &p.DebtID, &p.Amount, &p.Principal, &p.Interest, &isCompleted, &completedStr); err != nil {
			return nil, err
		}
		p.IsCompleted = isCompleted != 0
		if completedStr.Valid && completedStr.String != "" {
			p.CompletedAt, _ = time.Parse(time.RFC3339, completedStr.String)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// SaveIncome inserts or replaces an income source.
func (s *Store) SaveIncome(in model.IncomeSource) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO income_sources (id, name, amount, cadence)
		VALUES (?, ?, ?, ?)`, in.ID, in.Name, in.Amount, string(in.Cadence))
	return err
}

// ListIncome returns all income sources.
func (s *Store) ListIncome() ([]model.IncomeSource, error) {
	rows, err := s.db.Query("SELECT id, name, amount, cadence FROM income_sources ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var income []model.IncomeSource
	for rows.Next() {
		var in model.IncomeSource
		var cadence string
		if err := rows.Scan(&in.ID, &in.Name, &in.Amount, &cadence); err != nil {
			return nil, err
		}
		in.Cadence = model.Cadence(cadence)
		income = append(income, in)
	}
	return income, rows.Err()
}

// DeleteIncome removes an income source.
func (s *Store) DeleteIncome(id string) error {
	_, err := s.db.Exec("DELETE FROM income_sources WHERE id = ?", id)
	return err
}

// SaveSubscription inserts or replaces a subscription.
func (s *Store) SaveSubscription(sub model.Subscription) error {
	nextDue := ""
	if !sub.NextDue.IsZero() {
		nextDue = sub.NextDue.UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO subscriptions (id, name, amount, cadence, next_due)
		VALUES (?, ?, ?, ?, ?)`, sub.ID, sub.Name, sub.Amount, string(sub.Cadence), nextDue)
	return err
}

// ListSubscriptions returns all subscriptions.
func (s *Store) ListSubscriptions() ([]model.Subscription, error) {
	rows, err := s.db.Query("SELECT id, name, amount, cadence, next_due FROM subscriptions ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		var cadence string
		var nextDue sql.NullString
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Amount, &cadence, &nextDue); err != nil {
			return nil, err
		}
		sub.Cadence = model.Cadence(cadence)
		if nextDue.Valid && nextDue.String != "" {
			sub.NextDue, _ = time.Parse(time.RFC3339, nextDue.String)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// DeleteSubscription removes a subscription.
func (s *Store) DeleteSubscription(id string) error {
	_, err := s.db.Exec("DELETE FROM subscriptions WHERE id = ?", id)
	return err
}

// SaveAsset inserts or replaces an asset.
func (s *Store) SaveAsset(a model.Asset) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO assets (id, name, value) VALUES (?, ?, ?)`,
		a.ID, a.Name, a.Value)
	return err
}

// ListAssets returns all assets.
func (s *Store) ListAssets() ([]model.Asset, error) {
	rows, err := s.db.Query("SELECT id, name, value FROM assets ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var assets []model.Asset
	for rows.Next() {
		var a model.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.Value); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// DeleteAsset removes an asset.
func (s *Store) DeleteAsset(id string) error {
	_, err := s.db.Exec("DELETE FROM assets WHERE id = ?", id)
	return err
}

// SaveOneTimeFunding inserts or replaces a one-time funding entry.
func (s *Store) SaveOneTimeFunding(f model.OneTimeFunding) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO one_time_funding (id, amount, month)
		VALUES (?, ?, ?)`, f.ID, f.Amount, f.Month)
	return err
}

// DeleteOneTimeFunding removes a one-time funding entry.
func (s *Store) DeleteOneTimeFunding(id string) error {
	_, err := s.db.Exec("DELETE FROM one_time_funding WHERE id = ?", id)
	return err
}

// LoadStrategy reads the persisted strategy settings, including one-time
// funding entries. Missing values fall back to avalanche with zero funding.
func (s *Store) LoadStrategy() (model.StrategySettings, error) {
	settings := model.StrategySettings{Strategy: model.StrategyAvalanche}

	if v, ok, err := s.getSetting("strategy"); err != nil {
		return settings, err
	} else if ok {
		settings.Strategy = model.Strategy(v)
	}
	if v, ok, err := s.getSetting("monthly_funding"); err != nil {
		return settings, err
	} else if ok {
		settings.MonthlyFunding, _ = strconv.ParseFloat(v, 64)
	}

	rows, err := s.db.Query("SELECT id, amount, month FROM one_time_funding ORDER BY month")
	if err != nil {
		return settings, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var f model.OneTimeFunding
		if err := rows.Scan(&f.ID, &f.Amount, &f.Month); err != nil {
			return settings, err
		}
		settings.OneTimeFunding = append(settings.OneTimeFunding, f)
	}
	return settings, rows.Err()
}

// SaveStrategy persists the strategy tag and monthly funding. One-time
// funding entries are managed through their own Save/Delete calls.
func (s *Store) SaveStrategy(settings model.StrategySettings) error {
	if err := s.setSetting("strategy", string(settings.Strategy)); err != nil {
		return err
	}
	return s.setSetting("monthly_funding", strconv.FormatFloat(settings.MonthlyFunding, 'f', -1, 64))
}

func (s *Store) getSetting(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) setSetting(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, value)
	return err
}

// Has reports whether a milestone key has already been celebrated. Together
// with Mark it satisfies the milestone detector's store contract.
func (s *Store) Has(key string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM celebrated WHERE key = ?", key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Mark records a milestone key as celebrated.
func (s *Store) Mark(key string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO celebrated (key, marked_at) VALUES (?, ?)",
		key, time.Now().UTC().Format(time.RFC3339))
	return err
}
