package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS debts (
    id                TEXT PRIMARY KEY,
    name              TEXT NOT NULL,
    category          TEXT,
    balance           REAL NOT NULL,
    original_balance  REAL NOT NULL,
    apr               REAL NOT NULL,
    minimum_payment   REAL NOT NULL,
    due_day           INTEGER,
    created_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    id            TEXT PRIMARY KEY,
    debt_id       TEXT NOT NULL REFERENCES debts(id) ON DELETE CASCADE,
    amount        REAL NOT NULL,
    principal     REAL NOT NULL,
    interest      REAL NOT NULL,
    is_completed  INTEGER NOT NULL DEFAULT 0,
    completed_at  TEXT
);

CREATE TABLE IF NOT EXISTS income_sources (
    id       TEXT PRIMARY KEY,
    name     TEXT NOT NULL,
    amount   REAL NOT NULL,
    cadence  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS subscriptions (
    id        TEXT PRIMARY KEY,
    name      TEXT NOT NULL,
    amount    REAL NOT NULL,
    cadence   TEXT NOT NULL,
    next_due  TEXT
);

CREATE TABLE IF NOT EXISTS assets (
    id     TEXT PRIMARY KEY,
    name   TEXT NOT NULL,
    value  REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS one_time_funding (
    id      TEXT PRIMARY KEY,
    amount  REAL NOT NULL,
    month   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS celebrated (
    key         TEXT PRIMARY KEY,
    marked_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payments_debt ON payments(debt_id);
CREATE INDEX IF NOT EXISTS idx_payments_completed ON payments(completed_at);
`
