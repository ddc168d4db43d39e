package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id            INTEGER PRIMARY KEY CHECK (id = 1),
    income        REAL NOT NULL DEFAULT 0,
    has_children  INTEGER NOT NULL DEFAULT 0,
    num_children  INTEGER NOT NULL DEFAULT 0,
    has_pets      INTEGER NOT NULL DEFAULT 0,
    num_pets      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS allocations (
    category      TEXT NOT NULL,
    subcategory   TEXT NOT NULL,
    amount        REAL NOT NULL,
    PRIMARY KEY (category, subcategory)
);

CREATE TABLE IF NOT EXISTS expenses (
    id            TEXT PRIMARY KEY,
    date          TEXT NOT NULL,
    category      TEXT NOT NULL,
    subcategory   TEXT NOT NULL,
    amount        REAL NOT NULL,
    description   TEXT,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    price         REAL NOT NULL,
    priority      TEXT NOT NULL,
    monthly_save  REAL NOT NULL,
    months_needed INTEGER NOT NULL,
    amount_saved  REAL NOT NULL,
    created_at    TEXT NOT NULL,
    target_date   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
