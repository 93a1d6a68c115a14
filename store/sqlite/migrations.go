package sqlite

// Schema for the three durable regions plus instance metadata. The sequence
// counter is a single-row table seeded to 1; the user index keys each
// identifier by (issuer, position) so append order survives round trips.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ledger_meta (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_seq (
		id   INTEGER PRIMARY KEY CHECK (id = 1),
		next INTEGER NOT NULL
	)`,
	`INSERT OR IGNORE INTO invoice_seq (id, next) VALUES (1, 1)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id          INTEGER PRIMARY KEY,
		issuer      TEXT    NOT NULL,
		recipient   TEXT    NOT NULL,
		amount      TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		due_date    INTEGER NOT NULL,
		is_paid     INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS user_invoices (
		issuer     TEXT    NOT NULL,
		position   INTEGER NOT NULL,
		invoice_id INTEGER NOT NULL,
		PRIMARY KEY (issuer, position)
	)`,
}
