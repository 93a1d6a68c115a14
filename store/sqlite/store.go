// Package sqlite provides a Store backed by SQLite via database/sql and the
// cgo-free modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	ledger "github.com/xraph/invoiceledger"
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
	"github.com/xraph/invoiceledger/types"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

// Store implements store.Store on a SQLite database.
type Store struct {
	db *sql.DB
}

// New wraps an existing database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (or creates) a SQLite database at path and returns a store
// bound to it.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// The ledger is single-writer; one connection sidesteps SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return New(db), nil
}

// DB returns the underlying database handle for direct access.
func (s *Store) DB() *sql.DB { return s.db }

// Migrate creates the tables and seeds the sequence counter. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite: migrate: %w", err)
		}
	}
	return nil
}

// NextInvoiceID advances the counter row and returns the pre-increment
// value. The single UPDATE makes the read-increment atomic even if the host
// lets operations in concurrently.
func (s *Store) NextInvoiceID(ctx context.Context) (uint64, error) {
	var next int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE invoice_seq SET next = next + 1 WHERE id = 1 RETURNING next - 1`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("sqlite: next invoice id: %w", err)
	}
	return uint64(next), nil
}

// SaveInvoice stores a new invoice record.
func (s *Store) SaveInvoice(ctx context.Context, inv *invoice.Invoice) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invoices (id, issuer, recipient, amount, description, due_date, is_paid)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(inv.ID),
		inv.Issuer.String(),
		inv.Recipient.String(),
		inv.Amount.String(),
		inv.Description,
		int64(inv.DueDate),
		inv.IsPaid,
	)
	if err != nil {
		return fmt.Errorf("sqlite: save invoice %d: %w", inv.ID, err)
	}
	return nil
}

// GetInvoice returns the invoice with the given identifier.
func (s *Store) GetInvoice(ctx context.Context, invoiceID uint64) (*invoice.Invoice, error) {
	var (
		issuer, recipient, amount, description string
		dueDate                                int64
		isPaid                                 bool
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT issuer, recipient, amount, description, due_date, is_paid
		 FROM invoices WHERE id = ?`, int64(invoiceID),
	).Scan(&issuer, &recipient, &amount, &description, &dueDate, &isPaid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ledger.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get invoice %d: %w", invoiceID, err)
	}

	parsedAmount, err := types.ParseUint128(amount)
	if err != nil {
		return nil, fmt.Errorf("sqlite: invoice %d: corrupt amount: %w", invoiceID, err)
	}

	return &invoice.Invoice{
		ID:          invoiceID,
		Issuer:      addr.New(issuer),
		Recipient:   addr.New(recipient),
		Amount:      parsedAmount,
		Description: description,
		DueDate:     uint64(dueDate),
		IsPaid:      isPaid,
	}, nil
}

// MarkInvoicePaid flips the is_paid flag.
func (s *Store) MarkInvoicePaid(ctx context.Context, invoiceID uint64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE invoices SET is_paid = 1 WHERE id = ?`, int64(invoiceID))
	if err != nil {
		return fmt.Errorf("sqlite: mark paid %d: %w", invoiceID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: mark paid %d: %w", invoiceID, err)
	}
	if affected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// AppendUserInvoice appends an identifier to the issuer's index entry. The
// position subquery keeps creation order without a separate counter.
func (s *Store) AppendUserInvoice(ctx context.Context, issuer addr.Address, invoiceID uint64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_invoices (issuer, position, invoice_id)
		 SELECT ?, COALESCE(MAX(position) + 1, 0), ?
		 FROM user_invoices WHERE issuer = ?`,
		issuer.String(), int64(invoiceID), issuer.String(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: index invoice %d: %w", invoiceID, err)
	}
	return nil
}

// UserInvoices returns the ordered identifiers the user issued.
func (s *Store) UserInvoices(ctx context.Context, user addr.Address) ([]uint64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT invoice_id FROM user_invoices WHERE issuer = ? ORDER BY position`,
		user.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: user invoices: %w", err)
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var invoiceID int64
		if err := rows.Scan(&invoiceID); err != nil {
			return nil, fmt.Errorf("sqlite: user invoices: %w", err)
		}
		ids = append(ids, uint64(invoiceID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: user invoices: %w", err)
	}
	return ids, nil
}

// SetMetadata persists the ledger instance metadata.
func (s *Store) SetMetadata(ctx context.Context, md store.Metadata) error {
	for k, v := range map[string]string{"name": md.Name, "version": md.Version} {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO ledger_meta (k, v) VALUES (?, ?)
			 ON CONFLICT (k) DO UPDATE SET v = excluded.v`, k, v,
		); err != nil {
			return fmt.Errorf("sqlite: set metadata: %w", err)
		}
	}
	return nil
}

// GetMetadata returns the ledger instance metadata.
func (s *Store) GetMetadata(ctx context.Context) (store.Metadata, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT k, v FROM ledger_meta`)
	if err != nil {
		return store.Metadata{}, fmt.Errorf("sqlite: get metadata: %w", err)
	}
	defer rows.Close()

	var md store.Metadata
	found := false
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return store.Metadata{}, fmt.Errorf("sqlite: get metadata: %w", err)
		}
		found = true
		switch k {
		case "name":
			md.Name = v
		case "version":
			md.Version = v
		}
	}
	if err := rows.Err(); err != nil {
		return store.Metadata{}, fmt.Errorf("sqlite: get metadata: %w", err)
	}
	if !found {
		return store.Metadata{}, ledger.ErrNotFound
	}
	return md, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
