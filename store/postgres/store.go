// Package postgres provides a Store backed by PostgreSQL via GORM.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	ledger "github.com/xraph/invoiceledger"
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

// Store implements store.Store on a PostgreSQL database.
type Store struct {
	db *gorm.DB
}

// New wraps an existing GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to PostgreSQL with the given DSN and returns a store bound
// to the connection.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("invoiceledger/postgres: open: %w", err)
	}
	return New(db), nil
}

// DB returns the underlying GORM handle for direct access.
func (s *Store) DB() *gorm.DB { return s.db }

// Migrate creates the tables and seeds the sequence counter. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&invoiceRow{}, &seqRow{}, &userInvoiceRow{}, &metaRow{}); err != nil {
		return fmt.Errorf("invoiceledger/postgres: migrate: %w", err)
	}
	seed := seqRow{ID: 1, Next: 1}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return fmt.Errorf("invoiceledger/postgres: seed sequence: %w", err)
	}
	return nil
}

// NextInvoiceID advances the counter row under a row lock and returns the
// pre-increment value.
func (s *Store) NextInvoiceID(ctx context.Context) (uint64, error) {
	var current int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row seqRow
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "id = ?", 1).Error; err != nil {
			return err
		}
		current = row.Next
		return tx.Model(&seqRow{}).Where("id = ?", 1).
			Update("next", row.Next+1).Error
	})
	if err != nil {
		return 0, fmt.Errorf("invoiceledger/postgres: next invoice id: %w", err)
	}
	return uint64(current), nil
}

// SaveInvoice stores a new invoice record.
func (s *Store) SaveInvoice(ctx context.Context, inv *invoice.Invoice) error {
	err := s.db.WithContext(ctx).Create(toInvoiceRow(inv)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ledger.ErrAlreadyExists
		}
		return fmt.Errorf("invoiceledger/postgres: save invoice %d: %w", inv.ID, err)
	}
	return nil
}

// GetInvoice returns the invoice with the given identifier.
func (s *Store) GetInvoice(ctx context.Context, invoiceID uint64) (*invoice.Invoice, error) {
	var row invoiceRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", int64(invoiceID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceledger/postgres: get invoice %d: %w", invoiceID, err)
	}
	return fromInvoiceRow(&row)
}

// MarkInvoicePaid flips the is_paid flag.
func (s *Store) MarkInvoicePaid(ctx context.Context, invoiceID uint64) error {
	res := s.db.WithContext(ctx).Model(&invoiceRow{}).
		Where("id = ?", int64(invoiceID)).
		Update("is_paid", true)
	if res.Error != nil {
		return fmt.Errorf("invoiceledger/postgres: mark paid %d: %w", invoiceID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// AppendUserInvoice appends an identifier to the issuer's index entry. The
// position subquery keeps creation order without a separate counter.
func (s *Store) AppendUserInvoice(ctx context.Context, issuer addr.Address, invoiceID uint64) error {
	err := s.db.WithContext(ctx).Exec(
		`INSERT INTO user_invoices (issuer, position, invoice_id)
		 SELECT ?, COALESCE(MAX(position) + 1, 0), ?
		 FROM user_invoices WHERE issuer = ?`,
		issuer.String(), int64(invoiceID), issuer.String(),
	).Error
	if err != nil {
		return fmt.Errorf("invoiceledger/postgres: index invoice %d: %w", invoiceID, err)
	}
	return nil
}

// UserInvoices returns the ordered identifiers the user issued.
func (s *Store) UserInvoices(ctx context.Context, user addr.Address) ([]uint64, error) {
	var rows []userInvoiceRow
	err := s.db.WithContext(ctx).
		Where("issuer = ?", user.String()).
		Order("position").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("invoiceledger/postgres: user invoices: %w", err)
	}

	ids := make([]uint64, len(rows))
	for i, r := range rows {
		ids[i] = uint64(r.InvoiceID)
	}
	return ids, nil
}

// SetMetadata persists the ledger instance metadata.
func (s *Store) SetMetadata(ctx context.Context, md store.Metadata) error {
	rows := []metaRow{
		{K: "name", V: md.Name},
		{K: "version", V: md.Version},
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("invoiceledger/postgres: set metadata: %w", err)
	}
	return nil
}

// GetMetadata returns the ledger instance metadata.
func (s *Store) GetMetadata(ctx context.Context) (store.Metadata, error) {
	var rows []metaRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return store.Metadata{}, fmt.Errorf("invoiceledger/postgres: get metadata: %w", err)
	}
	if len(rows) == 0 {
		return store.Metadata{}, ledger.ErrNotFound
	}

	var md store.Metadata
	for _, r := range rows {
		switch r.K {
		case "name":
			md.Name = r.V
		case "version":
			md.Version = r.V
		}
	}
	return md, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.db.WithContext(ctx).DB()
	if err != nil {
		return fmt.Errorf("invoiceledger/postgres: ping: %w", err)
	}
	return db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("invoiceledger/postgres: close: %w", err)
	}
	return db.Close()
}
