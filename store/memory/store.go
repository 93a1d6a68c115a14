// Package memory provides an in-memory Store for tests and single-process
// hosts. State does not survive a restart.
package memory

import (
	"context"
	"sync"

	ledger "github.com/xraph/invoiceledger"
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

// Store implements store.Store with mutex-guarded maps. Records are copied
// on the way in and out so callers can never mutate stored state directly.
type Store struct {
	mu sync.RWMutex

	seq    uint64
	closed bool

	// Invoice storage
	invoices map[uint64]invoice.Invoice

	// User index: issuer → ordered invoice identifiers
	userIndex map[string][]uint64

	// Ledger metadata
	meta    store.Metadata
	hasMeta bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		invoices:  make(map[uint64]invoice.Invoice),
		userIndex: make(map[string][]uint64),
	}
}

// Migrate seeds the sequence counter. Idempotent.
func (s *Store) Migrate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ledger.ErrStoreClosed
	}
	if s.seq == 0 {
		s.seq = 1
	}
	return nil
}

// NextInvoiceID returns the current counter value and advances it by one.
func (s *Store) NextInvoiceID(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ledger.ErrStoreClosed
	}

	next := s.seq
	s.seq++
	return next, nil
}

// SaveInvoice stores a new invoice record.
func (s *Store) SaveInvoice(_ context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ledger.ErrStoreClosed
	}
	if _, exists := s.invoices[inv.ID]; exists {
		return ledger.ErrAlreadyExists
	}

	s.invoices[inv.ID] = *inv
	return nil
}

// GetInvoice returns the invoice with the given identifier.
func (s *Store) GetInvoice(_ context.Context, invoiceID uint64) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ledger.ErrStoreClosed
	}

	inv, ok := s.invoices[invoiceID]
	if !ok {
		return nil, ledger.ErrNotFound
	}
	return &inv, nil
}

// MarkInvoicePaid flips the is_paid flag. The flag only ever moves
// false → true.
func (s *Store) MarkInvoicePaid(_ context.Context, invoiceID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ledger.ErrStoreClosed
	}

	inv, ok := s.invoices[invoiceID]
	if !ok {
		return ledger.ErrNotFound
	}

	inv.IsPaid = true
	s.invoices[invoiceID] = inv
	return nil
}

// AppendUserInvoice appends an identifier to the issuer's index entry,
// creating the entry if absent.
func (s *Store) AppendUserInvoice(_ context.Context, issuer addr.Address, invoiceID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ledger.ErrStoreClosed
	}

	key := issuer.String()
	s.userIndex[key] = append(s.userIndex[key], invoiceID)
	return nil
}

// UserInvoices returns the ordered identifiers the user issued. An absent
// entry reads as empty, not as an error.
func (s *Store) UserInvoices(_ context.Context, user addr.Address) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ledger.ErrStoreClosed
	}

	ids := s.userIndex[user.String()]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out, nil
}

// SetMetadata persists the ledger instance metadata.
func (s *Store) SetMetadata(_ context.Context, md store.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ledger.ErrStoreClosed
	}

	s.meta = md
	s.hasMeta = true
	return nil
}

// GetMetadata returns the ledger instance metadata.
func (s *Store) GetMetadata(_ context.Context) (store.Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return store.Metadata{}, ledger.ErrStoreClosed
	}
	if !s.hasMeta {
		return store.Metadata{}, ledger.ErrNotFound
	}
	return s.meta, nil
}

// Ping reports whether the store is usable.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ledger.ErrStoreClosed
	}
	return nil
}

// Close marks the store closed. Subsequent calls fail with ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
