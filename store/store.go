// Package store defines the durable storage contract for the invoice ledger.
package store

import (
	"context"

	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
)

// Metadata identifies a deployed ledger instance for upgrade and
// compatibility tracking by the host.
type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Store is the unified storage interface for the ledger's three durable
// regions: the scalar sequence counter, the identifier-keyed invoice table,
// and the issuer-keyed user index. Each region is independently addressable.
//
// The host environment serializes ledger operations, so implementations are
// not required to make multi-call operations transactional across regions.
// NextInvoiceID alone must be atomic within the backend: no two calls may
// ever observe the same value, even from concurrent hosts.
type Store interface {
	// Sequence counter
	NextInvoiceID(ctx context.Context) (uint64, error)

	// Invoice table
	SaveInvoice(ctx context.Context, inv *invoice.Invoice) error
	GetInvoice(ctx context.Context, invoiceID uint64) (*invoice.Invoice, error)
	MarkInvoicePaid(ctx context.Context, invoiceID uint64) error

	// User index
	AppendUserInvoice(ctx context.Context, issuer addr.Address, invoiceID uint64) error
	UserInvoices(ctx context.Context, user addr.Address) ([]uint64, error)

	// Ledger metadata
	SetMetadata(ctx context.Context, md Metadata) error
	GetMetadata(ctx context.Context) (Metadata, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
