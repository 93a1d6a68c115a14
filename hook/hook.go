// Package hook provides an extensible lifecycle hook system for the ledger.
// Hooks can observe ledger events to extend functionality — audit trails,
// metrics, notifications — without ever affecting the outcome of an
// operation: a failing hook is logged and skipped, never surfaced.
package hook

import (
	"context"

	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

// Hook is the base interface that all hooks must implement.
type Hook interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnLedgerInit is called once when the ledger is started, after the store
// is migrated and the instance metadata is persisted.
type OnLedgerInit interface {
	Hook
	OnLedgerInit(ctx context.Context, md store.Metadata) error
}

// OnShutdown is called when the ledger is shutting down.
type OnShutdown interface {
	Hook
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Invoice lifecycle hooks
// ──────────────────────────────────────────────────

// OnInvoiceCreated is called after a new invoice has been stored and indexed.
type OnInvoiceCreated interface {
	Hook
	OnInvoiceCreated(ctx context.Context, inv *invoice.Invoice) error
}

// OnInvoicePaid is called after an invoice has been marked paid and its
// value-transfer instruction issued. transferRef identifies the instruction.
type OnInvoicePaid interface {
	Hook
	OnInvoicePaid(ctx context.Context, inv *invoice.Invoice, transferRef string) error
}
