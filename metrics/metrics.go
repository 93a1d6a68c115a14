// Package metrics provides a hook that records ledger lifecycle event
// counts through an injected metric factory.
//
// The Counter and MetricFactory interfaces are defined locally so the
// package works with any metrics backend — wire in your factory of choice
// at construction time.
package metrics

import (
	"context"

	"github.com/xraph/invoiceledger/hook"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

// Compile-time interface checks.
var (
	_ hook.Hook             = (*Hook)(nil)
	_ hook.OnLedgerInit     = (*Hook)(nil)
	_ hook.OnInvoiceCreated = (*Hook)(nil)
	_ hook.OnInvoicePaid    = (*Hook)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
}

// Hook records system-wide lifecycle metrics.
type Hook struct {
	ledgerInits     Counter
	invoicesCreated Counter
	invoicesPaid    Counter
}

// New creates a metrics hook backed by the given factory.
func New(factory MetricFactory) *Hook {
	return &Hook{
		ledgerInits:     factory.Counter("invoiceledger_inits_total"),
		invoicesCreated: factory.Counter("invoiceledger_invoices_created_total"),
		invoicesPaid:    factory.Counter("invoiceledger_invoices_paid_total"),
	}
}

// Name implements hook.Hook.
func (h *Hook) Name() string { return "metrics" }

// OnLedgerInit implements hook.OnLedgerInit.
func (h *Hook) OnLedgerInit(_ context.Context, _ store.Metadata) error {
	h.ledgerInits.Inc()
	return nil
}

// OnInvoiceCreated implements hook.OnInvoiceCreated.
func (h *Hook) OnInvoiceCreated(_ context.Context, _ *invoice.Invoice) error {
	h.invoicesCreated.Inc()
	return nil
}

// OnInvoicePaid implements hook.OnInvoicePaid.
func (h *Hook) OnInvoicePaid(_ context.Context, _ *invoice.Invoice, _ string) error {
	h.invoicesPaid.Inc()
	return nil
}
