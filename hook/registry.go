package hook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

// Registry manages all registered hooks and provides efficient dispatch.
// It uses type-cached discovery so each emit only walks the hooks that
// actually implement the event interface.
type Registry struct {
	mu     sync.RWMutex
	hooks  []Hook
	logger *slog.Logger

	// Type-cached hook lists for efficient dispatch
	onLedgerInit     []OnLedgerInit
	onShutdown       []OnShutdown
	onInvoiceCreated []OnInvoiceCreated
	onInvoicePaid    []OnInvoicePaid
}

// NewRegistry creates a new hook registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the registry.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register adds a hook to the registry and caches its interfaces.
func (r *Registry) Register(h Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check for duplicate
	for _, existing := range r.hooks {
		if existing.Name() == h.Name() {
			return fmt.Errorf("hook: duplicate registration: %s", h.Name())
		}
	}

	r.hooks = append(r.hooks, h)

	// Type-switch to cache interfaces
	if v, ok := h.(OnLedgerInit); ok {
		r.onLedgerInit = append(r.onLedgerInit, v)
	}
	if v, ok := h.(OnShutdown); ok {
		r.onShutdown = append(r.onShutdown, v)
	}
	if v, ok := h.(OnInvoiceCreated); ok {
		r.onInvoiceCreated = append(r.onInvoiceCreated, v)
	}
	if v, ok := h.(OnInvoicePaid); ok {
		r.onInvoicePaid = append(r.onInvoicePaid, v)
	}

	return nil
}

// Hooks returns the names of all registered hooks.
func (r *Registry) Hooks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.hooks))
	for i, h := range r.hooks {
		names[i] = h.Name()
	}
	return names
}

// EmitLedgerInit dispatches the ledger-init event.
func (r *Registry) EmitLedgerInit(ctx context.Context, md store.Metadata) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onLedgerInit {
		if err := h.OnLedgerInit(ctx, md); err != nil {
			r.logger.Error("hook failed",
				"hook", h.Name(),
				"event", "ledger_init",
				"error", err,
			)
		}
	}
}

// EmitShutdown dispatches the shutdown event.
func (r *Registry) EmitShutdown(ctx context.Context) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onShutdown {
		if err := h.OnShutdown(ctx); err != nil {
			r.logger.Error("hook failed",
				"hook", h.Name(),
				"event", "shutdown",
				"error", err,
			)
		}
	}
}

// EmitInvoiceCreated dispatches the invoice-created event.
func (r *Registry) EmitInvoiceCreated(ctx context.Context, inv *invoice.Invoice) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onInvoiceCreated {
		if err := h.OnInvoiceCreated(ctx, inv); err != nil {
			r.logger.Error("hook failed",
				"hook", h.Name(),
				"event", "invoice_created",
				"invoice_id", inv.ID,
				"error", err,
			)
		}
	}
}

// EmitInvoicePaid dispatches the invoice-paid event.
func (r *Registry) EmitInvoicePaid(ctx context.Context, inv *invoice.Invoice, transferRef string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.onInvoicePaid {
		if err := h.OnInvoicePaid(ctx, inv, transferRef); err != nil {
			r.logger.Error("hook failed",
				"hook", h.Name(),
				"event", "invoice_paid",
				"invoice_id", inv.ID,
				"error", err,
			)
		}
	}
}
