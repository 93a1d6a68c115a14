// Package audit bridges ledger lifecycle events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not depend on
// any particular trail implementation. Callers inject a RecorderFunc adapter
// that bridges to their backend at wiring time.
package audit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/xraph/invoiceledger/hook"
	"github.com/xraph/invoiceledger/id"
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

// Event is a single audit trail entry.
type Event struct {
	ID         id.ID          `json:"id"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resource_id,omitempty"`
	Outcome    string         `json:"outcome"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	RecordedAt time.Time      `json:"recorded_at"`
}

// Recorder is the interface that audit backends must implement.
type Recorder interface {
	Record(ctx context.Context, event *Event) error
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *Event) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// Hook records ledger lifecycle events through the injected Recorder.
type Hook struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates a Hook that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Hook {
	h := &Hook{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name implements hook.Hook.
func (h *Hook) Name() string { return "audit" }

// OnLedgerInit implements hook.OnLedgerInit.
func (h *Hook) OnLedgerInit(ctx context.Context, md store.Metadata) error {
	return h.record(ctx, ActionLedgerInit, ResourceLedger, md.Name, map[string]any{
		"name":    md.Name,
		"version": md.Version,
	})
}

// OnInvoiceCreated implements hook.OnInvoiceCreated.
func (h *Hook) OnInvoiceCreated(ctx context.Context, inv *invoice.Invoice) error {
	return h.record(ctx, ActionInvoiceCreated, ResourceInvoice, strconv.FormatUint(inv.ID, 10), map[string]any{
		"issuer":    inv.Issuer.String(),
		"recipient": inv.Recipient.String(),
		"amount":    inv.Amount.String(),
		"due_date":  inv.DueDate,
	})
}

// OnInvoicePaid implements hook.OnInvoicePaid.
func (h *Hook) OnInvoicePaid(ctx context.Context, inv *invoice.Invoice, transferRef string) error {
	return h.record(ctx, ActionInvoicePaid, ResourceInvoice, strconv.FormatUint(inv.ID, 10), map[string]any{
		"issuer":       inv.Issuer.String(),
		"recipient":    inv.Recipient.String(),
		"amount":       inv.Amount.String(),
		"transfer_ref": transferRef,
	})
}

func (h *Hook) record(ctx context.Context, action, resource, resourceID string, metadata map[string]any) error {
	if h.enabled != nil && !h.enabled[action] {
		return nil
	}

	event := &Event{
		ID:         id.NewAuditEventID(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Outcome:    OutcomeSuccess,
		Metadata:   metadata,
		RecordedAt: time.Now().UTC(),
	}

	if err := h.recorder.Record(ctx, event); err != nil {
		h.logger.Error("audit record failed",
			"action", action,
			"resource_id", resourceID,
			"error", err,
		)
		return err
	}
	return nil
}
