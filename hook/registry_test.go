package hook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/invoiceledger/hook"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

type recordingHook struct {
	name    string
	inits   int
	created []uint64
	paid    []string
	fail    bool
}

func (h *recordingHook) Name() string { return h.name }

func (h *recordingHook) OnLedgerInit(_ context.Context, _ store.Metadata) error {
	h.inits++
	if h.fail {
		return errors.New("boom")
	}
	return nil
}

func (h *recordingHook) OnInvoiceCreated(_ context.Context, inv *invoice.Invoice) error {
	h.created = append(h.created, inv.ID)
	return nil
}

func (h *recordingHook) OnInvoicePaid(_ context.Context, _ *invoice.Invoice, transferRef string) error {
	h.paid = append(h.paid, transferRef)
	return nil
}

// initOnlyHook implements only the base interface.
type initOnlyHook struct{}

func (initOnlyHook) Name() string { return "init-only" }

func TestRegisterAndDispatch(t *testing.T) {
	r := hook.NewRegistry()
	h := &recordingHook{name: "recorder"}

	if err := r.Register(h); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(initOnlyHook{}); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	r.EmitLedgerInit(ctx, store.Metadata{Name: "test", Version: "0.1.0"})
	r.EmitInvoiceCreated(ctx, &invoice.Invoice{ID: 7})
	r.EmitInvoicePaid(ctx, &invoice.Invoice{ID: 7}, "xfer_test")
	r.EmitShutdown(ctx)

	if h.inits != 1 {
		t.Errorf("inits: got %d, want 1", h.inits)
	}
	if len(h.created) != 1 || h.created[0] != 7 {
		t.Errorf("created: got %v", h.created)
	}
	if len(h.paid) != 1 || h.paid[0] != "xfer_test" {
		t.Errorf("paid: got %v", h.paid)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := hook.NewRegistry()

	if err := r.Register(&recordingHook{name: "dup"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(&recordingHook{name: "dup"}); err == nil {
		t.Error("expected duplicate registration error")
	}
}

func TestFailingHookDoesNotPropagate(t *testing.T) {
	r := hook.NewRegistry()
	failing := &recordingHook{name: "failing", fail: true}
	healthy := &recordingHook{name: "healthy"}

	if err := r.Register(failing); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(healthy); err != nil {
		t.Fatal(err)
	}

	// Must not panic and must still reach the healthy hook.
	r.EmitLedgerInit(context.Background(), store.Metadata{})

	if healthy.inits != 1 {
		t.Errorf("healthy hook skipped: inits=%d", healthy.inits)
	}
}
