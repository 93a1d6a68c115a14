package audit_test

import (
	"context"
	"testing"

	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/audit"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
	"github.com/xraph/invoiceledger/types"
)

func collect(events *[]*audit.Event) audit.Recorder {
	return audit.RecorderFunc(func(_ context.Context, event *audit.Event) error {
		*events = append(*events, event)
		return nil
	})
}

func TestRecordsLifecycle(t *testing.T) {
	var events []*audit.Event
	h := audit.New(collect(&events))
	ctx := context.Background()

	inv := &invoice.Invoice{
		ID:        1,
		Issuer:    addr.New("alice"),
		Recipient: addr.New("bob"),
		Amount:    types.NewUint128(100),
	}

	if err := h.OnLedgerInit(ctx, store.Metadata{Name: "invoiceledger", Version: "0.1.0"}); err != nil {
		t.Fatal(err)
	}
	if err := h.OnInvoiceCreated(ctx, inv); err != nil {
		t.Fatal(err)
	}
	if err := h.OnInvoicePaid(ctx, inv, "xfer_test"); err != nil {
		t.Fatal(err)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	wantActions := []string{audit.ActionLedgerInit, audit.ActionInvoiceCreated, audit.ActionInvoicePaid}
	for i, want := range wantActions {
		if events[i].Action != want {
			t.Errorf("event %d: got action %q, want %q", i, events[i].Action, want)
		}
		if events[i].ID.IsNil() {
			t.Errorf("event %d: missing id", i)
		}
		if events[i].Outcome != audit.OutcomeSuccess {
			t.Errorf("event %d: got outcome %q", i, events[i].Outcome)
		}
	}

	paid := events[2]
	if paid.ResourceID != "1" {
		t.Errorf("resource_id: got %q", paid.ResourceID)
	}
	if paid.Metadata["transfer_ref"] != "xfer_test" {
		t.Errorf("transfer_ref: got %v", paid.Metadata["transfer_ref"])
	}
}

func TestEnabledActionsFilter(t *testing.T) {
	var events []*audit.Event
	h := audit.New(collect(&events), audit.WithEnabledActions(audit.ActionInvoicePaid))
	ctx := context.Background()

	inv := &invoice.Invoice{ID: 1, Issuer: addr.New("alice"), Recipient: addr.New("bob")}

	if err := h.OnInvoiceCreated(ctx, inv); err != nil {
		t.Fatal(err)
	}
	if err := h.OnInvoicePaid(ctx, inv, "xfer_test"); err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Action != audit.ActionInvoicePaid {
		t.Errorf("got %q", events[0].Action)
	}
}
