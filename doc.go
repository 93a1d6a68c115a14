// Package invoiceledger provides an embeddable invoice settlement ledger.
//
// A party issues an invoice against another party for a fixed amount and due
// date; the recipient later settles it with an exact payment that the ledger
// forwards to the issuer as a value-transfer instruction. The package is
// designed as a library, not a service: the host environment supplies caller
// identity and attached funds, persists state through a pluggable store, and
// executes the transfer instructions the ledger emits.
//
// # Quick Start
//
// Create a ledger instance with your preferred store:
//
//	import (
//	    ledger "github.com/xraph/invoiceledger"
//	    "github.com/xraph/invoiceledger/store/memory"
//	)
//
//	l := ledger.New(memory.New())
//	if err := l.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Stop()
//
// Issue and settle an invoice:
//
//	resp, err := l.CreateInvoice(ctx,
//	    ledger.MsgInfo{Sender: alice},
//	    bob.String(), types.NewUint128(100), "consulting", 1700000000)
//
//	resp, err = l.PayInvoice(ctx,
//	    ledger.MsgInfo{Sender: bob, Funds: []types.Coin{types.NewCoin("uxion", types.NewUint128(100))}},
//	    1)
//	// resp.Transfers[0] directs the attached funds to alice.
//
// # Execution model
//
// The host must serialize calls into one ledger instance: each operation is
// a single all-or-nothing unit against the shared state. A successful
// command returns a Response whose attributes describe the outcome and whose
// Transfers, if any, must be applied atomically with the command's state
// writes — if the host rejects the surrounding transaction, both are
// discarded together. Every validation failure aborts before any state
// mutation, so no error path leaves partial writes behind.
//
// # Identifiers
//
// Invoice identifiers are sequential uint64 values from the ledger's own
// counter, starting at 1: pairwise distinct, strictly increasing, never
// reused. Audit events and transfer instructions carry TypeID references
// (aevt_..., xfer_...) from the id package.
//
// # Stores
//
// Four store backends ship with the module: memory (tests, single-process
// hosts), sqlite, postgres, and mongo. All implement store.Store; each keeps
// the three durable regions — sequence counter, invoice table, user index —
// independently addressable, and makes the counter increment atomic within
// the backend.
//
// # Amounts
//
// All monetary values are unsigned 128-bit integers in the smallest
// denomination unit, with checked arithmetic and decimal-string JSON. There
// is no floating point anywhere in the money path.
package invoiceledger
