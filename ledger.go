package invoiceledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/hook"
	"github.com/xraph/invoiceledger/id"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
	"github.com/xraph/invoiceledger/types"
)

// Default instance metadata, overridable via WithMetadata.
const (
	LedgerName    = "invoiceledger"
	LedgerVersion = "0.1.0"
)

// MsgInfo carries the execution context of a command: the caller identity as
// resolved by the host (never taken from the command payload, which prevents
// impersonation) and the funds attached to the call.
type MsgInfo struct {
	Sender addr.Address
	Funds  []types.Coin
}

// Ledger is the invoice ledger engine. The host environment must serialize
// calls into one instance: each operation executes as a single all-or-nothing
// unit, and the host applies or discards its state writes together with any
// value-transfer instruction in the returned Response.
type Ledger struct {
	store     store.Store
	validator addr.Validator
	hooks     *hook.Registry
	logger    *slog.Logger

	meta    store.Metadata
	started bool
}

// New creates a new Ledger instance backed by the given store.
func New(s store.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:     s,
		validator: addr.Exact(),
		hooks:     hook.NewRegistry(),
		logger:    slog.Default(),
		meta:      store.Metadata{Name: LedgerName, Version: LedgerVersion},
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
		l.hooks.WithLogger(logger)
	}
}

// WithValidator sets the party-identity validator.
func WithValidator(v addr.Validator) Option {
	return func(l *Ledger) {
		l.validator = v
	}
}

// WithHook registers a lifecycle hook.
func WithHook(h hook.Hook) Option {
	return func(l *Ledger) {
		_ = l.hooks.Register(h) //nolint:errcheck // best-effort hook registration during init
	}
}

// WithMetadata overrides the instance name and version persisted at Start.
func WithMetadata(name, version string) Option {
	return func(l *Ledger) {
		l.meta = store.Metadata{Name: name, Version: version}
	}
}

// Start initializes the ledger: it migrates the store, seeds the sequence
// counter, and persists the instance metadata. Commands and queries against
// an unstarted ledger fail with ErrNotReady. Starting an already-initialized
// store is a no-op beyond re-opening it; the counter and metadata are only
// written the first time.
func (l *Ledger) Start(ctx context.Context) error {
	if l.started {
		return nil
	}

	if err := l.store.Migrate(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	if _, err := l.store.GetMetadata(ctx); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("invoiceledger: load metadata: %w", err)
		}
		if err := l.store.SetMetadata(ctx, l.meta); err != nil {
			return fmt.Errorf("invoiceledger: persist metadata: %w", err)
		}
	}

	l.started = true
	l.hooks.EmitLedgerInit(ctx, l.meta)

	l.logger.Info("ledger started",
		"name", l.meta.Name,
		"version", l.meta.Version,
		"hooks", l.hooks.Hooks(),
	)

	return nil
}

// Stop shuts down the ledger and closes the store.
func (l *Ledger) Stop() error {
	l.hooks.EmitShutdown(context.Background())
	l.started = false
	return l.store.Close()
}

// ──────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────

// CreateInvoice issues a new invoice from the caller against recipient for
// the given amount and due date. The recipient is raw text and is resolved
// through the injected validator. No value transfer occurs at creation.
//
// Validation order: address, self-invoice, amount — each short-circuits
// before any state mutation.
func (l *Ledger) CreateInvoice(ctx context.Context, info MsgInfo, recipient string, amount types.Uint128, description string, dueDate uint64) (*Response, error) {
	if !l.started {
		return nil, ErrNotReady
	}

	recipientAddr, err := l.validator.Validate(recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if recipientAddr.Equal(info.Sender) {
		return nil, ErrSelfInvoice
	}
	if amount.IsZero() {
		return nil, ErrZeroAmount
	}

	invoiceID, err := l.store.NextInvoiceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoiceledger: next invoice id: %w", err)
	}

	inv := &invoice.Invoice{
		ID:          invoiceID,
		Issuer:      info.Sender,
		Recipient:   recipientAddr,
		Amount:      amount,
		Description: description,
		DueDate:     dueDate,
		IsPaid:      false,
	}

	if err := l.store.SaveInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("invoiceledger: save invoice: %w", err)
	}
	if err := l.store.AppendUserInvoice(ctx, info.Sender, invoiceID); err != nil {
		return nil, fmt.Errorf("invoiceledger: index invoice: %w", err)
	}

	l.hooks.EmitInvoiceCreated(ctx, inv)

	l.logger.Debug("invoice created",
		"invoice_id", invoiceID,
		"issuer", info.Sender.String(),
		"recipient", recipientAddr.String(),
		"amount", amount.String(),
	)

	return NewResponse().
		AddAttribute("method", "create_invoice").
		AddAttribute("invoice_id", strconv.FormatUint(invoiceID, 10)).
		AddAttribute("recipient", recipientAddr.String()), nil
}

// PayInvoice settles an invoice with the funds attached to the call. Only
// the designated recipient may pay, exactly once, with exactly one coin of
// exactly the invoice amount. On success the invoice is marked paid and the
// Response carries one value-transfer instruction directing the attached
// funds to the issuer; the host applies both or neither.
func (l *Ledger) PayInvoice(ctx context.Context, info MsgInfo, invoiceID uint64) (*Response, error) {
	if !l.started {
		return nil, ErrNotReady
	}

	inv, err := l.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.IsPaid {
		return nil, ErrAlreadyPaid
	}
	if !inv.Recipient.Equal(info.Sender) {
		return nil, ErrUnauthorized
	}
	if len(info.Funds) != 1 || !info.Funds[0].Amount.Equal(inv.Amount) {
		return nil, ErrIncorrectPayment
	}

	if err := l.store.MarkInvoicePaid(ctx, invoiceID); err != nil {
		return nil, fmt.Errorf("invoiceledger: mark paid: %w", err)
	}
	inv.IsPaid = true

	transfer := Transfer{
		Ref:       id.NewTransferID(),
		ToAddress: inv.Issuer.String(),
		Amount:    append([]types.Coin(nil), info.Funds...),
	}

	l.hooks.EmitInvoicePaid(ctx, inv, transfer.Ref.String())

	l.logger.Debug("invoice paid",
		"invoice_id", invoiceID,
		"payer", info.Sender.String(),
		"transfer_ref", transfer.Ref.String(),
		"funds", types.FormatCoins(info.Funds),
	)

	return NewResponse().
		AddAttribute("method", "pay_invoice").
		AddAttribute("invoice_id", strconv.FormatUint(invoiceID, 10)).
		AddTransfer(transfer), nil
}

// ──────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────

// GetInvoice returns the invoice with the given identifier, projected into
// its caller-facing shape. Read-only.
func (l *Ledger) GetInvoice(ctx context.Context, invoiceID uint64) (*invoice.Projection, error) {
	if !l.started {
		return nil, ErrNotReady
	}

	inv, err := l.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return inv.Project(), nil
}

// InvoicesByUser returns the invoices the given user issued, in creation
// order. A user who never issued anything gets an empty sequence, not an
// error. Read-only.
func (l *Ledger) InvoicesByUser(ctx context.Context, user string) ([]*invoice.Projection, error) {
	if !l.started {
		return nil, ErrNotReady
	}

	userAddr, err := l.validator.Validate(user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	ids, err := l.store.UserInvoices(ctx, userAddr)
	if err != nil {
		return nil, err
	}

	projections := make([]*invoice.Projection, 0, len(ids))
	for _, invoiceID := range ids {
		p, err := l.GetInvoice(ctx, invoiceID)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}

	return projections, nil
}

// Metadata returns the persisted instance metadata.
func (l *Ledger) Metadata(ctx context.Context) (store.Metadata, error) {
	return l.store.GetMetadata(ctx)
}
