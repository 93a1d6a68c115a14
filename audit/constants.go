package audit

// Action constants for audit events.
const (
	ActionLedgerInit     = "ledger.init"
	ActionInvoiceCreated = "invoice.created"
	ActionInvoicePaid    = "invoice.paid"
)

// Resource constants for audit events.
const (
	ResourceLedger  = "ledger"
	ResourceInvoice = "invoice"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
