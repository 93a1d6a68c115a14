// Package invoice defines the invoice record and its caller-facing projection.
package invoice

import (
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/types"
)

// Invoice is the stored record of an obligation from recipient to issuer,
// settled at most once. Every field except IsPaid is immutable once the
// record is written; IsPaid transitions false → true exactly once and never
// reverts.
type Invoice struct {
	ID          uint64        `json:"id"`
	Issuer      addr.Address  `json:"issuer"`
	Recipient   addr.Address  `json:"recipient"`
	Amount      types.Uint128 `json:"amount"`
	Description string        `json:"description"`
	DueDate     uint64        `json:"due_date"` // informational only, never enforced
	IsPaid      bool          `json:"is_paid"`
}

// Projection is the caller-facing shape of an invoice. Party identities are
// rendered as text so the stored identity type never leaks to callers.
type Projection struct {
	ID          uint64        `json:"id"`
	Issuer      string        `json:"issuer"`
	Recipient   string        `json:"recipient"`
	Amount      types.Uint128 `json:"amount"`
	Description string        `json:"description"`
	DueDate     uint64        `json:"due_date"`
	IsPaid      bool          `json:"is_paid"`
}

// Project renders the record into its caller-facing shape.
func (i *Invoice) Project() *Projection {
	return &Projection{
		ID:          i.ID,
		Issuer:      i.Issuer.String(),
		Recipient:   i.Recipient.String(),
		Amount:      i.Amount,
		Description: i.Description,
		DueDate:     i.DueDate,
		IsPaid:      i.IsPaid,
	}
}
