package mongo

import (
	"fmt"

	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/types"
)

// ==================== Invoice model ====================

type invoiceModel struct {
	ID          int64  `bson:"_id"`
	Issuer      string `bson:"issuer"`
	Recipient   string `bson:"recipient"`
	Amount      string `bson:"amount"`
	Description string `bson:"description"`
	DueDate     int64  `bson:"due_date"`
	IsPaid      bool   `bson:"is_paid"`
}

func toInvoiceModel(inv *invoice.Invoice) *invoiceModel {
	return &invoiceModel{
		ID:          int64(inv.ID),
		Issuer:      inv.Issuer.String(),
		Recipient:   inv.Recipient.String(),
		Amount:      inv.Amount.String(),
		Description: inv.Description,
		DueDate:     int64(inv.DueDate),
		IsPaid:      inv.IsPaid,
	}
}

func fromInvoiceModel(m *invoiceModel) (*invoice.Invoice, error) {
	amount, err := types.ParseUint128(m.Amount)
	if err != nil {
		return nil, fmt.Errorf("invoiceledger/mongo: invoice %d: corrupt amount: %w", m.ID, err)
	}
	return &invoice.Invoice{
		ID:          uint64(m.ID),
		Issuer:      addr.New(m.Issuer),
		Recipient:   addr.New(m.Recipient),
		Amount:      amount,
		Description: m.Description,
		DueDate:     uint64(m.DueDate),
		IsPaid:      m.IsPaid,
	}, nil
}

// ==================== Sequence and index models ====================

type seqModel struct {
	ID   string `bson:"_id"`
	Next int64  `bson:"next"`
}

type userIndexModel struct {
	Issuer     string  `bson:"_id"`
	InvoiceIDs []int64 `bson:"invoice_ids"`
}

type metaModel struct {
	ID      string `bson:"_id"`
	Name    string `bson:"name"`
	Version string `bson:"version"`
}
