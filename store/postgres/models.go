package postgres

import (
	"fmt"

	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/types"
)

// ==================== Invoice row ====================

type invoiceRow struct {
	ID          int64  `gorm:"primaryKey"`
	Issuer      string `gorm:"not null;index"`
	Recipient   string `gorm:"not null"`
	Amount      string `gorm:"not null"`
	Description string `gorm:"not null;default:''"`
	DueDate     int64  `gorm:"not null"`
	IsPaid      bool   `gorm:"not null;default:false"`
}

func (invoiceRow) TableName() string { return "invoices" }

func toInvoiceRow(inv *invoice.Invoice) *invoiceRow {
	return &invoiceRow{
		ID:          int64(inv.ID),
		Issuer:      inv.Issuer.String(),
		Recipient:   inv.Recipient.String(),
		Amount:      inv.Amount.String(),
		Description: inv.Description,
		DueDate:     int64(inv.DueDate),
		IsPaid:      inv.IsPaid,
	}
}

func fromInvoiceRow(r *invoiceRow) (*invoice.Invoice, error) {
	amount, err := types.ParseUint128(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("invoiceledger/postgres: invoice %d: corrupt amount: %w", r.ID, err)
	}
	return &invoice.Invoice{
		ID:          uint64(r.ID),
		Issuer:      addr.New(r.Issuer),
		Recipient:   addr.New(r.Recipient),
		Amount:      amount,
		Description: r.Description,
		DueDate:     uint64(r.DueDate),
		IsPaid:      r.IsPaid,
	}, nil
}

// ==================== Sequence and index rows ====================

type seqRow struct {
	ID   int64 `gorm:"primaryKey"`
	Next int64 `gorm:"not null"`
}

func (seqRow) TableName() string { return "invoice_seq" }

type userInvoiceRow struct {
	Issuer    string `gorm:"primaryKey"`
	Position  int64  `gorm:"primaryKey;autoIncrement:false"`
	InvoiceID int64  `gorm:"not null"`
}

func (userInvoiceRow) TableName() string { return "user_invoices" }

type metaRow struct {
	K string `gorm:"primaryKey;column:k"`
	V string `gorm:"not null;column:v"`
}

func (metaRow) TableName() string { return "ledger_meta" }
