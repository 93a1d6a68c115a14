// Package mongo provides a Store backed by MongoDB via the official driver.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	ledger "github.com/xraph/invoiceledger"
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/invoice"
	"github.com/xraph/invoiceledger/store"
)

// Collection name constants.
const (
	colInvoices     = "invoices"
	colUserInvoices = "user_invoices"
	colSequences    = "sequences"
	colMeta         = "ledger_meta"
)

// Well-known document keys.
const (
	seqDocID  = "invoice_seq"
	metaDocID = "ledger"
)

// compile-time interface check
var _ store.Store = (*Store)(nil)

// Store implements store.Store on a MongoDB database.
type Store struct {
	db *mongo.Database
}

// New creates a new MongoDB store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// DB returns the underlying database for direct access.
func (s *Store) DB() *mongo.Database { return s.db }

// Migrate seeds the sequence counter document. Collections and the _id
// indexes are created lazily by the server; there is nothing else to set up.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.Collection(colSequences).InsertOne(ctx, seqModel{ID: seqDocID, Next: 1})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("invoiceledger/mongo: seed sequence: %w", err)
	}
	return nil
}

// NextInvoiceID atomically advances the counter document with $inc and
// returns the pre-increment value.
func (s *Store) NextInvoiceID(ctx context.Context) (uint64, error) {
	var after seqModel
	err := s.db.Collection(colSequences).FindOneAndUpdate(ctx,
		bson.M{"_id": seqDocID},
		bson.M{"$inc": bson.M{"next": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&after)
	if err != nil {
		return 0, fmt.Errorf("invoiceledger/mongo: next invoice id: %w", err)
	}
	return uint64(after.Next - 1), nil
}

// SaveInvoice stores a new invoice record.
func (s *Store) SaveInvoice(ctx context.Context, inv *invoice.Invoice) error {
	_, err := s.db.Collection(colInvoices).InsertOne(ctx, toInvoiceModel(inv))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ledger.ErrAlreadyExists
		}
		return fmt.Errorf("invoiceledger/mongo: save invoice %d: %w", inv.ID, err)
	}
	return nil
}

// GetInvoice returns the invoice with the given identifier.
func (s *Store) GetInvoice(ctx context.Context, invoiceID uint64) (*invoice.Invoice, error) {
	var m invoiceModel
	err := s.db.Collection(colInvoices).FindOne(ctx, bson.M{"_id": int64(invoiceID)}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceledger/mongo: get invoice %d: %w", invoiceID, err)
	}
	return fromInvoiceModel(&m)
}

// MarkInvoicePaid flips the is_paid flag.
func (s *Store) MarkInvoicePaid(ctx context.Context, invoiceID uint64) error {
	res, err := s.db.Collection(colInvoices).UpdateOne(ctx,
		bson.M{"_id": int64(invoiceID)},
		bson.M{"$set": bson.M{"is_paid": true}},
	)
	if err != nil {
		return fmt.Errorf("invoiceledger/mongo: mark paid %d: %w", invoiceID, err)
	}
	if res.MatchedCount == 0 {
		return ledger.ErrNotFound
	}
	return nil
}

// AppendUserInvoice pushes an identifier onto the issuer's index document,
// creating it if absent. $push preserves append order.
func (s *Store) AppendUserInvoice(ctx context.Context, issuer addr.Address, invoiceID uint64) error {
	_, err := s.db.Collection(colUserInvoices).UpdateOne(ctx,
		bson.M{"_id": issuer.String()},
		bson.M{"$push": bson.M{"invoice_ids": int64(invoiceID)}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("invoiceledger/mongo: index invoice %d: %w", invoiceID, err)
	}
	return nil
}

// UserInvoices returns the ordered identifiers the user issued.
func (s *Store) UserInvoices(ctx context.Context, user addr.Address) ([]uint64, error) {
	var m userIndexModel
	err := s.db.Collection(colUserInvoices).FindOne(ctx, bson.M{"_id": user.String()}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("invoiceledger/mongo: user invoices: %w", err)
	}

	ids := make([]uint64, len(m.InvoiceIDs))
	for i, v := range m.InvoiceIDs {
		ids[i] = uint64(v)
	}
	return ids, nil
}

// SetMetadata persists the ledger instance metadata.
func (s *Store) SetMetadata(ctx context.Context, md store.Metadata) error {
	_, err := s.db.Collection(colMeta).UpdateOne(ctx,
		bson.M{"_id": metaDocID},
		bson.M{"$set": bson.M{"name": md.Name, "version": md.Version}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("invoiceledger/mongo: set metadata: %w", err)
	}
	return nil
}

// GetMetadata returns the ledger instance metadata.
func (s *Store) GetMetadata(ctx context.Context) (store.Metadata, error) {
	var m metaModel
	err := s.db.Collection(colMeta).FindOne(ctx, bson.M{"_id": metaDocID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return store.Metadata{}, ledger.ErrNotFound
		}
		return store.Metadata{}, fmt.Errorf("invoiceledger/mongo: get metadata: %w", err)
	}
	return store.Metadata{Name: m.Name, Version: m.Version}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	return s.db.Client().Disconnect(context.Background())
}
