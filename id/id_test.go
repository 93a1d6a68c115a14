package id_test

import (
	"strings"
	"testing"

	"github.com/xraph/invoiceledger/id"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		newFn  func() id.ID
		prefix string
	}{
		{"AuditEventID", id.NewAuditEventID, "aevt_"},
		{"TransferID", id.NewTransferID, "xfer_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.newFn().String()
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	i := id.New(id.PrefixTransfer)
	if i.IsNil() {
		t.Fatal("expected non-nil ID")
	}
	if i.Prefix() != id.PrefixTransfer {
		t.Errorf("expected prefix %q, got %q", id.PrefixTransfer, i.Prefix())
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := id.NewAuditEventID()

	parsed, err := id.Parse(original.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed.String() != original.String() {
		t.Errorf("round trip: got %q, want %q", parsed, original)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"NoSuffix", "aevt_"},
		{"Garbage", "not a typeid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := id.Parse(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestParseWithPrefix(t *testing.T) {
	xfer := id.NewTransferID()

	if _, err := id.ParseTransferID(xfer.String()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := id.ParseAuditEventID(xfer.String()); err == nil {
		t.Error("expected prefix mismatch error")
	}
}

func TestNilID(t *testing.T) {
	if !id.Nil.IsNil() {
		t.Error("expected Nil to be nil")
	}
	if id.Nil.String() != "" {
		t.Errorf("expected empty string, got %q", id.Nil.String())
	}

	data, err := id.Nil.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty text, got %q", data)
	}
}

func TestScanValue(t *testing.T) {
	original := id.NewTransferID()

	v, err := original.Value()
	if err != nil {
		t.Fatal(err)
	}

	var scanned id.ID
	if err := scanned.Scan(v); err != nil {
		t.Fatal(err)
	}
	if scanned.String() != original.String() {
		t.Errorf("got %q, want %q", scanned, original)
	}

	var fromNil id.ID
	if err := fromNil.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !fromNil.IsNil() {
		t.Error("expected nil ID from NULL")
	}
}
