package addr_test

import (
	"encoding/json"
	"testing"

	"github.com/xraph/invoiceledger/addr"
)

func TestAddressEquality(t *testing.T) {
	a := addr.New("alice")
	b := addr.New("alice")
	c := addr.New("bob")

	if !a.Equal(b) {
		t.Error("expected same identity to be equal")
	}
	if a.Equal(c) {
		t.Error("expected distinct identities to differ")
	}
	if a.IsNil() {
		t.Error("expected non-nil address")
	}
	if !addr.Nil.IsNil() {
		t.Error("expected Nil to be nil")
	}
}

func TestAddressTextRoundTrip(t *testing.T) {
	type record struct {
		Issuer addr.Address `json:"issuer"`
	}

	out, err := json.Marshal(record{Issuer: addr.New("alice")})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"issuer":"alice"}` {
		t.Errorf("marshal: got %s", out)
	}

	var decoded record
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Issuer.String() != "alice" {
		t.Errorf("unmarshal: got %q", decoded.Issuer)
	}
}

func TestValidatorFunc(t *testing.T) {
	calls := 0
	v := addr.ValidatorFunc(func(raw string) (addr.Address, error) {
		calls++
		return addr.New(raw), nil
	})

	a, err := v.Validate("alice")
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "alice" || calls != 1 {
		t.Errorf("got %q after %d calls", a, calls)
	}
}

func TestExactValidator(t *testing.T) {
	v := addr.Exact()

	if _, err := v.Validate(""); err == nil {
		t.Error("expected error for empty address")
	}

	a, err := v.Validate("xion1abc")
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "xion1abc" {
		t.Errorf("got %q", a)
	}
}
