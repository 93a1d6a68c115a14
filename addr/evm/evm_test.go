package evm_test

import (
	"testing"

	"github.com/xraph/invoiceledger/addr/evm"
)

func TestValidate(t *testing.T) {
	v := evm.New()

	t.Run("Canonicalizes", func(t *testing.T) {
		lower, err := v.Validate("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
		if err != nil {
			t.Fatal(err)
		}
		upper, err := v.Validate("0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED")
		if err != nil {
			t.Fatal(err)
		}
		if !lower.Equal(upper) {
			t.Errorf("spellings diverged: %q vs %q", lower, upper)
		}
		// EIP-55 checksummed form
		if lower.String() != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
			t.Errorf("got %q", lower)
		}
	})

	t.Run("Rejects", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"Empty", ""},
			{"TooShort", "0x5aaeb6"},
			{"TooLong", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed00"},
			{"NonHex", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beazz"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := v.Validate(tt.raw); err == nil {
					t.Errorf("expected error for %q", tt.raw)
				}
			})
		}
	})
}
