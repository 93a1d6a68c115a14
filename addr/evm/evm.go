// Package evm provides an addr.Validator for 0x-prefixed hex addresses.
package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/xraph/invoiceledger/addr"
)

// compile-time interface check
var _ addr.Validator = Validator{}

// Validator validates 20-byte hex addresses and canonicalizes them to their
// EIP-55 checksummed form, so two spellings of the same identity always
// resolve to the same Address.
type Validator struct{}

// New creates a hex-address validator.
func New() Validator { return Validator{} }

// Validate implements addr.Validator.
func (Validator) Validate(raw string) (addr.Address, error) {
	if !common.IsHexAddress(raw) {
		return addr.Nil, fmt.Errorf("evm: %q is not a valid hex address", raw)
	}
	return addr.New(common.HexToAddress(raw).Hex()), nil
}
