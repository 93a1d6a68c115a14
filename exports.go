package invoiceledger

import (
	"github.com/xraph/invoiceledger/addr"
	"github.com/xraph/invoiceledger/types"
)

// Re-export common types for convenience so users don't have to import the
// types and addr packages.

// Uint128 is re-exported from the types package.
type Uint128 = types.Uint128

// Coin is re-exported from the types package.
type Coin = types.Coin

// Address is re-exported from the addr package.
type Address = addr.Address

// Re-export constructors
var (
	NewUint128   = types.NewUint128
	ParseUint128 = types.ParseUint128
	MustUint128  = types.MustUint128
	NewCoin      = types.NewCoin
)
