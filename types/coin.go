// Package types provides common types used across the invoice ledger.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Arithmetic errors.
var (
	ErrAmountOverflow  = errors.New("types: uint128 overflow")
	ErrAmountUnderflow = errors.New("types: uint128 underflow")
)

// Uint128 is an unsigned 128-bit integer amount.
// All arithmetic is integer-only and checked — no floating point, no silent
// wraparound. The JSON representation is a decimal string so that values
// above 2^53 survive transport through JSON number parsers.
type Uint128 struct {
	i uint256.Int
}

// NewUint128 creates a Uint128 from a uint64 value.
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.i.SetUint64(v)
	return u
}

// ParseUint128 parses a decimal string into a Uint128.
func ParseUint128(s string) (Uint128, error) {
	var i uint256.Int
	if err := i.SetFromDecimal(s); err != nil {
		return Uint128{}, fmt.Errorf("types: parse uint128 %q: %w", s, err)
	}
	if i.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("types: parse uint128 %q: %w", s, ErrAmountOverflow)
	}
	return Uint128{i: i}, nil
}

// MustUint128 is like ParseUint128 but panics on error. Use for hardcoded values.
func MustUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Arithmetic operations

// Add returns u + other, failing on 128-bit overflow.
func (u Uint128) Add(other Uint128) (Uint128, error) {
	var z uint256.Int
	if _, carry := z.AddOverflow(&u.i, &other.i); carry || z.BitLen() > 128 {
		return Uint128{}, ErrAmountOverflow
	}
	return Uint128{i: z}, nil
}

// Sub returns u - other, failing if other > u.
func (u Uint128) Sub(other Uint128) (Uint128, error) {
	if u.i.Lt(&other.i) {
		return Uint128{}, ErrAmountUnderflow
	}
	var z uint256.Int
	z.Sub(&u.i, &other.i)
	return Uint128{i: z}, nil
}

// Comparison methods

// IsZero returns true if the amount is zero.
func (u Uint128) IsZero() bool { return u.i.IsZero() }

// Equal returns true if both amounts are equal.
func (u Uint128) Equal(other Uint128) bool { return u.i.Eq(&other.i) }

// LessThan returns true if u < other.
func (u Uint128) LessThan(other Uint128) bool { return u.i.Lt(&other.i) }

// GreaterThan returns true if u > other.
func (u Uint128) GreaterThan(other Uint128) bool { return u.i.Gt(&other.i) }

// Uint64 returns the amount as a uint64 and whether it fits.
func (u Uint128) Uint64() (uint64, bool) {
	if !u.i.IsUint64() {
		return 0, false
	}
	return u.i.Uint64(), true
}

// String returns the decimal representation.
func (u Uint128) String() string { return u.i.Dec() }

// MarshalText implements encoding.TextMarshaler.
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.i.Dec()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint128) UnmarshalText(data []byte) error {
	parsed, err := ParseUint128(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The value is encoded as a decimal
// string, matching the wire form of the persisted records.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.i.Dec() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both string and bare number
// encodings are accepted.
func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	return u.UnmarshalText([]byte(s))
}

// Coin is a single denomination of attached funds.
type Coin struct {
	Denom  string  `json:"denom"`
	Amount Uint128 `json:"amount"`
}

// NewCoin creates a Coin with the given denomination and amount.
func NewCoin(denom string, amount Uint128) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// Equal returns true if both coins have the same denomination and amount.
func (c Coin) Equal(other Coin) bool {
	return c.Denom == other.Denom && c.Amount.Equal(other.Amount)
}

// String returns the amount followed by the denomination, e.g. "100uxion".
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// FormatCoins renders a fund list as a comma-separated string.
func FormatCoins(coins []Coin) string {
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}
