// Package addr defines the validated party identity type and the validation
// capability injected into the ledger.
//
// The ledger never inspects address syntax itself: the host environment
// decides what a well-formed identity looks like and supplies a Validator at
// wiring time. This keeps the core host-agnostic and unit-testable with a
// fake validator.
package addr

import "fmt"

// Address is a validated, canonical party identity. It is a distinct type
// from raw text: an Address only comes out of a Validator (or out of storage,
// where only validated values are ever written).
type Address struct {
	s string
}

// Nil is the zero-value Address.
var Nil Address

// New wraps an already-canonical identity string. Callers outside a
// Validator implementation should go through Validator.Validate instead.
func New(s string) Address {
	return Address{s: s}
}

// String returns the canonical text form.
func (a Address) String() string { return a.s }

// Equal returns true if both addresses are the same identity.
func (a Address) Equal(other Address) bool { return a.s == other.s }

// IsNil reports whether this Address is the zero value.
func (a Address) IsNil() bool { return a.s == "" }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unmarshaling does not
// re-validate: stored values were validated when written.
func (a *Address) UnmarshalText(data []byte) error {
	a.s = string(data)
	return nil
}

// Validator resolves raw text into a canonical Address, rejecting malformed
// input. Implementations decide the address format of the host environment.
type Validator interface {
	Validate(raw string) (Address, error)
}

// ValidatorFunc is an adapter to use a plain function as a Validator.
type ValidatorFunc func(raw string) (Address, error)

// Validate implements Validator.
func (f ValidatorFunc) Validate(raw string) (Address, error) {
	return f(raw)
}

// Exact returns a Validator that accepts any non-empty string verbatim.
// Useful in tests and in hosts that perform validation upstream.
func Exact() Validator {
	return ValidatorFunc(func(raw string) (Address, error) {
		if raw == "" {
			return Nil, fmt.Errorf("addr: empty address")
		}
		return New(raw), nil
	})
}
