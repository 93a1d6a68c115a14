package types

import (
	"encoding/json"
	"testing"
)

func TestUint128Constructors(t *testing.T) {
	tests := []struct {
		name    string
		value   Uint128
		display string
	}{
		{"Zero", NewUint128(0), "0"},
		{"Small", NewUint128(100), "100"},
		{"MaxUint64", NewUint128(18446744073709551615), "18446744073709551615"},
		{"Above64Bits", MustUint128("340282366920938463463374607431768211455"), "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.display {
				t.Errorf("String: got %s, want %s", got, tt.display)
			}
		})
	}
}

func TestParseUint128Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"NonNumeric", "abc"},
		{"Negative", "-1"},
		{"Above128Bits", "340282366920938463463374607431768211456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseUint128(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestUint128Arithmetic(t *testing.T) {
	max128 := MustUint128("340282366920938463463374607431768211455")

	t.Run("Add", func(t *testing.T) {
		got, err := NewUint128(100).Add(NewUint128(200))
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(NewUint128(300)) {
			t.Errorf("got %s, want 300", got)
		}
	})

	t.Run("AddOverflow", func(t *testing.T) {
		if _, err := max128.Add(NewUint128(1)); err != ErrAmountOverflow {
			t.Errorf("got %v, want ErrAmountOverflow", err)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		got, err := NewUint128(500).Sub(NewUint128(200))
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(NewUint128(300)) {
			t.Errorf("got %s, want 300", got)
		}
	})

	t.Run("SubUnderflow", func(t *testing.T) {
		if _, err := NewUint128(100).Sub(NewUint128(200)); err != ErrAmountUnderflow {
			t.Errorf("got %v, want ErrAmountUnderflow", err)
		}
	})
}

func TestUint128Comparison(t *testing.T) {
	if !NewUint128(0).IsZero() {
		t.Error("expected zero")
	}
	if NewUint128(1).IsZero() {
		t.Error("expected non-zero")
	}
	if !NewUint128(1).LessThan(NewUint128(2)) {
		t.Error("expected 1 < 2")
	}
	if !NewUint128(2).GreaterThan(NewUint128(1)) {
		t.Error("expected 2 > 1")
	}
}

func TestUint128JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"String", `"100"`, "100"},
		{"BareNumber", `100`, "100"},
		{"Large", `"340282366920938463463374607431768211455"`, "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u Uint128
			if err := json.Unmarshal([]byte(tt.input), &u); err != nil {
				t.Fatal(err)
			}
			if u.String() != tt.want {
				t.Errorf("got %s, want %s", u, tt.want)
			}

			out, err := json.Marshal(u)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != `"`+tt.want+`"` {
				t.Errorf("marshal: got %s", out)
			}
		})
	}
}

func TestCoin(t *testing.T) {
	c := NewCoin("uxion", NewUint128(100))

	if got := c.String(); got != "100uxion" {
		t.Errorf("String: got %s", got)
	}
	if !c.Equal(NewCoin("uxion", NewUint128(100))) {
		t.Error("expected equal coins")
	}
	if c.Equal(NewCoin("uatom", NewUint128(100))) {
		t.Error("denom mismatch should not be equal")
	}
	if c.Equal(NewCoin("uxion", NewUint128(99))) {
		t.Error("amount mismatch should not be equal")
	}
}

func TestFormatCoins(t *testing.T) {
	coins := []Coin{
		NewCoin("uxion", NewUint128(100)),
		NewCoin("uatom", NewUint128(5)),
	}
	if got := FormatCoins(coins); got != "100uxion,5uatom" {
		t.Errorf("got %s", got)
	}
	if got := FormatCoins(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
